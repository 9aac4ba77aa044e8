package vt

import (
	"log/slog"

	"github.com/srlehn/termvt/internal/consts"
	"github.com/srlehn/termvt/internal/errors"
	"github.com/srlehn/termvt/internal/linux"
	"github.com/srlehn/termvt/internal/logx"
)

// RepairResult is the outcome of FixVTMode.
type RepairResult int

const (
	RepairNotNeeded RepairResult = iota
	RepairApplied
	// the VT state could not be queried, nothing was changed
	RepairUndetermined
	// the switch signal handlers are live, but VT_PROCESS mode was not set
	RepairPartial
	RepairFailed
)

func (r RepairResult) String() string {
	switch r {
	case RepairNotNeeded:
		return `not needed`
	case RepairApplied:
		return `applied`
	case RepairUndetermined:
		return `undetermined`
	case RepairPartial:
		return `partial`
	case RepairFailed:
		return `failed`
	}
	return `unknown`
}

// FixVTMode repairs a VT left in VT_AUTO mode with KD_GRAPHICS set, a
// combination nobody can switch away from. dev is a handle to the currently
// active VT, usually the master device. vtAuto states that the former
// controlling process is gone: the VT is then forced back to KD_TEXT so that
// the kernel switches on its own. Otherwise this process takes over the VT
// switch handshake.
func (s *Switcher) FixVTMode(dev Device, vtAuto bool) (RepairResult, error) {
	if s == nil {
		return RepairFailed, errors.NilReceiver()
	}
	if dev == nil {
		return RepairFailed, errors.NilParam()
	}
	res, err := s.fixVTMode(dev, vtAuto)
	switch res {
	case RepairApplied:
		logx.Debug(`VT mode fixed`, s, `device`, dev.Name())
	case RepairNotNeeded:
		logx.Debug(`VT mode didn't need to be fixed`, s, `device`, dev.Name())
	case RepairPartial:
		logx.IsErr(err, `VT switch handshake only partially set up`, s, slog.LevelWarn, `device`, dev.Name(), `result`, res.String())
	default:
		logx.IsErr(err, `failed to set up VT mode`, s, slog.LevelError, `device`, dev.Name(), `result`, res.String())
	}
	return res, err
}

func (s *Switcher) fixVTMode(dev Device, vtAuto bool) (RepairResult, error) {
	mode, err := dev.GetMode()
	if logx.IsErr(err, `failed to query VT mode`, s, slog.LevelWarn) {
		return RepairUndetermined, errors.WrapPrefix(err, `VT_GETMODE`, 0)
	}
	if mode.Mode != ModeAuto {
		return RepairNotNeeded, nil
	}

	kdMode, err := dev.KDGetMode()
	if logx.IsErr(err, `failed to query kernel display mode`, s, slog.LevelWarn) {
		return RepairUndetermined, errors.WrapPrefix(err, `KDGETMODE`, 0)
	}
	if kdMode == KDText {
		return RepairNotNeeded, nil
	}

	logx.Debug(`VT is stuck in graphics mode`, s, `vt_mode`, linux.ModeString(mode.Mode), `kd_mode`, kdMode.String(), `vt_auto`, vtAuto)
	if vtAuto {
		// nobody is left to acknowledge a release with VT_RELDISP,
		// text mode lets the kernel switch on its own
		err := dev.KDSetMode(KDText)
		if logx.IsErr(err, `failed to set text mode for current VT`, s, slog.LevelWarn) {
			return RepairFailed, errors.WrapPrefix(err, `KDSETMODE`, 0)
		}
		return RepairApplied, nil
	}
	if err := s.handleVTSwitches(dev); err != nil {
		if errors.Is(err, consts.ErrHandshakePartial) {
			return RepairPartial, err
		}
		return RepairFailed, err
	}
	return RepairApplied, nil
}
