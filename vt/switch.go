package vt

import (
	"log/slog"

	"github.com/muesli/termenv"

	"github.com/srlehn/termvt/internal/errors"
	"github.com/srlehn/termvt/internal/logx"
)

// JumpToVT makes vt the active VT and blocks until the kernel reports the
// switch as done. vtAuto states that the process controlling the current VT
// is gone, so no VT switch handshake is set up.
// Failures are logged only.
//
// The wait has no timeout: a VT_PROCESS owner that never acknowledges the
// release keeps JumpToVT blocked.
func (s *Switcher) JumpToVT(vt int, vtAuto bool) {
	if s == nil {
		return
	}
	if vt <= 0 {
		logx.Error(`refusing to jump to invalid VT`, s, `vt`, vt)
		return
	}
	logx.Debug(`jumping to VT`, s, `vt`, vt)

	master, err := s.openMaster()
	logx.IsErr(err, `failed to open VT master`, s, slog.LevelWarn)
	defer s.closeDevice(master)

	var dev Device
	vtPath := s.vtPath(vt)
	target, err := s.open(vtPath)
	if err == nil {
		defer s.closeDevice(target)
		dev = target

		clearScreen(target)

		// graphics mode prevents flickering
		err := target.KDSetMode(KDGraphics)
		logx.IsErr(err, `failed to set graphics mode`, s, slog.LevelWarn, `vt`, vt)

		// the current VT might be left in KD_GRAPHICS with VT_AUTO,
		// VT_WAITACTIVE would hang forever on that
		if master != nil {
			_, _ = s.FixVTMode(master, vtAuto)
		}
	} else {
		logx.IsErr(err, `failed to open VT`, s, slog.LevelWarn, `vt`, vt)
		if master == nil {
			logx.Error(`no VT device left to switch with`, s, `vt`, vt)
			return
		}
		logx.Debug(`using VT master instead of VT device`, s, `master`, master.Name(), `vt_device`, vtPath)
		dev = master
	}

	// without a controlling process nobody could send VT_RELDISP,
	// the kernel has to switch on its own
	if !vtAuto {
		err := s.handleVTSwitches(dev)
		logx.IsErr(err, `failed to set up VT switch handshake`, s, slog.LevelWarn, `vt`, vt)
	}

	err = retryInterrupted(func() error { return dev.Activate(vt) })
	if logx.IsErr(err, `couldn't initiate jump to VT`, s, slog.LevelWarn, `vt`, vt) {
		return
	}
	err = retryInterrupted(func() error { return dev.WaitActive(vt) })
	if logx.IsErr(err, `couldn't finalize jump to VT`, s, slog.LevelWarn, `vt`, vt) {
		return
	}
	logx.Info(`jumped to VT`, s, `vt`, vt)
}

// retryInterrupted repeats fn as long as it fails with EINTR.
func retryInterrupted(fn func() error) error {
	for {
		err := fn()
		if !errors.IsInterrupted(err) {
			return err
		}
	}
}

func clearScreen(dev Device) {
	out := termenv.NewOutput(dev, termenv.WithProfile(termenv.Ascii))
	out.ClearScreen()
}
