package vt

import (
	"log/slog"

	"github.com/srlehn/termvt/internal/consts"
	"github.com/srlehn/termvt/internal/errors"
	"github.com/srlehn/termvt/internal/logx"
)

// FetchAvailableVT returns the active VT. Without an active VT (no
// controlling console) the first unopened VT is returned instead.
// On failure consts.InvalidVT is returned alongside the error.
func (s *Switcher) FetchAvailableVT() (int, error) {
	if s == nil {
		return consts.InvalidVT, errors.NilReceiver()
	}
	dev, err := s.openMaster()
	if logx.IsErr(err, `failed to open VT master`, s, slog.LevelError) {
		return consts.InvalidVT, err
	}
	defer s.closeDevice(dev)

	st, errState := dev.GetState()
	if errState == nil {
		return validVT(int(st.Active), `VT_GETSTATE`)
	}
	logx.IsErr(errState, `failed to get current VT`, s, slog.LevelError)

	// no current tty, request the next one to open
	vt, err := dev.OpenQuery()
	if logx.IsErr(err, `failed to open new VT`, s, slog.LevelError) {
		return consts.InvalidVT, errors.Join(errState, err)
	}
	return validVT(vt, `VT_OPENQRY`)
}

// SetUpNewVT returns the first unopened VT and falls back to the active VT if
// the kernel has none left.
// On failure consts.InvalidVT is returned alongside the error.
func (s *Switcher) SetUpNewVT() (int, error) {
	if s == nil {
		return consts.InvalidVT, errors.NilReceiver()
	}
	dev, err := s.openMaster()
	if logx.IsErr(err, `failed to open VT master`, s, slog.LevelError) {
		return consts.InvalidVT, err
	}
	defer s.closeDevice(dev)

	vt, err := dev.OpenQuery()
	if logx.IsErr(err, `failed to open new VT`, s, slog.LevelError) {
		return consts.InvalidVT, errors.WrapPrefix(err, `VT_OPENQRY`, 0)
	}
	if vt > 0 {
		return vt, nil
	}

	// fall back to the active VT
	st, err := dev.GetState()
	if logx.IsErr(err, `failed to get current VT`, s, slog.LevelError) {
		return consts.InvalidVT, errors.WrapPrefix(err, `VT_GETSTATE`, 0)
	}
	logx.Warn(`new VT is not valid, falling back to active VT`, s, `new_vt`, vt, `active_vt`, st.Active)
	return validVT(int(st.Active), `VT_GETSTATE`)
}

func validVT(vt int, source string) (int, error) {
	if vt <= 0 {
		return consts.InvalidVT, errors.WrapPrefix(consts.ErrNoVT, source, 0)
	}
	return vt, nil
}
