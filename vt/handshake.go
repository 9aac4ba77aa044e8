package vt

import (
	"log/slog"
	"os"
	"syscall"

	"github.com/srlehn/termvt/internal/consts"
	"github.com/srlehn/termvt/internal/errors"
	"github.com/srlehn/termvt/internal/logx"
)

// handleVTSwitches puts dev into VT_PROCESS mode and installs the release and
// acquire handlers. The handlers are installed even if setting the mode fails,
// the returned error then wraps consts.ErrHandshakePartial.
func (s *Switcher) handleVTSwitches(dev Device) error {
	if s == nil {
		return errors.NilReceiver()
	}
	if dev == nil {
		return errors.NilParam()
	}
	req := Mode{
		Mode:   ModeProcess,
		RelSig: signalNumber(s.releaseSig),
		AcqSig: signalNumber(s.acquireSig),
	}
	errSet := dev.SetMode(req)
	logx.IsErr(errSet, `failed to manage VT manually`, s, slog.LevelDebug, `device`, dev.Name())

	s.signals.Register(s.releaseSig, s.onReleaseDisplay)
	s.signals.Register(s.acquireSig, s.onAcquireDisplay)

	if errSet != nil {
		return errors.Join(consts.ErrHandshakePartial, errSet)
	}
	return nil
}

func (s *Switcher) onReleaseDisplay() { s.relDisp(1) }

func (s *Switcher) onAcquireDisplay() { s.relDisp(AckAcquire) }

// relDisp answers a switch request with VT_RELDISP. It runs in signal
// handlers, so it uses its own master handle and does not log.
func (s *Switcher) relDisp(arg int) {
	dev, err := s.opener(s.masterPath)
	if err != nil || dev == nil {
		return
	}
	_ = dev.ReleaseDisplay(arg)
	_ = dev.Close()
}

func signalNumber(sig os.Signal) int16 {
	if sn, ok := sig.(syscall.Signal); ok {
		return int16(sn)
	}
	return 0
}
