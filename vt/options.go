package vt

import (
	"log/slog"
	"os"
	"strings"

	"github.com/srlehn/termvt/internal/errors"
)

type Option interface {
	ApplyOption(s *Switcher) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Switcher) error

func (o OptFunc) ApplyOption(s *Switcher) error { return o(s) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(s *Switcher) error { return s.SetOptions([]Option(o)...) }

func (s *Switcher) SetOptions(opts ...Option) error {
	if s == nil {
		return errors.NilReceiver()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(s); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetSLogger enables logging through h. A nil h selects slog.Default().
func SetSLogger(h slog.Handler, enable bool) Option {
	return OptFunc(func(s *Switcher) error {
		if enable {
			if h == nil {
				s.logger = slog.Default()
			} else {
				s.logger = slog.New(h)
			}
		} else {
			s.logger = nil
		}
		return nil
	})
}

// SetMasterDevice sets the VT master device, /dev/tty0 by default.
func SetMasterDevice(path string) Option {
	return OptFunc(func(s *Switcher) error {
		if len(path) == 0 {
			return errors.New(`empty VT master device path`)
		}
		s.masterPath = path
		return nil
	})
}

// SetVTPathFormat sets the fmt format of per-VT device nodes, /dev/tty%d by default.
func SetVTPathFormat(format string) Option {
	return OptFunc(func(s *Switcher) error {
		if strings.Count(format, `%d`) != 1 {
			return errors.Errorf(`VT path format %q needs exactly one %%d verb`, format)
		}
		s.vtPathFormat = format
		return nil
	})
}

func SetDeviceOpener(opener DeviceOpener) Option {
	return OptFunc(func(s *Switcher) error {
		if opener == nil {
			return errors.NilParam()
		}
		s.opener = opener
		return nil
	})
}

func SetSignalRegistrar(reg SignalRegistrar) Option {
	return OptFunc(func(s *Switcher) error {
		if reg == nil {
			return errors.NilParam()
		}
		s.signals = reg
		return nil
	})
}

// SetSignals sets the signals the kernel raises for release and acquire
// requests once the VT is in VT_PROCESS mode.
func SetSignals(release, acquire os.Signal) Option {
	return OptFunc(func(s *Switcher) error {
		if release == nil || acquire == nil {
			return errors.NilParam()
		}
		if signalNumber(release) <= 0 || signalNumber(acquire) <= 0 {
			return errors.Errorf(`unsupported VT switch signals %v, %v`, release, acquire)
		}
		if release == acquire {
			return errors.New(`release and acquire signal must differ`)
		}
		s.releaseSig = release
		s.acquireSig = acquire
		return nil
	})
}
