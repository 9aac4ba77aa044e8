package vt

import (
	"fmt"
	"log/slog"
	"os"
	"syscall"

	"github.com/srlehn/termvt/internal/consts"
	"github.com/srlehn/termvt/internal/errors"
	"github.com/srlehn/termvt/internal/linux"
	"github.com/srlehn/termvt/internal/logx"
)

// Switcher switches the active VT of the Linux console.
type Switcher struct {
	logger       *slog.Logger
	masterPath   string
	vtPathFormat string
	opener       DeviceOpener
	signals      SignalRegistrar
	releaseSig   os.Signal
	acquireSig   os.Signal
}

var _ logx.LoggerProvider = (*Switcher)(nil)

var (
	// chosen defaults
	DefaultConfig = Options{
		SetMasterDevice(consts.MasterDevice),
		SetVTPathFormat(consts.VTPathFormat),
		SetDeviceOpener(OpenDevice),
		SetSignalRegistrar(ProcessSignals()),
		SetSignals(syscall.Signal(linux.SIGRTMAX), syscall.Signal(linux.SIGRTMAX-1)),
	}
)

// New returns a Switcher with DefaultConfig modified by opts.
func New(opts ...Option) (*Switcher, error) {
	s := &Switcher{}
	if err := s.SetOptions(DefaultConfig); err != nil {
		return nil, err
	}
	if err := s.SetOptions(opts...); err != nil {
		return nil, err
	}
	if s.opener == nil || s.signals == nil {
		return nil, errors.New(consts.ErrNilParam)
	}
	if s.releaseSig == nil || s.acquireSig == nil {
		return nil, errors.New(`VT switch signals unset`)
	}
	return s, nil
}

// Logger returns the configured logger, nil if logging is disabled.
func (s *Switcher) Logger() *slog.Logger {
	if s == nil {
		return nil
	}
	return s.logger
}

func (s *Switcher) vtPath(vt int) string { return fmt.Sprintf(s.vtPathFormat, vt) }

func (s *Switcher) openMaster() (Device, error) { return s.open(s.masterPath) }

func (s *Switcher) open(path string) (Device, error) {
	dev, err := s.opener(path)
	if err != nil {
		return nil, err
	}
	if dev == nil {
		return nil, errors.Errorf(`opener returned nil device for %s`, path)
	}
	return dev, nil
}

func (s *Switcher) closeDevice(dev Device) {
	if dev == nil {
		return
	}
	logx.IsErr(dev.Close(), `failed to close `+dev.Name(), s, slog.LevelWarn)
}
