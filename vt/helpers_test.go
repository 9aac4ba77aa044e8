package vt_test

import (
	"bytes"
	"log/slog"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/srlehn/termvt/internal/dummyvt"
	"github.com/srlehn/termvt/internal/linux"
	"github.com/srlehn/termvt/vt"
)

var (
	sigRelease = syscall.Signal(linux.SIGRTMAX)
	sigAcquire = syscall.Signal(linux.SIGRTMAX - 1)
)

type fixture struct {
	kernel *dummyvt.Kernel
	reg    *dummyvt.Registrar
	logBuf *bytes.Buffer
	sw     *vt.Switcher
}

func newFixture(t *testing.T, active, nextFree int) *fixture {
	t.Helper()
	return newFixtureLevel(t, active, nextFree, slog.LevelDebug)
}

func newFixtureLevel(t *testing.T, active, nextFree int, lvl slog.Level) *fixture {
	t.Helper()
	f := &fixture{
		kernel: dummyvt.NewKernel(active, nextFree),
		reg:    dummyvt.NewRegistrar(),
		logBuf: &bytes.Buffer{},
	}
	h := slog.NewTextHandler(f.logBuf, &slog.HandlerOptions{Level: lvl})
	sw, err := vt.New(
		vt.SetDeviceOpener(f.kernel.Open),
		vt.SetSignalRegistrar(f.reg),
		vt.SetSLogger(h, true),
	)
	require.NoError(t, err)
	f.sw = sw
	return f
}

func (f *fixture) logged(msg string) int { return strings.Count(f.logBuf.String(), msg) }

func ops(calls []dummyvt.Call) []string {
	var ret []string
	for _, c := range calls {
		ret = append(ret, c.Op)
	}
	return ret
}

func stuckMode() vt.Mode { return vt.Mode{Mode: vt.ModeAuto} }
