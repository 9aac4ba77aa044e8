package vt_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/srlehn/termvt/internal/consts"
	"github.com/srlehn/termvt/internal/dummyvt"
	"github.com/srlehn/termvt/vt"
)

func openMaster(t *testing.T, f *fixture) vt.Device {
	t.Helper()
	dev, err := f.kernel.Open(consts.MasterDevice)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dev.Close() })
	return dev
}

var mutatingOps = []string{dummyvt.OpSetMode, dummyvt.OpKDSetMode}

func TestFixVTModeNotNeeded(t *testing.T) {
	tests := map[string]struct {
		mode   vt.Mode
		kdMode vt.KDMode
	}{
		`process_graphics`: {vt.Mode{Mode: vt.ModeProcess}, vt.KDGraphics},
		`process_text`:     {vt.Mode{Mode: vt.ModeProcess}, vt.KDText},
		`auto_text`:        {vt.Mode{Mode: vt.ModeAuto}, vt.KDText},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			for _, vtAuto := range []bool{true, false} {
				f := newFixture(t, 1, 2)
				f.kernel.SetVTState(1, tc.mode, tc.kdMode)
				res, err := f.sw.FixVTMode(openMaster(t, f), vtAuto)
				require.NoError(t, err)
				assert.Equal(t, vt.RepairNotNeeded, res)
				assert.Empty(t, f.kernel.Calls(mutatingOps...))
				assert.Zero(t, f.reg.Registered(sigRelease))
				assert.Equal(t, 1, f.logged(`VT mode didn't need to be fixed`))
			}
		})
	}
}

func TestFixVTModeStuckControllerGone(t *testing.T) {
	f := newFixture(t, 1, 2)
	f.kernel.SetVTState(1, stuckMode(), vt.KDGraphics)
	master := openMaster(t, f)

	res, err := f.sw.FixVTMode(master, true)
	require.NoError(t, err)
	assert.Equal(t, vt.RepairApplied, res)
	assert.Equal(t,
		[]dummyvt.Call{{Device: consts.MasterDevice, Op: dummyvt.OpKDSetMode, Arg: int(vt.KDText)}},
		f.kernel.Calls(mutatingOps...),
	)
	assert.Zero(t, f.reg.Registered(sigRelease))
	assert.Zero(t, f.reg.Registered(sigAcquire))
	assert.Equal(t, 1, f.logged(`VT mode fixed`))

	// already repaired
	f.kernel.ResetCalls()
	res, err = f.sw.FixVTMode(master, true)
	require.NoError(t, err)
	assert.Equal(t, vt.RepairNotNeeded, res)
	assert.Empty(t, f.kernel.Calls(mutatingOps...))
}

func TestFixVTModeStuckControllerAlive(t *testing.T) {
	f := newFixture(t, 1, 2)
	f.kernel.SetVTState(1, stuckMode(), vt.KDGraphics)

	res, err := f.sw.FixVTMode(openMaster(t, f), false)
	require.NoError(t, err)
	assert.Equal(t, vt.RepairApplied, res)
	assert.Empty(t, f.kernel.Calls(dummyvt.OpKDSetMode))
	assert.Len(t, f.kernel.Calls(dummyvt.OpSetMode), 1)

	mode, kdMode := f.kernel.VTState(1)
	assert.Equal(t, vt.Mode{Mode: vt.ModeProcess, RelSig: int16(sigRelease), AcqSig: int16(sigAcquire)}, mode)
	assert.Equal(t, vt.KDGraphics, kdMode)
	assert.Equal(t, 1, f.reg.Registered(sigRelease))
	assert.Equal(t, 1, f.reg.Registered(sigAcquire))

	// VT_PROCESS now, nothing left to repair
	f.kernel.ResetCalls()
	res, err = f.sw.FixVTMode(openMaster(t, f), false)
	require.NoError(t, err)
	assert.Equal(t, vt.RepairNotNeeded, res)
	assert.Empty(t, f.kernel.Calls(mutatingOps...))
}

func TestFixVTModeQueryFailures(t *testing.T) {
	t.Run(`vt_mode`, func(t *testing.T) {
		f := newFixture(t, 1, 2)
		f.kernel.SetVTState(1, stuckMode(), vt.KDGraphics)
		f.kernel.FailNext(dummyvt.OpGetMode, unix.EIO)
		res, err := f.sw.FixVTMode(openMaster(t, f), true)
		assert.ErrorIs(t, err, unix.EIO)
		assert.Equal(t, vt.RepairUndetermined, res)
		assert.Empty(t, f.kernel.Calls(dummyvt.OpKDGetMode))
		assert.Empty(t, f.kernel.Calls(mutatingOps...))
		assert.Equal(t, 1, f.logged(`failed to query VT mode`))
		assert.Equal(t, 1, f.logged(`failed to set up VT mode`))
	})
	t.Run(`kd_mode`, func(t *testing.T) {
		f := newFixture(t, 1, 2)
		f.kernel.SetVTState(1, stuckMode(), vt.KDGraphics)
		f.kernel.FailNext(dummyvt.OpKDGetMode, unix.ENOTTY)
		res, err := f.sw.FixVTMode(openMaster(t, f), false)
		assert.ErrorIs(t, err, unix.ENOTTY)
		assert.Equal(t, vt.RepairUndetermined, res)
		assert.Empty(t, f.kernel.Calls(mutatingOps...))
		assert.Zero(t, f.reg.Registered(sigRelease))
	})
	t.Run(`set_text_mode`, func(t *testing.T) {
		f := newFixture(t, 1, 2)
		f.kernel.SetVTState(1, stuckMode(), vt.KDGraphics)
		f.kernel.FailNext(dummyvt.OpKDSetMode, unix.EPERM)
		res, err := f.sw.FixVTMode(openMaster(t, f), true)
		assert.ErrorIs(t, err, unix.EPERM)
		assert.Equal(t, vt.RepairFailed, res)
		assert.Equal(t, 1, f.logged(`failed to set text mode for current VT`))
	})
}

func TestFixVTModePartialHandshake(t *testing.T) {
	f := newFixtureLevel(t, 1, 2, slog.LevelWarn)
	f.kernel.SetVTState(1, stuckMode(), vt.KDGraphics)
	f.kernel.FailNext(dummyvt.OpSetMode, unix.EPERM)

	res, err := f.sw.FixVTMode(openMaster(t, f), false)
	assert.Equal(t, vt.RepairPartial, res)
	assert.Equal(t, `partial`, res.String())
	assert.ErrorIs(t, err, consts.ErrHandshakePartial)
	assert.ErrorIs(t, err, unix.EPERM)
	// handlers are installed regardless
	assert.Equal(t, 1, f.reg.Registered(sigRelease))
	assert.Equal(t, 1, f.reg.Registered(sigAcquire))
	assert.Empty(t, f.kernel.Calls(dummyvt.OpKDSetMode))

	assert.Equal(t, 1, f.logged(`level=WARN msg="VT switch handshake only partially set up`))
	assert.Equal(t, 1, f.logged(unix.EPERM.Error()))
	assert.Equal(t, 1, f.logged(`result=partial`))
	assert.Zero(t, f.logged(`failed to set up VT mode`))
	assert.Zero(t, f.logged(`level=ERROR`))
}

func TestFixVTModeNilDevice(t *testing.T) {
	f := newFixture(t, 1, 2)
	res, err := f.sw.FixVTMode(nil, true)
	assert.Error(t, err)
	assert.Equal(t, vt.RepairFailed, res)
}
