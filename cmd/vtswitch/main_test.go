package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/termvt/internal/consts"
	"github.com/srlehn/termvt/internal/dummyvt"
	"github.com/srlehn/termvt/vt"
)

func TestLogHandler(t *testing.T) {
	defer func() { logLevelFlag, logFileFlag, debugFlag = `warn`, ``, false }()

	logLevelFlag = `bogus`
	_, _, err := logHandler()
	assert.Error(t, err)

	logLevelFlag = `info`
	logFileFlag = filepath.Join(t.TempDir(), `vtswitch.log`)
	h, closeFn, err := logHandler()
	require.NoError(t, err)
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	require.NoError(t, closeFn())

	debugFlag = true
	h, _, err = logHandler()
	require.NoError(t, err)
	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestJumpFunc(t *testing.T) {
	defer func() { jumpNew, jumpAuto = false, false }()
	k := dummyvt.NewKernel(1, 3)
	sw, err := vt.New(vt.SetDeviceOpener(k.Open), vt.SetSignalRegistrar(dummyvt.NewRegistrar()))
	require.NoError(t, err)
	cmd := &cobra.Command{}
	cmd.Flags().Int32(`controller-pid`, 0, ``)

	assert.Error(t, jumpFunc(cmd, nil)(sw))
	assert.Error(t, jumpFunc(cmd, []string{`x`})(sw))
	assert.ErrorIs(t, jumpFunc(cmd, []string{`0`})(sw), consts.ErrInvalidVT)
	assert.Empty(t, k.Calls())

	jumpAuto = true
	require.NoError(t, jumpFunc(cmd, []string{`2`})(sw))
	assert.Equal(t, 2, k.Active())

	jumpNew = true
	assert.Error(t, jumpFunc(cmd, []string{`2`})(sw))
	require.NoError(t, jumpFunc(cmd, nil)(sw))
	assert.Equal(t, 3, k.Active())
	assert.Zero(t, k.OpenHandles())
}
