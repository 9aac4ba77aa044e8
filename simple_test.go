package termvt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/termvt"
)

func TestSwitcherShared(t *testing.T) {
	sw, err := termvt.Switcher()
	require.NoError(t, err)
	require.NotNil(t, sw)
	sw2, err := termvt.Switcher()
	require.NoError(t, err)
	assert.Same(t, sw, sw2)
	// logging is off by default
	assert.Nil(t, sw.Logger())
}

func TestJumpToInvalidVT(t *testing.T) {
	// rejected before any device is opened
	termvt.JumpToVT(0, true)
	termvt.JumpToVT(termvt.InvalidVT, false)
}
