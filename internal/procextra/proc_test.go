package procextra

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTTY(t *testing.T) {
	tests := map[string]string{
		`tty2`:         `tty2`,
		`/tty2`:        `tty2`,
		`/dev/tty2`:    `tty2`,
		` /dev/pts/3 `: `pts/3`,
		``:             ``,
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeTTY(in), `input %q`, in)
	}
}

func TestProcGone(t *testing.T) {
	gone, err := ProcGone(int32(os.Getpid()))
	require.NoError(t, err)
	assert.False(t, gone)

	_, err = ProcGone(0)
	assert.Error(t, err)
}

func TestProcsOnTTYEmptyName(t *testing.T) {
	_, err := ProcsOnTTY(` `)
	assert.Error(t, err)
}
