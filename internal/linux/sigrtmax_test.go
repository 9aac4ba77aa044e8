package linux

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSIGRTMAX(t *testing.T) {
	if strings.HasPrefix(runtime.GOARCH, `mips`) {
		assert.Equal(t, 127, SIGRTMAX)
	} else {
		assert.Equal(t, 64, SIGRTMAX)
	}
	// both switch signals fit into struct vt_mode
	assert.LessOrEqual(t, SIGRTMAX, 1<<15-1)
}
