package procextra

import (
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/srlehn/termvt/internal/errors"
)

// TTYOfProc returns the controlling terminal of proc without the /dev/ prefix
// (e.g. "tty2"), "" if it has none.
func TTYOfProc(proc *process.Process) (string, error) {
	if proc == nil {
		return ``, errors.NilParam()
	}
	tty, err := proc.Terminal()
	if err != nil {
		return ``, errors.New(err)
	}
	return normalizeTTY(tty), nil
}

// ProcsOnTTY lists the processes whose controlling terminal is ttyName
// ("tty2", "/dev/tty2").
func ProcsOnTTY(ttyName string) ([]*process.Process, error) {
	ttyName = normalizeTTY(ttyName)
	if len(ttyName) == 0 {
		return nil, errors.New(`empty tty name`)
	}
	procs, err := process.Processes()
	if err != nil {
		return nil, errors.New(err)
	}
	var ret []*process.Process
	for _, proc := range procs {
		tty, err := TTYOfProc(proc)
		if err != nil {
			// process vanished or is inaccessible
			continue
		}
		if tty == ttyName {
			ret = append(ret, proc)
		}
	}
	return ret, nil
}

// ProcGone reports whether no process with pid exists anymore.
func ProcGone(pid int32) (bool, error) {
	if pid <= 0 {
		return false, errors.Errorf(`invalid pid %d`, pid)
	}
	exists, err := process.PidExists(pid)
	if err != nil {
		return false, errors.New(err)
	}
	return !exists, nil
}

func normalizeTTY(tty string) string {
	tty = strings.TrimSpace(tty)
	tty = strings.TrimPrefix(tty, `/dev`)
	return strings.TrimPrefix(filepath.Clean(`/`+tty), `/`)
}
