package dummyvt

import (
	"os"
	"sync"

	"github.com/srlehn/termvt/vt"
)

// Registrar is a vt.SignalRegistrar that records registrations instead of
// subscribing to signals. Raise runs a registered handler.
type Registrar struct {
	mu       sync.Mutex
	handlers map[os.Signal]func()
	count    map[os.Signal]int
}

var _ vt.SignalRegistrar = (*Registrar)(nil)

func NewRegistrar() *Registrar {
	return &Registrar{
		handlers: make(map[os.Signal]func()),
		count:    make(map[os.Signal]int),
	}
}

func (r *Registrar) Register(sig os.Signal, handler func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[sig] = handler
	r.count[sig]++
}

// Registered reports how often sig was registered.
func (r *Registrar) Registered(sig os.Signal) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count[sig]
}

// Raise runs the handler of sig and reports whether there was one.
func (r *Registrar) Raise(sig os.Signal) bool {
	r.mu.Lock()
	handler := r.handlers[sig]
	r.mu.Unlock()
	if handler == nil {
		return false
	}
	handler()
	return true
}
