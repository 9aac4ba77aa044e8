package vt

import (
	"os"
	"os/signal"
	"sync"
)

// SignalRegistrar binds a handler to a signal for the rest of the process
// lifetime. Registering the same signal again replaces its handler.
type SignalRegistrar interface {
	Register(sig os.Signal, handler func())
}

var (
	processSignalsOnce sync.Once
	processSignals     *signalTable
)

// ProcessSignals returns the process-wide signal table. Signals registered
// with it are never unsubscribed.
func ProcessSignals() SignalRegistrar {
	processSignalsOnce.Do(func() { processSignals = &signalTable{} })
	return processSignals
}

var _ SignalRegistrar = (*signalTable)(nil)

type signalTable struct {
	mu       sync.Mutex
	handlers map[os.Signal]func()
	ch       chan os.Signal
}

func (t *signalTable) Register(sig os.Signal, handler func()) {
	if t == nil || sig == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.handlers == nil {
		t.handlers = make(map[os.Signal]func())
		t.ch = make(chan os.Signal, 4)
		go t.dispatch()
	}
	_, subscribed := t.handlers[sig]
	t.handlers[sig] = handler
	if !subscribed {
		signal.Notify(t.ch, sig)
	}
}

func (t *signalTable) dispatch() {
	for sig := range t.ch {
		t.mu.Lock()
		handler := t.handlers[sig]
		t.mu.Unlock()
		if handler != nil {
			handler()
		}
	}
}
