// Package hotkey provides a global keyboard kill switch for pointer control.
// With the cursor driven by hand gestures, the keyboard is the one input the
// user still fully controls, so the toggle must work regardless of focus.
package hotkey

import (
	"log"

	hook "github.com/robotn/gohook"
)

// DefaultKey is the toggle key when none is configured.
const DefaultKey = "f8"

// Listener watches for a global hotkey press and invokes the toggle
// callback each time it fires.
type Listener struct {
	key      string
	onToggle func()
}

// NewListener creates a Listener for the given key (gohook key name, e.g.
// "f8"). An empty key falls back to DefaultKey.
func NewListener(key string, onToggle func()) *Listener {
	if key == "" {
		key = DefaultKey
	}
	return &Listener{key: key, onToggle: onToggle}
}

// Run registers the hotkey and processes the global event stream. It blocks
// until Stop is called, so the caller runs it in its own goroutine.
func (l *Listener) Run() {
	hook.Register(hook.KeyDown, []string{l.key}, func(e hook.Event) {
		log.Printf("Kill switch %q pressed", l.key)
		if l.onToggle != nil {
			l.onToggle()
		}
	})

	evChan := hook.Start()
	<-hook.Process(evChan)
}

// Stop ends the global event hook, unblocking Run.
func (l *Listener) Stop() {
	hook.End()
}
