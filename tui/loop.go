package tui

import (
	"time"

	"github.com/lixenwraith/termkit/terminal"
)

// DefaultTick is the frame interval Loop uses when Tick is unset, ~30 fps
const DefaultTick = 33 * time.Millisecond

// Loop runs a fixed-timestep event loop: every tick it drains all pending
// input without blocking, reports at most one resize, then renders one
// frame. Callbacks run on the Run goroutine, so state they touch needs no
// locking. Callbacks end the loop by calling Quit
type Loop struct {
	Term terminal.Terminal
	Tick time.Duration

	// OnEvent receives every event, including resize, error and close.
	// Error and close events end the loop after OnEvent sees them
	OnEvent func(ev terminal.Event)

	// OnResize fires once per tick when one or more resize events
	// arrived, with the latest dimensions
	OnResize func(w, h int)

	// OnFrame renders one frame
	OnFrame func()

	quit bool
}

// Quit ends the loop after the current tick completes
func (l *Loop) Quit() {
	l.quit = true
}

// Run drives the loop until Quit is called or input ends. It renders an
// initial frame before the first tick. The returned error is the read
// error that closed input, nil on a cooperative quit
func (l *Loop) Run() error {
	tick := l.Tick
	if tick <= 0 {
		tick = DefaultTick
	}

	l.quit = false
	if l.OnFrame != nil {
		l.OnFrame()
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for !l.quit {
		<-ticker.C

		var resized bool
		var resizeW, resizeH int
		var readErr error

		for {
			ev, ok := l.Term.TryPollEvent()
			if !ok {
				break
			}
			if l.OnEvent != nil {
				l.OnEvent(ev)
			}
			switch ev.Type {
			case terminal.EventResize:
				resized = true
				resizeW, resizeH = ev.Width, ev.Height
			case terminal.EventError:
				readErr = ev.Err
				l.quit = true
			case terminal.EventClosed:
				l.quit = true
			}
		}

		if resized && l.OnResize != nil {
			l.OnResize(resizeW, resizeH)
		}
		if l.quit {
			return readErr
		}
		if l.OnFrame != nil {
			l.OnFrame()
		}
	}

	return nil
}
