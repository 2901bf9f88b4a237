package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/termkit/terminal"
)

// loopTerm queues events for TryPollEvent
type loopTerm struct {
	terminal.Terminal
	queue []terminal.Event
}

func (f *loopTerm) TryPollEvent() (terminal.Event, bool) {
	if len(f.queue) == 0 {
		return terminal.Event{}, false
	}
	ev := f.queue[0]
	f.queue = f.queue[1:]
	return ev, true
}

func TestLoopQuitFromFrame(t *testing.T) {
	frames := 0
	l := &Loop{Term: &loopTerm{}, Tick: time.Millisecond}
	l.OnFrame = func() {
		frames++
		if frames == 3 {
			l.Quit()
		}
	}

	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if frames != 3 {
		t.Errorf("frames = %d, want 3", frames)
	}
}

func TestLoopInitialFrameBeforeEvents(t *testing.T) {
	term := &loopTerm{queue: []terminal.Event{
		{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'a'},
	}}

	var order []string
	l := &Loop{Term: term, Tick: time.Millisecond}
	l.OnEvent = func(ev terminal.Event) {
		order = append(order, "event")
	}
	l.OnFrame = func() {
		order = append(order, "frame")
		if len(order) >= 3 {
			l.Quit()
		}
	}

	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(order) < 3 || order[0] != "frame" || order[1] != "event" || order[2] != "frame" {
		t.Errorf("order = %v, want initial frame, then event, then frame", order)
	}
}

func TestLoopLatchesResize(t *testing.T) {
	term := &loopTerm{queue: []terminal.Event{
		{Type: terminal.EventResize, Width: 80, Height: 24},
		{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'x'},
		{Type: terminal.EventResize, Width: 100, Height: 30},
	}}

	events := 0
	resizes := 0
	frames := 0
	var lastW, lastH int

	l := &Loop{Term: term, Tick: time.Millisecond}
	l.OnEvent = func(ev terminal.Event) { events++ }
	l.OnResize = func(w, h int) {
		resizes++
		lastW, lastH = w, h
	}
	l.OnFrame = func() {
		frames++
		if frames == 2 {
			l.Quit()
		}
	}

	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if events != 3 {
		t.Errorf("events = %d, want all 3 delivered", events)
	}
	if resizes != 1 {
		t.Errorf("resizes = %d, want one latched callback", resizes)
	}
	if lastW != 100 || lastH != 30 {
		t.Errorf("resize = %dx%d, want latest 100x30", lastW, lastH)
	}
}

func TestLoopEndsOnClosed(t *testing.T) {
	term := &loopTerm{queue: []terminal.Event{
		{Type: terminal.EventClosed},
	}}

	sawClosed := false
	frames := 0
	l := &Loop{Term: term, Tick: time.Millisecond}
	l.OnEvent = func(ev terminal.Event) {
		if ev.Type == terminal.EventClosed {
			sawClosed = true
		}
	}
	l.OnFrame = func() { frames++ }

	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !sawClosed {
		t.Error("OnEvent never saw the close event")
	}
	if frames != 1 {
		t.Errorf("frames = %d, want only the initial frame", frames)
	}
}

func TestLoopReturnsReadError(t *testing.T) {
	readErr := errors.New("tty gone")
	term := &loopTerm{queue: []terminal.Event{
		{Type: terminal.EventError, Err: readErr},
	}}

	l := &Loop{Term: term, Tick: time.Millisecond, OnFrame: func() {}}
	if err := l.Run(); !errors.Is(err, readErr) {
		t.Fatalf("Run = %v, want the read error", err)
	}
}

func TestLoopNilCallbacks(t *testing.T) {
	term := &loopTerm{queue: []terminal.Event{
		{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'a'},
		{Type: terminal.EventResize, Width: 10, Height: 5},
		{Type: terminal.EventClosed},
	}}

	l := &Loop{Term: term, Tick: time.Millisecond}
	if err := l.Run(); err != nil {
		t.Fatalf("Run with nil callbacks: %v", err)
	}
}
