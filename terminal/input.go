package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventError  // Read error
	EventClosed // Input closed
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError
}

const (
	// defaultEscapeTimeout is the duration to wait after ESC to distinguish
	// standalone ESC from escape sequence start
	defaultEscapeTimeout = 50 * time.Millisecond

	// basePollInterval is the idle read timeout, bounds shutdown latency
	basePollInterval = 100 * time.Millisecond

	readBufferSize = 256
)

// inputReader handles raw stdin parsing
type inputReader struct {
	backend    Backend
	decoder    *Decoder
	eventCh    chan Event
	stopCh     chan struct{}
	doneCh     chan struct{}
	escTimeout atomic.Int64
	mu         sync.Mutex
	running    bool
}

// newInputReader creates a new input reader
func newInputReader(backend Backend, decoder *Decoder) *inputReader {
	r := &inputReader{
		backend: backend,
		decoder: decoder,
		eventCh: make(chan Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	r.escTimeout.Store(int64(defaultEscapeTimeout))
	return r
}

func (r *inputReader) setEscapeTimeout(d time.Duration) {
	if d <= 0 {
		d = defaultEscapeTimeout
	}
	r.escTimeout.Store(int64(d))
}

func (r *inputReader) escapeTimeout() time.Duration {
	return time.Duration(r.escTimeout.Load())
}

// start begins reading input in a goroutine
func (r *inputReader) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.readLoop()
}

// stop signals the reader to stop
func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	// Wait with timeout - don't block forever if read is stuck
	select {
	case <-r.doneCh:
	case <-time.After(2 * basePollInterval):
		// Reader stuck on blocking read, proceed anyway
	}
}

// events returns the event channel
func (r *inputReader) events() <-chan Event {
	return r.eventCh
}

// readLoop is the main input reading goroutine
func (r *inputReader) readLoop() {
	defer close(r.doneCh)

	// Panic recovery for raw input reader
	defer func() {
		if rec := recover(); rec != nil {
			EmergencyReset(os.Stdout)
			// Use \r\n for clean output
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT READER CRASHED: %v\x1b[0m\r\n", rec)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	buf := make([]byte, readBufferSize)
	for {
		select {
		case <-r.stopCh:
			r.sendEvent(Event{Type: EventClosed})
			return
		default:
		}

		// While the decoder holds a partial escape, shorten the poll so
		// expiry fires close to the configured deadline
		timeout := basePollInterval
		if r.decoder.Pending() {
			timeout = r.escapeTimeout()
		}

		n, err := r.backend.Read(buf, timeout)
		if err != nil {
			r.sendEvent(Event{Type: EventError, Err: err})
			return
		}
		if n == 0 {
			// Timeout (Unix poll) or empty read
			if r.decoder.Pending() {
				r.emitAll(r.decoder.Expire())
			}
			continue
		}
		r.emitAll(r.decoder.Feed(buf[:n]))
	}
}

func (r *inputReader) emitAll(evs []Event) {
	for _, ev := range evs {
		r.sendEvent(ev)
	}
}

// sendEvent sends an event to the channel, non-blocking
func (r *inputReader) sendEvent(ev Event) {
	select {
	case r.eventCh <- ev:
	default:
		// Channel full, drop event
	}
}
