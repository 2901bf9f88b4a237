package terminal

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
	AttrWide      Attr = 1 << 6 // Cell belongs to a two-column glyph
)

// AttrStyle masks only the SGR style bits (excludes structural flags)
const AttrStyle Attr = AttrBold | AttrDim | AttrItalic | AttrUnderline | AttrBlink | AttrReverse

// Cell represents a single terminal cell
// A two-column glyph occupies a head cell carrying the rune and a tail
// cell with Rune 0, both flagged AttrWide
type Cell struct {
	Rune  rune
	Fg    Color
	Bg    Color
	Attrs Attr
}

// Style groups the paint applied to a cell
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// ResizeEvent represents a terminal resize
type ResizeEvent struct {
	Width  int
	Height int
}

// Terminal provides low-level terminal access
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// ResizeChan returns channel that receives resize events
	ResizeChan() <-chan ResizeEvent

	// ColorMode returns detected color capability
	ColorMode() ColorMode

	// Flush writes cell buffer to terminal
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// Clear fills screen with specified background color
	Clear(bg Color)

	// SetCursorVisible shows/hides cursor
	SetCursorVisible(visible bool)

	// MoveCursor positions cursor (0-indexed)
	MoveCursor(x, y int)

	// Sync forces full redraw
	Sync()

	// Beep sounds the terminal bell
	Beep()

	// Sequences returns the escape sequence registry consulted by the
	// input decoder. Custom mappings registered here take effect on
	// subsequently read input
	Sequences() *SeqRegistry

	// SetEscapeTimeout adjusts how long a lone ESC may sit before it is
	// delivered as a plain Escape key. Non-positive restores the default
	SetEscapeTimeout(d time.Duration)

	// PollEvent blocks until next input event
	PollEvent() Event

	// TryPollEvent returns the next pending event without blocking
	TryPollEvent() (Event, bool)

	// PostEvent injects a synthetic event
	PostEvent(Event)
}

// backendWriter adapts Backend's error-only Write to the io.Writer
// expected by the output buffer; a nil error reports the full length
// as written
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// termImpl implements Terminal using the Backend interface
type termImpl struct {
	backend   Backend
	sequences *SeqRegistry
	decoder   *Decoder

	output      *outputBuffer
	input       *inputReader
	resizeCh    chan ResizeEvent
	syntheticCh chan Event

	cursorVisible atomic.Bool

	mu          sync.Mutex
	initialized bool
	finalized   bool
	escTimeout  time.Duration
}

// New creates a new Terminal instance
func New(colorMode ...ColorMode) Terminal {
	b := newBackend()

	var c ColorMode
	if len(colorMode) == 0 {
		c = DetectColorMode()
	} else {
		c = colorMode[0]
	}

	seqs := DefaultSequences()
	t := &termImpl{
		backend:     b,
		sequences:   seqs,
		decoder:     NewDecoder(seqs),
		syntheticCh: make(chan Event, 16),
		resizeCh:    make(chan ResizeEvent, 1),
		escTimeout:  defaultEscapeTimeout,
	}

	t.output = newOutputBuffer(backendWriter{b}, c)
	return t
}

// Init enters raw mode and sets up terminal
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	// Initialize backend (raw mode)
	if err := t.backend.Init(); err != nil {
		return err
	}

	w, h := t.backend.Size()
	t.output.resize(w, h)

	// Create input reader wrapping backend
	t.input = newInputReader(t.backend, t.decoder)
	t.input.setEscapeTimeout(t.escTimeout)

	// Set resize handler on backend
	t.backend.SetResizeHandler(func(w, h int) {
		// Non-blocking send to avoid backend blocking
		select {
		case t.resizeCh <- ResizeEvent{Width: w, Height: h}:
		default:
			// Drain and replace to ensure latest size is pending
			select {
			case <-t.resizeCh:
			default:
			}
			select {
			case t.resizeCh <- ResizeEvent{Width: w, Height: h}:
			default:
			}
		}
	})

	// Enter alternate screen, hide cursor
	t.writeRaw(csiAltScreenEnter)
	t.writeRaw(csiCursorHide)

	// DISABLE AUTO-WRAP
	// Prevents terminal scroll/wrap on bottom-right corner write
	t.writeRaw(csiAutoWrapOff)

	// Invisible cursor
	t.cursorVisible.Store(false)

	// Clear screen
	t.output.clear(ColorDefault)

	// Start input reader
	t.input.start()

	t.initialized = true
	return nil
}

// Fini restores terminal state
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	// Stop handlers
	if t.input != nil {
		t.input.stop()
	}

	// Show cursor
	t.writeRaw(csiCursorShow)

	// Exit alternate screen
	t.writeRaw(csiAltScreenExit)

	// Re-enable Auto-Wrap AFTER exiting alt screen to ensure the main buffer has wrap enabled
	t.writeRaw(csiAutoWrapOn)

	// Reset attributes
	t.writeRaw(csiSGR0)

	// Backend cleanup
	t.backend.Fini()

	t.finalized = true
}

// Size returns current terminal dimensions
func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

// ResizeChan returns the resize event channel
func (t *termImpl) ResizeChan() <-chan ResizeEvent {
	return t.resizeCh
}

// ColorMode returns detected color capability
func (t *termImpl) ColorMode() ColorMode {
	return t.output.colorMode
}

// Flush writes cell buffer to terminal
// Holds lock for entire operation to prevent race with Clear/MoveCursor
func (t *termImpl) Flush(cells []Cell, width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	// Validation against backend size; if mismatch, drop frame to prevent resize race corruption
	currW, currH := t.backend.Size()
	if currW != width || currH != height {
		return
	}

	t.output.flush(cells, width, height)
}

// Clear fills screen with background color
func (t *termImpl) Clear(bg Color) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.output.clear(bg)
}

// SetCursorVisible shows/hides cursor
func (t *termImpl) SetCursorVisible(visible bool) {
	if t.cursorVisible.Swap(visible) == visible {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	w := t.output.writer
	if visible {
		w.Write(csiCursorShow)
	} else {
		w.Write(csiCursorHide)
	}
	w.Flush()
}

// MoveCursor positions cursor (0-indexed)
func (t *termImpl) MoveCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	if t.output != nil {
		t.output.invalidateCursor()
	}

	w, h := t.backend.Size()
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x >= w {
		x = w - 1
	}
	if y >= h {
		y = h - 1
	}

	// Write through buffered writer to maintain stream order
	wBuf := t.output.writer
	writeCursorPos(wBuf, x, y)
	wBuf.Flush()
}

// Sync forces full redraw
func (t *termImpl) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	// Clear terminal before full redraw
	// Diff-based rendering assumes physical terminal matches front buffer state
	t.output.clear(ColorDefault)
	t.output.forceFullRedraw()
}

// Beep sounds the terminal bell
func (t *termImpl) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	w := t.output.writer
	w.Write(bel)
	w.Flush()
}

// Sequences returns the escape sequence registry
func (t *termImpl) Sequences() *SeqRegistry {
	return t.sequences
}

// SetEscapeTimeout adjusts the standalone ESC resolution deadline
func (t *termImpl) SetEscapeTimeout(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if d <= 0 {
		d = defaultEscapeTimeout
	}
	t.escTimeout = d
	if t.input != nil {
		t.input.setEscapeTimeout(d)
	}
}

// PollEvent blocks until next input event
func (t *termImpl) PollEvent() Event {
	// Check synthetic events first
	select {
	case ev := <-t.syntheticCh:
		return ev
	default:
	}

	// Wait for input or resize
	select {
	case ev := <-t.syntheticCh:
		return ev
	case ev := <-t.input.events():
		return ev
	case re := <-t.resizeCh:
		return Event{
			Type:   EventResize,
			Width:  re.Width,
			Height: re.Height,
		}
	}
}

// TryPollEvent returns the next pending event without blocking
func (t *termImpl) TryPollEvent() (Event, bool) {
	select {
	case ev := <-t.syntheticCh:
		return ev, true
	default:
	}
	select {
	case ev := <-t.input.events():
		return ev, true
	case re := <-t.resizeCh:
		return Event{
			Type:   EventResize,
			Width:  re.Width,
			Height: re.Height,
		}, true
	default:
		return Event{}, false
	}
}

// PostEvent injects a synthetic event
func (t *termImpl) PostEvent(ev Event) {
	select {
	case t.syntheticCh <- ev:
	default:
		// Channel full, drop
	}
}

// writeRaw writes raw bytes to output
func (t *termImpl) writeRaw(data []byte) {
	t.backend.Write(data)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Attempt raw mode reset via stty - escape sequences alone don't restore termios
	// This is best-effort; ignore errors in crash context
	resetTerminalMode()
}
