package terminal

import "time"

// Backend abstracts platform-specific terminal operations.
// This interface keeps the terminal logic platform-free and lets
// tests substitute a scripted input source.
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Capabilities
	Size() (width, height int)

	// I/O
	// Write writes raw bytes to the terminal output.
	Write(p []byte) error

	// Read fills buf with available input bytes and returns the count.
	// A zero count with nil error means the timeout elapsed with
	// nothing to read.
	Read(buf []byte, timeout time.Duration) (int, error)

	// Callbacks
	// SetResizeHandler registers a callback for terminal resize events.
	SetResizeHandler(handler func(width, height int))
}
