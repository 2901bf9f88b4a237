package core

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/termkit/terminal"
)

// crashTerminal, when registered, is finalized before the stack trace
// prints so the trace lands on a cooked screen
var crashTerminal terminal.Terminal

// RegisterTerminal records the terminal HandleCrash restores. Pass nil
// to clear
func RegisterTerminal(t terminal.Terminal) {
	crashTerminal = t
}

// HandleCrash is the unified panic handler that resets the terminal and
// prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state immediately
	if crashTerminal != nil {
		crashTerminal.Fini()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}
	os.Stdout.Sync()

	// The terminal may still be raw, hence explicit \r\n line ends
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
