// @focus: #sys { term }
// Package terminal provides direct ANSI terminal control with zero-alloc rendering.
//
// Features:
//   - 16-color and 256-color palette support
//   - Double-buffered output with cell-level diffing
//   - Raw stdin decoding with a dialect-aware escape sequence registry
//   - SIGWINCH resize detection
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
