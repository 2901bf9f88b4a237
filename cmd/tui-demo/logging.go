package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "debug.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to a file when debug is set,
// and to io.Discard otherwise. Raw-mode terminals cannot share stderr,
// so nothing may log to the console while the UI runs.
// Returns the open log file, nil when logging is disabled
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)

	// Rotate oversized logs aside with a timestamp
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, "debug-"+time.Now().Format("20060102-150405")+".log")
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	return f
}
