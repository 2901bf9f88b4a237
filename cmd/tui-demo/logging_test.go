package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

// chdir enters dir for the duration of the test and restores the
// original working directory on cleanup (testing.T.Chdir needs Go 1.24)
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldwd) })
}

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupLoggingEnabledWithDebug(t *testing.T) {
	chdir(t, t.TempDir())

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logPath := filepath.Join(logDir, logFileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Expected log file to be created")
	}

	log.Println("probe")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLoggingRotation(t *testing.T) {
	chdir(t, t.TempDir())

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)

	// Seed an oversized log so setup has to rotate it aside
	data := make([]byte, maxLogSize+1)
	if err := os.WriteFile(logPath, data, 0644); err != nil {
		t.Fatalf("Failed to write oversized log: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected fresh log file under %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLoggingNoStdoutStderr(t *testing.T) {
	chdir(t, t.TempDir())

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	if log.Writer() == os.Stdout {
		t.Error("Log output should not be stdout")
	}
	if log.Writer() == os.Stderr {
		t.Error("Log output should not be stderr")
	}
}
