package core

import (
	"testing"
	"time"
)

func TestHandleCrashNilIsNoOp(t *testing.T) {
	// The deferred recover() hands nil to HandleCrash on every normal
	// return; that call must do nothing
	HandleCrash(nil)
}

func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("goroutine never ran")
	}
}
