package core

import (
	"testing"
	"time"
)

func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Expected goroutine to run")
	}
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	called := false
	SetCrashHook(func() { called = true })
	defer SetCrashHook(nil)

	HandleCrash(nil)
	if called {
		t.Error("Expected crash hook to stay unused for nil panic value")
	}
}
