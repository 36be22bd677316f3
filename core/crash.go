package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var crashHook atomic.Pointer[func()]

// SetCrashHook registers the terminal restore routine run before a crash report
// The engine stays independent of the terminal backend this way
func SetCrashHook(fn func()) {
	crashHook.Store(&fn)
}

// HandleCrash restores the terminal, prints the panic value with its stack and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if hook := crashHook.Load(); hook != nil && *hook != nil {
		(*hook)()
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mPALM-BOUNCE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crash never leaves the terminal in raw mode
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
