package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashCleanup func()
)

// SetCrashHandler registers terminal cleanup to run before the stack trace is printed
// Keeps core independent of the terminal backend
func SetCrashHandler(cleanup func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashCleanup = cleanup
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	cleanup := crashCleanup
	crashMu.Unlock()

	if cleanup != nil {
		cleanup()
	}

	// Use \r\n for raw mode compatibility to avoid zig-zag output
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
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
