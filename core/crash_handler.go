package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	restoreMu sync.Mutex
	restoreFn func()
)

// SetCrashRestore registers the function that puts the terminal back into a sane state
// before a crash report is printed. The screen owner registers its Fini here
func SetCrashRestore(fn func()) {
	restoreMu.Lock()
	restoreFn = fn
	restoreMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	restoreMu.Lock()
	fn := restoreFn
	restoreMu.Unlock()
	if fn != nil {
		fn()
	}

	os.Stdout.Sync()

	// Use \r\n in case the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCAKE-CUTTER CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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

// Recover wraps fn so a panic inside it is routed to HandleCrash.
// Suited for errgroup workers, which run on goroutines the caller does not start
func Recover(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		return fn()
	}
}
