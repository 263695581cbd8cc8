package logging

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
)

// exit is swapped in tests
var exit = os.Exit

// Recover is the process-level error boundary. Deferred at the top of main, it logs an
// unhandled panic with its stack and terminates the process with status 1.
func Recover(log *slog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	if log == nil {
		log = slog.Default()
	}

	log.Error("unhandled panic",
		slog.String("panic", fmt.Sprint(r)),
		slog.String("stack", string(debug.Stack())),
	)
	exit(1)
}

// Go runs fn in a new goroutine guarded by Recover
func Go(log *slog.Logger, fn func()) {
	go func() {
		defer Recover(log)
		fn()
	}()
}
