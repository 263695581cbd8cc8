package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestRecoverLogsAndExits(t *testing.T) {
	var (
		buf  bytes.Buffer
		code = -1
	)
	orig := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = orig })

	log := slog.New(slog.NewTextHandler(&buf, nil))

	func() {
		defer Recover(log)
		panic("boom")
	}()

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(buf.String(), "unhandled panic") || !strings.Contains(buf.String(), "boom") {
		t.Errorf("panic not logged: %q", buf.String())
	}
}

func TestRecoverNoPanic(t *testing.T) {
	called := false
	orig := exit
	exit = func(int) { called = true }
	t.Cleanup(func() { exit = orig })

	func() {
		defer Recover(nil)
	}()

	if called {
		t.Error("exit must not be called without a panic")
	}
}

func TestGoRecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	exited := make(chan int, 1)
	orig := exit
	exit = func(c int) { exited <- c }
	t.Cleanup(func() { exit = orig })

	log := slog.New(slog.NewTextHandler(&buf, nil))
	Go(log, func() { panic("listener failed") })

	select {
	case code := <-exited:
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("panic in goroutine was not handled")
	}
	if !strings.Contains(buf.String(), "listener failed") {
		t.Errorf("panic not logged: %q", buf.String())
	}
}
