package core

import (
	"testing"
	"time"
)

type fakeScreen struct{ finished bool }

func (f *fakeScreen) Fini() { f.finished = true }

func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Expected goroutine to run")
	}
}

func TestHandleCrashIgnoresNil(t *testing.T) {
	screen := &fakeScreen{}
	SetCrashScreen(screen)
	HandleCrash(nil)
	if screen.finished {
		t.Error("Expected nil recover value to leave the screen alone")
	}
}
