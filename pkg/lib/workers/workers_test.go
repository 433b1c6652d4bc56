package workers

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSubmit(t *testing.T) {
	done := make(chan struct{})
	if err := Submit(func() { close(done) }, nil); err != nil {
		t.Fatalf("submit: %v", err)
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task never ran")
	}
}

func TestSubmitRecover(t *testing.T) {
	var caught atomic.Value
	done := make(chan struct{})
	err := Submit(func() { panic("boom") }, func(err interface{}) {
		caught.Store(err)
		close(done)
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("recover never ran")
	}
	if got := caught.Load(); got != "boom" {
		t.Fatalf("recovered = %v", got)
	}
}
