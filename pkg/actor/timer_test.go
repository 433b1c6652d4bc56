package actor

import (
	"testing"
	"time"
)

func TestSendAfter(t *testing.T) {
	h, err := Spawn("after", 0, sumHandler)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	id := h.SendAfter(20*time.Millisecond, 5)
	if id <= 0 {
		t.Fatalf("timer id = %d", id)
	}
	waitFor(t, time.Second, func() bool { return h.State() == 5 })
}

func TestSendAfterCancel(t *testing.T) {
	h, err := Spawn("after-cancel", 0, sumHandler)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	id := h.SendAfter(100*time.Millisecond, 7)
	if !h.CancelTimer(id) {
		t.Fatal("cancel returned false for live timer")
	}
	if h.CancelTimer(id) {
		t.Fatal("cancel returned true for dead timer")
	}
	time.Sleep(150 * time.Millisecond)
	if got := h.State(); got != 0 {
		t.Fatalf("cancelled timer fired, state = %d", got)
	}
}

func TestSendEvery(t *testing.T) {
	h, err := Spawn("every", 0, sumHandler)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	id := h.SendEvery(10*time.Millisecond, 1)
	waitFor(t, 2*time.Second, func() bool { return h.State() >= 3 })

	if !h.CancelTimer(id) {
		t.Fatal("cancel returned false for live ticker")
	}
	snapshot := h.State()
	time.Sleep(60 * time.Millisecond)
	// 取消时可能有一次已经在途的投递，之后不再增长
	if got := h.State(); got > snapshot+1 {
		t.Fatalf("ticker kept firing after cancel: %d -> %d", snapshot, got)
	}
}

// TestTimerAfterStop 停止后到期的定时投递被信箱拒绝，是无害竞态
func TestTimerAfterStop(t *testing.T) {
	h, err := Spawn("timer-stop", 0, sumHandler)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	tm := newTimerManager()
	fired := make(chan error, 1)
	tm.After(30*time.Millisecond, func() {
		fired <- h.Send(9)
	})

	_ = h.Stop()
	waitFor(t, time.Second, func() bool { return h.Stopped() })

	select {
	case err := <-fired:
		if err == nil {
			t.Fatal("enqueue accepted after stop")
		}
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}
	if got := h.State(); got != 0 {
		t.Fatalf("state mutated after stop: %d", got)
	}
}

func TestCancelAllTimers(t *testing.T) {
	h, err := Spawn("cancel-all", 0, sumHandler)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	h.SendAfter(100*time.Millisecond, 1)
	h.SendEvery(100*time.Millisecond, 1)
	h.CancelAllTimers()
	time.Sleep(150 * time.Millisecond)
	if got := h.State(); got != 0 {
		t.Fatalf("cancelled timers fired, state = %d", got)
	}
}
