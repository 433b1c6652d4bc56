package actor

import (
	"time"
)

func newChanWaiter[T any](timeout time.Duration) *chanWaiter[T] {
	w := new(chanWaiter[T])
	w.ch = make(chan T, 1)
	w.after = time.After(timeout)
	return w
}

// chanWaiter 带超时的一次性等待器
type chanWaiter[T any] struct {
	ch    chan T
	after <-chan time.Time
}

func (w *chanWaiter[T]) Wait() (T, error) {
	var t T
	select {
	case e := <-w.ch:
		return e, nil
	case <-w.after:
		return t, ErrWaiterTimeout
	}
}

func (w *chanWaiter[T]) Done(reply T) {
	// 非阻塞发送，多次调用 Done 不会卡住
	select {
	case w.ch <- reply:
	default:
	}
}
