package actor

import (
	"sync/atomic"

	"github.com/ranjitd-sys/order-actor-system/pkg/lib"
)

// mailbox 无界 FIFO 信箱，多生产者单消费者
// Enqueue 永不因容量阻塞；Dequeue 在队列为空时阻塞，是消费侧唯一的挂起点
type mailbox[M any] struct {
	queue  *lib.Mpsc[envelope[M]]
	notify chan struct{}
	closed atomic.Bool
}

func newMailbox[M any]() *mailbox[M] {
	return &mailbox[M]{
		queue:  lib.NewMpsc[envelope[M]](),
		notify: make(chan struct{}, 1),
	}
}

// Enqueue 投递一个信封
// 信箱关闭后拒绝投递，返回 ErrActorStopped
func (mb *mailbox[M]) Enqueue(env envelope[M]) error {
	if mb.closed.Load() {
		return ErrActorStopped
	}
	mb.queue.Push(env)
	mb.wake()
	return nil
}

// Dequeue 取出一个信封，队列为空时阻塞等待
// 信箱关闭且队列已空时返回 false
func (mb *mailbox[M]) Dequeue() (envelope[M], bool) {
	for {
		if env, ok := mb.queue.Pop(); ok {
			return env, true
		}
		if mb.closed.Load() {
			var zero envelope[M]
			return zero, false
		}
		<-mb.notify
	}
}

// Close 关闭信箱并唤醒可能阻塞的消费者，重复关闭无害
func (mb *mailbox[M]) Close() {
	if !mb.closed.CompareAndSwap(false, true) {
		return
	}
	mb.wake()
}

// Drain 丢弃剩余信封，返回丢弃数量，只允许消费者调用
func (mb *mailbox[M]) Drain() int {
	var n int
	for {
		if _, ok := mb.queue.Pop(); !ok {
			return n
		}
		n++
	}
}

// wake 唤醒消费者，通道容量为 1，信号可合并
func (mb *mailbox[M]) wake() {
	select {
	case mb.notify <- struct{}{}:
	default:
	}
}

// IsEmpty 检查信箱队列是否为空
func (mb *mailbox[M]) IsEmpty() bool {
	return mb.queue.Empty()
}
