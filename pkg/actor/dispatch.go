package actor

import (
	"github.com/ranjitd-sys/order-actor-system/pkg/lib/workers"
)

// Dispatcher 决定监督循环跑在哪个执行体上
type Dispatcher interface {
	// Schedule 调度 fn 执行，fn 内未被捕获的 panic 交给 recoverFun
	Schedule(fn func(), recoverFun func(err interface{})) error
	// Throughput 连续处理多少条消息后让出 CPU
	Throughput() int
}

// goroutineDispatcher 独立协程调度器
type goroutineDispatcher int

func NewGoroutineDispatcher(throughput int) Dispatcher {
	return goroutineDispatcher(throughput)
}

func (goroutineDispatcher) Schedule(fn func(), recoverFun func(err interface{})) error {
	go func() {
		defer func() {
			if err := recover(); err != nil {
				recoverFun(err)
			}
		}()
		fn()
	}()
	return nil
}

func (d goroutineDispatcher) Throughput() int {
	return int(d)
}

// poolDispatcher 协程池调度器
// 监督循环是长驻任务，会占用池内一个 worker，池容量决定可同时运行的 actor 数
type poolDispatcher int

func NewPoolDispatcher(throughput int) Dispatcher {
	return poolDispatcher(throughput)
}

func (poolDispatcher) Schedule(fn func(), recoverFun func(err interface{})) error {
	return workers.Submit(fn, recoverFun)
}

func (d poolDispatcher) Throughput() int {
	return int(d)
}
