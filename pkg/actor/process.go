package actor

import (
	"runtime"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ranjitd-sys/order-actor-system/pkg/glog"
)

const (
	statusRunning int32 = iota
	statusStopped
)

// process 监督循环，actor 唯一的消费者
// handler 的失败被重试、吞掉并上报（fail-open）；循环自身的故障立即永久终止（fail-fast）
type process[S, M any] struct {
	name       string
	mailbox    *mailbox[M]
	cell       *cell[S]
	initial    S
	handler    Handler[S, M]
	retry      *retryer
	reporter   Reporter
	throughput int
	status     atomic.Int32
}

// start 把循环调度到后台执行体上
// 返回时循环已被调度，不保证已经开始消费
func (p *process[S, M]) start(dispatcher Dispatcher) error {
	p.throughput = dispatcher.Throughput()
	return dispatcher.Schedule(p.run, p.onFault)
}

// run 消费循环：逐条取出信封并按状态机处理
// Running 态只会迁移到 Stopped，Stopped 是终态
func (p *process[S, M]) run() {
	var processed int
	for {
		env, ok := p.mailbox.Dequeue()
		if !ok {
			return
		}
		// 连续处理过多消息后让出 CPU，避免其它协程饥饿
		if processed >= p.throughput {
			processed = 0
			runtime.Gosched()
		}
		processed++

		switch env.kind {
		case envelopePayload:
			p.handlePayload(env.payload)
		case envelopeRestart:
			p.cell.Set(p.initial)
		case envelopeStop:
			p.stop()
			return
		}
	}
}

// handlePayload 通过重试执行器应用 handler
// 成功则整体提交新状态；重试耗尽则上报一次并保持原状态继续服务
func (p *process[S, M]) handlePayload(msg M) {
	state := p.cell.Get()
	next, err := runRetry(p.retry, func() (S, error) {
		return p.handler(state, msg)
	})
	if err != nil {
		p.reporter.Report(p.name, Event{
			Kind:     EventRetryExhausted,
			Err:      err,
			Attempts: p.retry.attempts,
		})
		return
	}
	p.cell.Set(next)
}

// stop 关闭信箱并丢弃排在 Stop 之后的滞留信封
// 状态单元冻结在最后一次提交的值上
func (p *process[S, M]) stop() {
	p.status.Store(statusStopped)
	p.mailbox.Close()
	if n := p.mailbox.Drain(); n > 0 {
		glog.Debug("discard envelopes queued behind stop",
			zap.String("actor", p.name), zap.Int("count", n))
	}
	p.reporter.Report(p.name, Event{Kind: EventStopped})
}

// onFault 循环基础设施故障的出口：上报 LoopFault 并永久终止
// Restart 信封只回滚状态快照，不会复活已故障的循环
func (p *process[S, M]) onFault(err interface{}) {
	p.status.Store(statusStopped)
	p.mailbox.Close()
	p.mailbox.Drain()
	p.reporter.Report(p.name, Event{
		Kind: EventLoopFault,
		Err:  errors.Errorf("loop fault: %v", err),
	})
}

// stopped 循环是否已终止
func (p *process[S, M]) stopped() bool {
	return p.status.Load() == statusStopped
}
