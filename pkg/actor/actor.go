// Package actor 提供受监督的 actor 运行时
// 每个 actor 由一条后台监督循环驱动，串行地把 handler 应用到自己的状态上；
// handler 失败在有限次重试后被吞掉并上报，actor 继续服务
package actor

import "time"

// Handler 调用方提供的状态转移函数，可失败
// 核心不关心它的语义，任意时刻每个 actor 至多只有一次调用在执行
type Handler[S, M any] func(state S, msg M) (S, error)

// IHandle 系统注册表管理 actor 所需的最小视图
type IHandle interface {
	Name() string
	Stop() error
	Stopped() bool
}

// Handle actor 的外部句柄
// 只触达信箱和状态单元，不暴露循环内部
type Handle[S, M any] struct {
	name    string
	mailbox *mailbox[M]
	cell    *cell[S]
	process *process[S, M]
	timers  *timerManager
}

var _ IHandle = (*Handle[int, int])(nil)

// Spawn 创建并启动一个 actor
// 返回时监督循环已被调度，不保证已经开始处理消息
func Spawn[S, M any](name string, initial S, handler Handler[S, M], options ...Option) (*Handle[S, M], error) {
	if handler == nil {
		return nil, ErrHandlerIsNil
	}
	opts := loadOptions(options...)
	if opts.Dispatcher == nil {
		return nil, ErrDispatcherIsNil
	}

	mb := newMailbox[M]()
	c := newCell[S](initial)
	p := &process[S, M]{
		name:     name,
		mailbox:  mb,
		cell:     c,
		initial:  initial,
		handler:  handler,
		retry:    newRetryer(opts.RetryAttempts, opts.RetryBackoff),
		reporter: opts.Reporter,
	}
	h := &Handle[S, M]{
		name:    name,
		mailbox: mb,
		cell:    c,
		process: p,
		timers:  newTimerManager(),
	}
	if err := p.start(opts.Dispatcher); err != nil {
		mb.Close()
		return nil, err
	}
	return h, nil
}

// Send 投递一条业务消息
// 返回 nil 仅代表信封进入信箱，不代表处理结果；处理失败只通过 Reporter 可见
func (h *Handle[S, M]) Send(msg M) error {
	return h.mailbox.Enqueue(envelope[M]{kind: envelopePayload, payload: msg})
}

// Stop 投递停止信封
// Stop 不插队，之前投递的消息仍会先被应用到状态上
func (h *Handle[S, M]) Stop() error {
	h.timers.CancelAll()
	return h.mailbox.Enqueue(envelope[M]{kind: envelopeStop})
}

// Restart 投递重置信封，状态回滚到构造时传入的初始值
// 只回滚状态快照，对已因故障终止的循环无效
func (h *Handle[S, M]) Restart() error {
	return h.mailbox.Enqueue(envelope[M]{kind: envelopeRestart})
}

// State 读取当前状态快照，任意协程可调用
// actor 停止后继续返回冻结的最后状态
func (h *Handle[S, M]) State() S {
	return h.cell.Get()
}

// Name 返回 actor 名字，仅用于诊断
func (h *Handle[S, M]) Name() string {
	return h.name
}

// Stopped 监督循环是否已终止
func (h *Handle[S, M]) Stopped() bool {
	return h.process.stopped()
}

// SendAfter 延迟 d 后向自己投递 msg，返回定时器 ID
// actor 已停止时到期的投递会被信箱拒绝，属于无害竞态
func (h *Handle[S, M]) SendAfter(d time.Duration, msg M) int64 {
	return h.timers.After(d, func() {
		_ = h.Send(msg)
	})
}

// SendEvery 每隔 interval 向自己投递一次 msg，返回定时器 ID
func (h *Handle[S, M]) SendEvery(interval time.Duration, msg M) int64 {
	return h.timers.Every(interval, func() {
		_ = h.Send(msg)
	})
}

// CancelTimer 取消定时器
func (h *Handle[S, M]) CancelTimer(id int64) bool {
	return h.timers.Cancel(id)
}

// CancelAllTimers 取消所有定时器
func (h *Handle[S, M]) CancelAllTimers() {
	h.timers.CancelAll()
}
