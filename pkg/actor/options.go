package actor

import "time"

const defaultThroughput = 1024

type Option func(*Options)

type Options struct {
	// RetryAttempts 单个信封的 handler 调用上限
	RetryAttempts int
	// RetryBackoff 重试之间的等待间隔，零值表示不等待
	RetryBackoff time.Duration
	// Dispatcher 监督循环的调度器
	Dispatcher Dispatcher
	// Reporter 诊断接收器
	Reporter Reporter
}

func loadOptions(options ...Option) *Options {
	opts := &Options{
		RetryAttempts: DefaultRetryAttempts,
		Dispatcher:    NewGoroutineDispatcher(defaultThroughput),
		Reporter:      glogReporter{},
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		option(opts)
	}
	return opts
}

func WithRetryAttempts(n int) Option {
	return func(op *Options) {
		op.RetryAttempts = n
	}
}

func WithRetryBackoff(d time.Duration) Option {
	return func(op *Options) {
		op.RetryBackoff = d
	}
}

func WithDispatcher(d Dispatcher) Option {
	return func(op *Options) {
		if d != nil {
			op.Dispatcher = d
		}
	}
}

func WithReporter(r Reporter) Option {
	return func(op *Options) {
		if r != nil {
			op.Reporter = r
		}
	}
}
