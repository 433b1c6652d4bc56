package actor

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/ranjitd-sys/order-actor-system/pkg/lib/timex/asynctime"
)

// DefaultRetryAttempts 单个信封的默认重试次数
const DefaultRetryAttempts = 3

// retryer 固定次数重试执行器
// 默认重试之间没有退避间隔，可通过 WithRetryBackoff 配置
type retryer struct {
	attempts int
	backoff  time.Duration
}

func newRetryer(attempts int, backoff time.Duration) *retryer {
	if attempts <= 0 {
		attempts = DefaultRetryAttempts
	}
	return &retryer{
		attempts: attempts,
		backoff:  backoff,
	}
}

// runRetry 执行 op，最多 attempts 次，第一次成功即返回
// 全部失败时返回带重试次数的最后一次错误
func runRetry[S any](r *retryer, op func() (S, error)) (S, error) {
	var (
		zero S
		last error
	)
	for i := 1; i <= r.attempts; i++ {
		s, err := tryOnce(op)
		if err == nil {
			return s, nil
		}
		last = err
		if i < r.attempts && r.backoff > 0 {
			asynctime.Sleep(r.backoff)
		}
	}
	return zero, errors.Wrapf(last, "retry exhausted after %d attempts", r.attempts)
}

// tryOnce 执行单次调用，panic 转换为错误
// handler 抛出的 panic 按一次普通失败处理，不会杀死监督循环
func tryOnce[S any](op func() (S, error)) (s S, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return op()
}
