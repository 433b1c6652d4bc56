/**
 * @Author: dingQingHui
 * @Description:
 * @File: workers
 * @Version: 1.0.0
 * @Date: 2025/1/2 10:16
 */

package workers

import (
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
)

var (
	goCount    atomic.Int64
	panicCount atomic.Uint64
	pool       *ants.Pool
)

func init() {
	pool, _ = ants.NewPool(5000)
}

// Submit 提交任务到协程池执行，panic 交由 recoverFun 处理
func Submit(fn func(), recoverFun func(err interface{})) error {
	return pool.Submit(func() {
		goCount.Add(1)
		Try(fn, recoverFun)
		goCount.Add(-1)
	})
}

// Try 执行 fn，捕获 panic 避免扩散
func Try(fn func(), reFun func(err interface{})) {
	defer func() {
		if err := recover(); err != nil {
			panicCount.Add(1)
			if reFun != nil {
				reFun(err)
			}
		}
	}()
	fn()
}

// Running 当前池内正在执行的任务数
func Running() int64 {
	return goCount.Load()
}

// Panics 累计捕获的 panic 数
func Panics() uint64 {
	return panicCount.Load()
}
