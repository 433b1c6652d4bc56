// Package asynctime 基于时间轮的异步定时器，精度 1ms
package asynctime

import (
	"time"

	"github.com/RussellLuo/timingwheel"
)

var tw = timingwheel.NewTimingWheel(time.Millisecond, 3600)

func init() {
	tw.Start()
}

// AfterFunc 注册一次性定时器，回调在时间轮协程内执行
// 回调内不要做耗时操作，需要的话转投到其它协程
func AfterFunc(d time.Duration, f func()) *timingwheel.Timer {
	return tw.AfterFunc(d, f)
}

// Sleep 基于时间轮的阻塞等待
func Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	ch := make(chan struct{})
	tw.AfterFunc(d, func() {
		close(ch)
	})
	<-ch
}
