package actor

import (
	"sync"
	"time"

	"github.com/RussellLuo/timingwheel"

	"github.com/ranjitd-sys/order-actor-system/pkg/lib/timex/asynctime"
)

// timerManager 管理一个 actor 的定时投递
// 回调在时间轮协程触发，fire 只做入队动作，真正的处理仍在监督循环里串行进行
type timerManager struct {
	mu      sync.Mutex
	timers  map[int64]*timingwheel.Timer // 定时器 ID 到 Timer 的映射
	tickers map[int64]bool               // 标记周期性定时器，用于停止续期
	nextID  int64
}

func newTimerManager() *timerManager {
	return &timerManager{
		timers:  make(map[int64]*timingwheel.Timer),
		tickers: make(map[int64]bool),
	}
}

// After 注册一次性定时器，时间到后执行 fire
func (tm *timerManager) After(d time.Duration, fire func()) int64 {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.nextID++
	id := tm.nextID
	tm.timers[id] = asynctime.AfterFunc(d, func() {
		tm.remove(id)
		fire()
	})
	return id
}

// Every 注册周期性定时器，每隔 interval 执行一次 fire
// 通过逐次续期实现，取消后不再续期
func (tm *timerManager) Every(interval time.Duration, fire func()) int64 {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.nextID++
	id := tm.nextID
	tm.tickers[id] = true
	tm.scheduleNextLocked(id, interval, fire)
	return id
}

// scheduleNextLocked 注册下一个周期，调用方必须持有 tm.mu
func (tm *timerManager) scheduleNextLocked(id int64, interval time.Duration, fire func()) {
	if !tm.tickers[id] {
		return
	}
	tm.timers[id] = asynctime.AfterFunc(interval, func() {
		tm.mu.Lock()
		alive := tm.tickers[id]
		if alive {
			tm.scheduleNextLocked(id, interval, fire)
		}
		tm.mu.Unlock()
		if alive {
			fire()
		}
	})
}

// Cancel 取消定时器
func (tm *timerManager) Cancel(id int64) bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	delete(tm.tickers, id)
	if timer, ok := tm.timers[id]; ok {
		timer.Stop()
		delete(tm.timers, id)
		return true
	}
	return false
}

// CancelAll 取消所有定时器
func (tm *timerManager) CancelAll() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.tickers = make(map[int64]bool)
	for id, timer := range tm.timers {
		timer.Stop()
		delete(tm.timers, id)
	}
}

func (tm *timerManager) remove(id int64) {
	tm.mu.Lock()
	delete(tm.timers, id)
	tm.mu.Unlock()
}
