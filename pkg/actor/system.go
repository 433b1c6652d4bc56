package actor

import (
	"sync/atomic"
	"time"

	"github.com/duke-git/lancet/v2/maputil"
	"golang.org/x/exp/slices"

	"github.com/ranjitd-sys/order-actor-system/pkg/lib/timex/asynctime"
)

// System 管理一组命名 actor 的注册表
// 名字在系统内唯一；关闭中的系统拒绝新的创建
type System struct {
	handles      *maputil.ConcurrentMap[string, IHandle]
	shuttingDown atomic.Bool
}

// NewSystem 创建新的 actor 系统
func NewSystem() *System {
	return &System{
		handles: maputil.NewConcurrentMap[string, IHandle](10),
	}
}

// checkShuttingDown 检查系统是否正在关闭
func (s *System) checkShuttingDown() error {
	if s.shuttingDown.Load() {
		return ErrSystemShuttingDown
	}
	return nil
}

// SpawnIn 在系统内创建命名 actor
// 方法不能带类型参数，所以这里提供包级函数
func SpawnIn[S, M any](sys *System, name string, initial S, handler Handler[S, M], options ...Option) (*Handle[S, M], error) {
	if err := sys.checkShuttingDown(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameCannotBeEmpty()
	}
	h, err := Spawn(name, initial, handler, options...)
	if err != nil {
		return nil, err
	}
	if _, loaded := sys.handles.GetOrSet(name, h); loaded {
		// 名字已被占用，回收刚启动的循环
		_ = h.Stop()
		return nil, ErrNameAlreadyRegistered(name)
	}
	return h, nil
}

// Get 根据名字获取句柄
func (s *System) Get(name string) IHandle {
	h, _ := s.handles.Get(name)
	return h
}

// Has 检查名字是否已注册
func (s *System) Has(name string) bool {
	_, exists := s.handles.Get(name)
	return exists
}

// Remove 从注册表移除，不停止 actor
func (s *System) Remove(name string) {
	s.handles.Delete(name)
}

// Names 返回所有已注册 actor 的名字，升序排列
func (s *System) Names() []string {
	var names []string
	s.handles.Range(func(name string, _ IHandle) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}

// Shutdown 优雅关闭系统
// 向所有 actor 投递 Stop 并等待循环退出，超时返回 ErrWaiterTimeout
// Stop 不插队，所以关闭前已入队的消息仍会被处理完
func (s *System) Shutdown(timeout time.Duration) error {
	if !s.shuttingDown.CompareAndSwap(false, true) {
		return nil // 已经在关闭中
	}

	var all []IHandle
	s.handles.Range(func(_ string, h IHandle) bool {
		all = append(all, h)
		return true
	})
	for _, h := range all {
		_ = h.Stop()
	}

	waiter := newChanWaiter[struct{}](timeout)
	go func() {
		for {
			done := true
			for _, h := range all {
				if !h.Stopped() {
					done = false
					break
				}
			}
			if done {
				waiter.Done(struct{}{})
				return
			}
			asynctime.Sleep(time.Millisecond)
		}
	}()
	_, err := waiter.Wait()
	return err
}
