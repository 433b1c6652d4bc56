package actor

import "sync"

// cell 持有 actor 当前状态的单元
// 只有监督循环写入，任意协程可读，读到的永远是一个完整提交过的值
type cell[S any] struct {
	mu  sync.RWMutex
	val S
}

func newCell[S any](initial S) *cell[S] {
	return &cell[S]{val: initial}
}

// Get 读取当前状态快照
func (c *cell[S]) Get() S {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.val
}

// Set 整体替换状态，不做原地修改
func (c *cell[S]) Set(v S) {
	c.mu.Lock()
	c.val = v
	c.mu.Unlock()
}
