package actor

// envelopeKind 信封变体，封闭集合，不会再扩展
type envelopeKind int32

const (
	envelopePayload envelopeKind = iota // 业务消息
	envelopeStop                        // 停止循环
	envelopeRestart                     // 重置状态快照
)

// envelope 投递到信箱的信封
// Stop 和 Restart 与业务消息走同一条 FIFO 队列，保证相对顺序
type envelope[M any] struct {
	kind    envelopeKind
	payload M
}
