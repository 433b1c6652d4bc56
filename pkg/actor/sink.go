package actor

import (
	"go.uber.org/zap"

	"github.com/ranjitd-sys/order-actor-system/pkg/glog"
)

// EventKind 上报给诊断接收器的事件类型
type EventKind int32

const (
	// EventRetryExhausted 某个信封的重试全部失败，状态未变更，循环继续服务
	EventRetryExhausted EventKind = iota + 1
	// EventLoopFault 循环基础设施故障，actor 永久终止
	EventLoopFault
	// EventStopped 处理完 Stop 信封后正常停止
	EventStopped
)

func (k EventKind) String() string {
	switch k {
	case EventRetryExhausted:
		return "retry_exhausted"
	case EventLoopFault:
		return "loop_fault"
	case EventStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Event 诊断事件
// 这是 handler 失败对外可见的唯一出口，Send 永远不会同步返回处理结果
type Event struct {
	Kind EventKind
	Err  error
	// Attempts 重试次数，仅 EventRetryExhausted 填写
	Attempts int
}

// Reporter 诊断接收器
type Reporter interface {
	Report(actorName string, ev Event)
}

// glogReporter 默认接收器，写入全局日志
type glogReporter struct{}

var _ Reporter = glogReporter{}

func (glogReporter) Report(actorName string, ev Event) {
	fields := []zap.Field{
		zap.String("actor", actorName),
		zap.String("event", ev.Kind.String()),
	}
	if ev.Attempts > 0 {
		fields = append(fields, zap.Int("attempts", ev.Attempts))
	}
	if ev.Err != nil {
		fields = append(fields, zap.Error(ev.Err))
	}
	switch ev.Kind {
	case EventLoopFault:
		glog.Error("actor event", fields...)
	case EventRetryExhausted:
		glog.Warn("actor event", fields...)
	default:
		glog.Info("actor event", fields...)
	}
}
