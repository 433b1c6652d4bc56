package actor

import (
	"errors"
	"fmt"
)

// 句柄相关错误
var (
	// ErrActorStopped actor 已停止，信箱拒绝投递
	ErrActorStopped = errors.New("actor is stopped")
	// ErrHandlerIsNil handler 为空
	ErrHandlerIsNil = errors.New("handler is nil")
	// ErrDispatcherIsNil 调度器为空
	ErrDispatcherIsNil = errors.New("dispatcher is nil")
)

// 系统相关错误
var (
	// ErrSystemShuttingDown 系统正在关闭
	ErrSystemShuttingDown = errors.New("system is shutting down")
)

// 等待器相关错误
var (
	// ErrWaiterTimeout 等待超时错误
	ErrWaiterTimeout = errors.New("waiter timeout")
)

// 系统相关错误构造函数
func ErrNameCannotBeEmpty() error {
	return fmt.Errorf("name cannot be empty")
}

func ErrNameAlreadyRegistered(name string) error {
	return fmt.Errorf("actor: name already registered: %s", name)
}

// 配置相关错误构造函数
func ErrReadConfigFileFailed(err error) error {
	return fmt.Errorf("read config file failed: %w", err)
}

func ErrUnmarshalConfigFailed(err error) error {
	return fmt.Errorf("unmarshal config failed: %w", err)
}
