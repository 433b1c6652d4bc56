package actor

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ranjitd-sys/order-actor-system/pkg/glog"
)

// Config actor 运行时配置
type Config struct {
	// RetryAttempts 单个信封的 handler 调用上限
	RetryAttempts int `json:"retryAttempts" yaml:"retryAttempts"`
	// RetryBackoffMs 重试之间的等待间隔（毫秒），0 表示不等待
	RetryBackoffMs int `json:"retryBackoffMs" yaml:"retryBackoffMs"`
	// Throughput 监督循环连续处理多少条消息后让出 CPU
	Throughput int `json:"throughput" yaml:"throughput"`
	// Glog 日志配置
	Glog glog.Config `json:"glog" yaml:"glog"`
}

// DefaultConfig 生成默认配置
func DefaultConfig() *Config {
	return &Config{
		RetryAttempts:  DefaultRetryAttempts,
		RetryBackoffMs: 0,
		Throughput:     defaultThroughput,
		Glog:           *glog.DefaultConfig(),
	}
}

// LoadConfig 从 YAML 文件加载配置，缺省字段落在默认值上
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrReadConfigFileFailed(err)
	}
	config := DefaultConfig()
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, ErrUnmarshalConfigFailed(err)
	}
	return config, nil
}

// Options 将配置降解为 Spawn 选项
func (c *Config) Options() []Option {
	return []Option{
		WithRetryAttempts(c.RetryAttempts),
		WithRetryBackoff(time.Duration(c.RetryBackoffMs) * time.Millisecond),
		WithDispatcher(NewGoroutineDispatcher(c.Throughput)),
	}
}
