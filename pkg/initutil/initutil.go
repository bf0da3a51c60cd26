package initutil

import (
	"fmt"
	"os"
	"sync"

	"algo_tool/pkg/logutil"
)

const (
	EnvLogFile  = "UFTOOL_LOG_FILE"
	EnvLogLevel = "UFTOOL_LOG_LEVEL"
)

// Config 全局配置，来自命令行 flag，没有显式指定的项可以被环境变量覆盖
type Config struct {
	LogFile  string
	LogLevel logutil.Level
}

func NewConfig() Config {
	return Config{LogFile: "stderr", LogLevel: logutil.WARN}
}

var (
	globalConfig = NewConfig()
	mu           sync.Mutex
)

// ApplyEnv 用环境变量覆盖配置，changed 返回 true 的 flag 名不会被覆盖
func (c *Config) ApplyEnv(changed func(flagName string) bool) error {
	if v, ok := os.LookupEnv(EnvLogFile); ok && v != "" && !changed("log-file") {
		c.LogFile = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" && !changed("log-level") {
		lv, err := logutil.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("环境变量 %s: %w", EnvLogLevel, err)
		}
		c.LogLevel = lv
	}
	return nil
}

// InitSystem 保存配置并初始化日志（日志只初始化一次）
func InitSystem(cfg Config) error {
	mu.Lock()
	globalConfig = cfg
	mu.Unlock()

	if err := logutil.InitLogger(cfg.LogFile, cfg.LogLevel); err != nil {
		return err
	}
	logutil.Debug("globalConfig: %+v", cfg)
	return nil
}

// GetConfig 获取全局配置
func GetConfig() Config {
	mu.Lock()
	defer mu.Unlock()
	return globalConfig
}
