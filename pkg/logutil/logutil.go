package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// Level 日志级别，值越小打印得越多
type Level int

const (
	DEBUG Level = iota // 0
	INFO               // 1
	WARN               // 2
	ERROR              // 3
)

// 定义日志级别映射字符串
var LOG_LEVELS = map[string]Level{
	"DEBUG": DEBUG,
	"INFO":  INFO,
	"WARN":  WARN,
	"ERROR": ERROR,
}

// 为了让 VarP 接收自定义类型，实现 flag.Value 接口(String Set Type)
func (l *Level) String() string {
	for name, lv := range LOG_LEVELS {
		if lv == *l {
			return name
		}
	}
	return fmt.Sprintf("Level(%d)", int(*l))
}

func (l *Level) Set(val string) error {
	lv, err := ParseLevel(val)
	if err != nil {
		return err
	}
	*l = lv
	return nil
}

func (l *Level) Type() string {
	return "level"
}

// ParseLevel 不区分大小写解析日志级别
func ParseLevel(val string) (Level, error) {
	lv, ok := LOG_LEVELS[strings.ToUpper(strings.TrimSpace(val))]
	if !ok {
		return INFO, fmt.Errorf("无效的日志级别: %q (可选 DEBUG/INFO/WARN/ERROR)", val)
	}
	return lv, nil
}

var (
	logger       *log.Logger
	logFile      io.WriteCloser
	mu           sync.Mutex
	currentLevel = INFO // 默认日志级别
)

// InitLogger 初始化日志，output 可以是 stderr、stdout 或者文件路径
// 只有第一次调用生效，重复调用直接返回
func InitLogger(output string, level Level) error {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		return nil
	}

	var w io.Writer
	switch output {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	default:
		// 以追加模式打开日志文件，不会覆盖已有内容
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("无法创建日志文件 %s: %w", output, err)
		}
		logFile = f
		w = f
	}
	logger = log.New(w, "", log.LstdFlags)
	currentLevel = level
	return nil
}

// SetOutput 直接替换输出目标，主要给测试用
func SetOutput(w io.Writer, level Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "", 0)
	currentLevel = level
}

// logMessage 记录日志，**仅输出符合当前级别的日志**
func logMessage(level Level, msg string, args ...any) {
	mu.Lock()
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags) // 默认输出到标准错误
	}
	l, cur := logger, currentLevel
	mu.Unlock()

	if level < cur {
		return
	}
	_, file, line, _ := runtime.Caller(2) // 获取真正调用的文件+行号
	l.Printf("[%s:%d] %s", filepath.Base(file), line, fmt.Sprintf(msg, args...))
}

// Info 记录 INFO 日志
func Info(msg string, args ...any) {
	logMessage(INFO, "[INFO] "+msg, args...)
}

// Warn 记录 WARN 日志
func Warn(msg string, args ...any) {
	logMessage(WARN, "[WARN] "+msg, args...)
}

// Error 记录 ERROR 日志
func Error(msg string, args ...any) {
	logMessage(ERROR, "[ERR] "+msg, args...)
}

// Debug 记录 DEBUG 日志
func Debug(msg string, args ...any) {
	logMessage(DEBUG, "[DBG] "+msg, args...)
}

// CloseLogger 关闭日志文件（如果有的话），之后可以重新 InitLogger
func CloseLogger() error {
	mu.Lock()
	defer mu.Unlock()
	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
