package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log 全局日志实例，InitLogger 之前为 Nop
var Log = zap.NewNop()

// Options 日志初始化参数
type Options struct {
	Env   string // dev / test / prod
	Level string // debug / info / warn / error
}

// InitLogger 初始化全局 zap 日志
func InitLogger(opts Options) (*zap.Logger, error) {
	var cfg zap.Config
	if opts.Env == "prod" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(opts.Level))

	l, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return nil, err
	}
	host, _ := os.Hostname()
	l = l.With(zap.String("host", host))

	Log = l
	zap.ReplaceGlobals(l)
	return l, nil
}

// ParseLevel 解析日志级别，无法识别时返回 info
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Sync 刷新缓冲区
func Sync() {
	_ = Log.Sync()
}
