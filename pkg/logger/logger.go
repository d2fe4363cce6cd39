// Package logger 基于log/slog的结构化日志
//
// 设计说明：
// 1. 根据配置选择输出格式：console(文本) | json
// 2. 请求级Logger通过context传递（携带request_id、trace_id）
// 3. 业务代码通过FromContext获取，没有则退回默认Logger
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type ctxKey struct{}

// New 创建Logger
//
// 参数：
//   - level: debug | info | warn | error（无法识别时使用info）
//   - format: console | json
//   - output: stdout | stderr | 文件路径
func New(level, format, output string) (*slog.Logger, error) {
	w, err := openOutput(output)
	if err != nil {
		return nil, err
	}
	return NewWithWriter(level, format, w), nil
}

// NewWithWriter 使用指定Writer创建Logger（测试时写入bytes.Buffer）
func NewWithWriter(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel 解析日志级别
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openOutput(output string) (io.Writer, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
}

// WithContext 将Logger放入context
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext 从context获取Logger，没有则返回slog.Default()
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return slog.Default()
}
