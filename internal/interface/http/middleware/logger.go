package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// HeaderRequestID 请求ID响应头
const HeaderRequestID = "X-Request-ID"

// slowRequestThreshold 超过该耗时记录慢请求警告
const slowRequestThreshold = 3 * time.Second

// RequestLogger 请求日志中间件
//
// 1. 为每个请求生成请求ID(沿用客户端传入的X-Request-ID)
// 2. 把带request_id/trace_id/span_id的Logger放进request context,下游用logger.FromContext取
// 3. 请求结束后记录方法、路径、状态码、耗时、客户端IP
func RequestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header(HeaderRequestID, requestID)

		ctx := c.Request.Context()
		reqLog := base.With(slog.String("request_id", requestID))
		if traceID := tracing.ExtractTraceID(ctx); traceID != "" {
			reqLog = reqLog.With(
				slog.String("trace_id", traceID),
				slog.String("span_id", tracing.ExtractSpanID(ctx)),
			)
		}
		c.Request = c.Request.WithContext(logger.WithContext(ctx, reqLog))

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			reqLog.Error("request", attrs...)
		case status >= 400:
			reqLog.Warn("request", attrs...)
		default:
			reqLog.Info("request", attrs...)
		}

		if latency > slowRequestThreshold {
			reqLog.Warn("slow request",
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.Duration("latency", latency),
			)
		}
	}
}
