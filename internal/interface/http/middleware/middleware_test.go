package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(logger.NewWithWriter("info", "json", &buf)))
	r.GET("/books", func(c *gin.Context) {
		logger.FromContext(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	w := serve(r, http.MethodGet, "/books", nil)
	id := w.Header().Get(HeaderRequestID)
	assert.Len(t, id, 36)
	assert.Contains(t, buf.String(), `"msg":"inside handler"`)
	assert.Contains(t, buf.String(), `"request_id":"`+id+`"`)
	assert.Contains(t, buf.String(), `"status":204`)

	t.Run("沿用客户端的请求ID", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/books", http.Header{HeaderRequestID: {"abc-123"}})
		assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	})
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := serve(r, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error."}`, w.Body.String())
}

func TestRateLimiter_Allow(t *testing.T) {
	l := NewRateLimiter(1, 2)
	now := time.Unix(1_700_000_000, 0)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("1.1.1.1"))
	assert.False(t, l.Allow("1.1.1.1"))
	// 其他IP有独立的桶
	assert.True(t, l.Allow("2.2.2.2"))

	now = now.Add(time.Second)
	assert.True(t, l.Allow("1.1.1.1"))

	t.Run("长时间未出现的IP被清理", func(t *testing.T) {
		now = now.Add(10 * time.Minute)
		l.Allow("3.3.3.3")
		l.mu.Lock()
		defer l.mu.Unlock()
		assert.Len(t, l.clients, 1)
	})
}

func TestTracing(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := tracing.NewProvider("test", sdktrace.WithSyncer(exporter))
	tracing.Install(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	var traceID string
	r := gin.New()
	r.Use(Tracing())
	r.GET("/api/books/:id", func(c *gin.Context) {
		traceID = tracing.ExtractTraceID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	parent := "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"
	serve(r, http.MethodGet, "/api/books/7", http.Header{"Traceparent": {parent}})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/books/:id", spans[0].Name)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", traceID)
	assert.Equal(t, "00f067aa0ba902b7", spans[0].Parent.SpanID().String())
}

func TestRequestLogger_TraceFields(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := tracing.NewProvider("test", sdktrace.WithSyncer(exporter))
	tracing.Install(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	var buf bytes.Buffer
	r := gin.New()
	r.Use(Tracing(), RequestLogger(logger.NewWithWriter("info", "json", &buf)))
	r.GET("/api/meta", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodGet, "/api/meta", nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Contains(t, buf.String(), `"trace_id":"`+spans[0].SpanContext.TraceID().String()+`"`)
	assert.Contains(t, buf.String(), `"span_id":"`+spans[0].SpanContext.SpanID().String()+`"`)
}
