package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/response"
)

const (
	// limiterIdleTTL 超过该时间未出现的IP会被清理
	limiterIdleTTL = 3 * time.Minute
	// limiterSweepEvery 清理间隔
	limiterSweepEvery = time.Minute
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter 按客户端IP的令牌桶限流
type RateLimiter struct {
	rps   rate.Limit
	burst int

	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter 创建限流器
// rps: 每个IP每秒补充的令牌数; burst: 桶容量
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		clients: make(map[string]*client),
		now:     time.Now,
	}
}

// Allow 消耗ip的一个令牌,桶空时返回false
func (l *RateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterSweepEvery {
		for k, c := range l.clients {
			if now.Sub(c.lastSeen) > limiterIdleTTL {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	c, ok := l.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// Middleware gin中间件,超限返回429 {"error":"Rate limit exceeded."}
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	metrics.InitMetrics()

	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			metrics.IncCounter(metrics.HTTPRequestsRateLimited)
			response.AbortWithError(c, apperrors.ErrRateLimited)
			return
		}
		c.Next()
	}
}
