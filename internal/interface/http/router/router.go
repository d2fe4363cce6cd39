// Package router 组装gin引擎:中间件链与全部路由
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookshelf/docs"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// NewRouter 创建并配置gin引擎
//
// 中间件顺序: Recovery → Tracing → RequestLogger → Metrics → RateLimit
// Tracing在日志之前,请求日志才能带上trace_id
func NewRouter(
	cfg *config.Config,
	log *slog.Logger,
	bookHandler *handler.BookHandler,
	statsHandler *handler.StatsHandler,
	staticHandler *handler.StaticHandler,
) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// 只信任配置中的代理,否则客户端可以伪造X-Forwarded-For绕过按IP限流
	if err := r.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		log.Warn("invalid trusted proxies, trusting none",
			slog.Any("proxies", cfg.Server.TrustedProxies),
			slog.Any("error", err),
		)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(
		middleware.Recovery(),
		middleware.Tracing(),
		middleware.RequestLogger(log),
	)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}
	if cfg.RateLimit.Enabled {
		r.Use(middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Middleware())
	}

	// 健康检查
	r.GET("/ping", handler.Ping)

	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Swagger UI: /swagger/index.html
	if cfg.Server.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	{
		api.GET("/meta", handler.Meta)
		api.GET("/stats", statsHandler.Stats)

		books := api.Group("/books")
		{
			books.GET("", bookHandler.ListBooks)
			books.POST("", bookHandler.CreateBook)
			books.PUT("/:id", bookHandler.UpdateBook)
			books.DELETE("/:id", bookHandler.DeleteBook)
		}
	}

	// 前端
	r.GET("/", staticHandler.Index)
	r.NoRoute(staticHandler.NoRoute)

	return r
}
