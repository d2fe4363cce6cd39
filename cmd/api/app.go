package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/sqldb"
	"github.com/xiebiao/bookshelf/pkg/logger"
)

// App serve命令需要的全部组件
type App struct {
	Config *config.Config
	Log    *slog.Logger
	Engine *gin.Engine
	Seeder *sqldb.Seeder
}

func newApp(cfg *config.Config, log *slog.Logger, engine *gin.Engine, seeder *sqldb.Seeder) *App {
	return &App{
		Config: cfg,
		Log:    log,
		Engine: engine,
		Seeder: seeder,
	}
}

// SeedJob seed命令需要的组件
type SeedJob struct {
	Config *config.Config
	Log    *slog.Logger
	Seeder *sqldb.Seeder
}

func newSeedJob(cfg *config.Config, log *slog.Logger, seeder *sqldb.Seeder) *SeedJob {
	return &SeedJob{Config: cfg, Log: log, Seeder: seeder}
}

// provideLogger 按配置创建Logger,同时设为slog默认Logger
func provideLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(l)
	return l, nil
}
