//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/messaging"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/sqldb"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/router"
)

// configSet 配置与日志
var configSet = wire.NewSet(
	config.Load,
	provideLogger,
)

// storeSet 数据库连接、仓储、事务管理器、种子数据
var storeSet = wire.NewSet(
	sqldb.NewDB,
	sqldb.NewBookRepository,
	sqldb.NewTxManager,
	sqldb.NewSeeder,
)

// domainSet 领域服务与事件发布
var domainSet = wire.NewSet(
	book.NewService,
	messaging.NewEventPublisher,
)

// applicationSet 用例
var applicationSet = wire.NewSet(
	appbook.NewListBooksUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewBookStatsUseCase,
)

// handlerSet HTTP处理器与路由
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewStatsHandler,
	handler.NewStaticHandler,
	router.NewRouter,
)

// InitializeApp 组装serve命令需要的全部组件
// cleanup依次关闭消息连接和数据库连接池
func InitializeApp(configPath string) (*App, func(), error) {
	wire.Build(
		configSet,
		storeSet,
		domainSet,
		applicationSet,
		handlerSet,
		newApp,
	)
	return nil, nil, nil
}

// InitializeSeedJob 只组装seed命令需要的组件(不连接消息队列)
func InitializeSeedJob(configPath string) (*SeedJob, func(), error) {
	wire.Build(
		configSet,
		storeSet,
		newSeedJob,
	)
	return nil, nil, nil
}
