// Package messaging 把图书变更事件发布到RabbitMQ
//
// 发布是尽力而为的：
//  1. 外层有熔断器，Broker故障时快速失败，不拖慢HTTP请求
//  2. 调用方只记录错误，不影响业务结果
package messaging

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/pkg/circuitbreaker"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/mq"
)

// RoutingKeyAll 订阅全部图书事件的绑定键
const RoutingKeyAll = "book.*"

// MessagePublisher 底层消息发布接口（*mq.Publisher实现）
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
	Exchange() string
}

// BreakerPublisher 带熔断的事件发布者
type BreakerPublisher struct {
	pub     MessagePublisher
	breaker *circuitbreaker.CircuitBreaker
	log     *slog.Logger
}

// NewBreakerPublisher 创建带熔断的事件发布者
// failures: 连续失败多少次后熔断; timeout: 熔断持续时间
func NewBreakerPublisher(pub MessagePublisher, failures uint32, timeout time.Duration, log *slog.Logger) *BreakerPublisher {
	name := "mq:" + pub.Exchange()
	breaker := circuitbreaker.NewCircuitBreaker(name, circuitbreaker.Config{
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: circuitbreaker.ConsecutiveFailures(failures),
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			log.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.RecordBreakerState(name, breakerGauge(to))
		},
	})
	metrics.RecordBreakerState(name, metrics.BreakerClosed)

	return &BreakerPublisher{pub: pub, breaker: breaker, log: log}
}

// Publish 发布事件，routing key即事件类型
func (p *BreakerPublisher) Publish(ctx context.Context, event book.Event) error {
	routingKey := string(event.Type)
	name := p.breaker.Name()

	err := p.breaker.Execute(func() error {
		return p.pub.Publish(ctx, routingKey, NewEventMessage(event))
	})

	switch {
	case err == nil:
		metrics.RecordBreakerRequest(name, "success")
		metrics.RecordPublish(p.pub.Exchange(), routingKey, "success")
	case errors.Is(err, circuitbreaker.ErrOpenState):
		metrics.RecordBreakerRequest(name, "rejected")
		metrics.RecordPublish(p.pub.Exchange(), routingKey, "rejected")
	default:
		metrics.RecordBreakerRequest(name, "failure")
		metrics.RecordPublish(p.pub.Exchange(), routingKey, "failure")
	}
	return err
}

// State 熔断器当前状态
func (p *BreakerPublisher) State() circuitbreaker.State {
	return p.breaker.State()
}

func breakerGauge(s circuitbreaker.State) int {
	switch s {
	case circuitbreaker.StateOpen:
		return metrics.BreakerOpen
	case circuitbreaker.StateHalfOpen:
		return metrics.BreakerHalfOpen
	default:
		return metrics.BreakerClosed
	}
}

// NewEventPublisher 按配置创建事件发布者
// mq.enabled=false时返回NopPublisher
// 启动时连不上Broker只记录警告，第一次发布时再重连
func NewEventPublisher(cfg *config.Config, log *slog.Logger) (book.EventPublisher, func()) {
	if !cfg.MQ.Enabled {
		return book.NopPublisher{}, func() {}
	}

	pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, mq.ExchangeTopic, log)
	if err != nil {
		log.Warn("mq unavailable at startup, will retry on publish",
			slog.String("exchange", cfg.MQ.Exchange),
			slog.Any("error", err),
		)
		pub = mq.NewLazyPublisher(cfg.MQ.URL, cfg.MQ.Exchange, mq.ExchangeTopic, log)
	}

	cleanup := func() {
		_ = pub.Close()
	}
	return NewBreakerPublisher(pub, cfg.MQ.BreakerFailures, cfg.MQ.BreakerTimeout, log), cleanup
}
