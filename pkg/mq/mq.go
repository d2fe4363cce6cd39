// Package mq 基于RabbitMQ（AMQP 0-9-1）的消息发布与消费
//
// 拓扑：
//
//	Publisher ──(routing key: book.created)──▶ Topic Exchange ──(binding: book.*)──▶ Queue ──▶ Consumer
//
// Topic Exchange的绑定键支持通配符：
//   - * 匹配一个单词（book.* 匹配 book.created、book.deleted）
//   - # 匹配零个或多个单词
package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ExchangeTopic 默认交换机类型
const ExchangeTopic = "topic"

// DialTimeout 建立TCP连接和AMQP握手的超时时间
// Publish持有锁期间可能重连,超时必须足够短,避免Broker不可达时请求互相排队
const DialTimeout = 3 * time.Second

// ErrClosed Publisher已关闭
var ErrClosed = errors.New("mq: publisher closed")

// dial 带超时的连接
func dial(url string, timeout time.Duration) (*amqp.Connection, error) {
	return amqp.DialConfig(url, amqp.Config{
		Dial:      amqp.DefaultDial(timeout),
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
	})
}

// Publisher 消息发布者
// 连接断开后，下一次Publish会自动重连一次
type Publisher struct {
	url          string
	exchange     string
	exchangeType string
	dialTimeout  time.Duration
	log          *slog.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	closed  bool
}

// NewPublisher 创建发布者并声明Exchange
func NewPublisher(url, exchange, exchangeType string, log *slog.Logger) (*Publisher, error) {
	p := &Publisher{
		url:          url,
		exchange:     exchange,
		exchangeType: exchangeType,
		dialTimeout:  DialTimeout,
		log:          log,
	}
	if err := p.connect(); err != nil {
		return nil, err
	}

	log.Info("mq publisher ready", slog.String("exchange", exchange), slog.String("type", exchangeType))
	return p, nil
}

// NewLazyPublisher 创建发布者但不立即连接，第一次Publish时再连接
// 启动时Broker不可用也不影响服务启动
func NewLazyPublisher(url, exchange, exchangeType string, log *slog.Logger) *Publisher {
	return &Publisher{
		url:          url,
		exchange:     exchange,
		exchangeType: exchangeType,
		dialTimeout:  DialTimeout,
		log:          log,
	}
}

// Exchange 交换机名称
func (p *Publisher) Exchange() string {
	return p.exchange
}

// connect 建立连接、Channel并声明Exchange（调用方持有锁或在构造阶段）
func (p *Publisher) connect() error {
	conn, err := dial(p.url, p.dialTimeout)
	if err != nil {
		return fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("创建Channel失败: %w", err)
	}

	if err := declareExchange(channel, p.exchange, p.exchangeType); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return err
	}

	p.conn = conn
	p.channel = channel
	return nil
}

// Publish 发布消息（JSON序列化，持久化投递）
func (p *Publisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	msg, err := encode(message, time.Now())
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	if p.channel == nil || p.channel.IsClosed() {
		p.release()
		if err := p.connect(); err != nil {
			return err
		}
		p.log.Info("mq publisher reconnected", slog.String("exchange", p.exchange))
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // Mandatory
		false, // Immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("发布消息失败: %w", err)
	}

	p.log.Debug("mq message published",
		slog.String("routing_key", routingKey),
		slog.Int("bytes", len(msg.Body)),
	)
	return nil
}

// Close 关闭连接，之后的Publish返回ErrClosed
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.release()
	return nil
}

func (p *Publisher) release() {
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// encode 消息 → AMQP Publishing
func encode(message interface{}, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(message)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("消息序列化失败: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
	}, nil
}

func declareExchange(ch *amqp.Channel, exchange, exchangeType string) error {
	err := ch.ExchangeDeclare(
		exchange,
		exchangeType,
		true,  // Durable
		false, // AutoDelete
		false, // Internal
		false, // NoWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("声明Exchange失败: %w", err)
	}
	return nil
}

// Delivery 交给Handler的消息
type Delivery struct {
	RoutingKey string
	Body       []byte
	Timestamp  time.Time
}

// Handler 消息处理函数，返回error时消息被Nack且不重新入队
type Handler func(ctx context.Context, d Delivery) error

// Consumer 消息消费者
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	log     *slog.Logger
}

// NewConsumer 创建消费者：声明Exchange、Queue并按routingKeys绑定
func NewConsumer(url, exchange, exchangeType, queue string, routingKeys []string, log *slog.Logger) (*Consumer, error) {
	conn, err := dial(url, DialTimeout)
	if err != nil {
		return nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("创建Channel失败: %w", err)
	}

	fail := func(err error) (*Consumer, error) {
		_ = channel.Close()
		_ = conn.Close()
		return nil, err
	}

	if err := declareExchange(channel, exchange, exchangeType); err != nil {
		return fail(err)
	}

	q, err := channel.QueueDeclare(
		queue,
		true,  // Durable
		false, // AutoDelete
		false, // Exclusive
		false, // NoWait
		nil,
	)
	if err != nil {
		return fail(fmt.Errorf("声明Queue失败: %w", err))
	}

	for _, key := range routingKeys {
		if err := channel.QueueBind(q.Name, key, exchange, false, nil); err != nil {
			return fail(fmt.Errorf("绑定Queue失败: %w", err))
		}
	}

	log.Info("mq consumer ready", slog.String("queue", q.Name), slog.Any("routing_keys", routingKeys))

	return &Consumer{
		conn:    conn,
		channel: channel,
		queue:   q.Name,
		log:     log,
	}, nil
}

// Queue 实际队列名
func (c *Consumer) Queue() string {
	return c.queue
}

// Consume 阻塞消费，直到ctx取消（返回nil）或Channel关闭（返回error）
func (c *Consumer) Consume(ctx context.Context, handler Handler) error {
	// 每次只取1条，处理完再取下一条
	if err := c.channel.Qos(1, 0, false); err != nil {
		return fmt.Errorf("设置Qos失败: %w", err)
	}

	msgs, err := c.channel.ConsumeWithContext(ctx,
		c.queue,
		"",    // Consumer标签（自动生成）
		false, // AutoAck
		false, // Exclusive
		false, // NoLocal
		false, // NoWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("开始消费失败: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			c.log.Info("mq consumer stopped", slog.String("queue", c.queue))
			return nil

		case msg, ok := <-msgs:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("消息Channel已关闭")
			}

			d := Delivery{RoutingKey: msg.RoutingKey, Body: msg.Body, Timestamp: msg.Timestamp}
			if err := handler(ctx, d); err != nil {
				c.log.Warn("mq message rejected",
					slog.String("routing_key", msg.RoutingKey),
					slog.Any("error", err),
				)
				_ = msg.Nack(false, false)
				continue
			}
			_ = msg.Ack(false)
		}
	}
}

// Close 关闭连接
func (c *Consumer) Close() error {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
	return nil
}
