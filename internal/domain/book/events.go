package book

import (
	"context"
	"time"
)

// EventType 图书变更事件类型,同时作为消息的routing key
type EventType string

const (
	EventCreated EventType = "book.created"
	EventUpdated EventType = "book.updated"
	EventDeleted EventType = "book.deleted"
)

// Event 图书变更事件
// Book为变更后的快照,删除事件中为删除前的记录
type Event struct {
	Type       EventType
	BookID     uint
	Book       *Book
	OccurredAt time.Time
}

// NewEvent 创建事件
func NewEvent(t EventType, b *Book) Event {
	return Event{
		Type:       t,
		BookID:     b.ID,
		Book:       b,
		OccurredAt: time.Now().UTC(),
	}
}

// EventPublisher 事件发布接口
// 发布是尽力而为的:调用方只记录错误,不影响业务结果
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher 不发送任何消息
type NopPublisher struct{}

// Publish 丢弃事件
func (NopPublisher) Publish(context.Context, Event) error { return nil }
