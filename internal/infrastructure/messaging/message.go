package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/mq"
)

// EventMessage 事件的线上格式
type EventMessage struct {
	Type       string        `json:"type"`
	BookID     uint          `json:"bookId"`
	Book       *BookSnapshot `json:"book,omitempty"`
	OccurredAt time.Time     `json:"occurredAt"`
}

// BookSnapshot 事件中携带的图书快照
type BookSnapshot struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Year      int       `json:"year"`
	Category  string    `json:"category"`
	Rating    float64   `json:"rating"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewEventMessage 领域事件 → 线上格式
func NewEventMessage(e book.Event) EventMessage {
	msg := EventMessage{
		Type:       string(e.Type),
		BookID:     e.BookID,
		OccurredAt: e.OccurredAt,
	}
	if b := e.Book; b != nil {
		msg.Book = &BookSnapshot{
			ID:        b.ID,
			Title:     b.Title,
			Author:    b.Author,
			Year:      b.Year,
			Category:  string(b.Category),
			Rating:    b.Rating,
			Price:     b.Price,
			ImageURL:  b.ImageURL,
			CreatedAt: b.CreatedAt,
		}
	}
	return msg
}

// LogHandler 把收到的事件写入日志（events命令使用）
func LogHandler(queue string, log *slog.Logger) mq.Handler {
	return func(_ context.Context, d mq.Delivery) error {
		var msg EventMessage
		if err := json.Unmarshal(d.Body, &msg); err != nil {
			metrics.RecordConsume(queue, "failure")
			return fmt.Errorf("解析事件失败: %w", err)
		}

		attrs := []any{
			slog.String("routing_key", d.RoutingKey),
			slog.String("type", msg.Type),
			slog.Uint64("book_id", uint64(msg.BookID)),
			slog.Time("occurred_at", msg.OccurredAt),
		}
		if msg.Book != nil {
			attrs = append(attrs, slog.String("title", msg.Book.Title))
		}
		log.Info("book event", attrs...)

		metrics.RecordConsume(queue, "success")
		return nil
	}
}
