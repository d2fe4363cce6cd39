package book

import (
	"context"
	"log/slog"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/logger"
)

// publish 发布变更事件,失败只记录日志
func publish(ctx context.Context, publisher book.EventPublisher, eventType book.EventType, b *book.Book) {
	if err := publisher.Publish(ctx, book.NewEvent(eventType, b)); err != nil {
		logger.FromContext(ctx).Warn("publish book event failed",
			slog.String("type", string(eventType)),
			slog.Uint64("book_id", uint64(b.ID)),
			slog.Any("error", err),
		)
	}
}

// mutationResult 错误 → 变更指标的result标签
func mutationResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case apperrors.IsValidation(err):
		return "invalid"
	case apperrors.IsNotFound(err):
		return "not_found"
	default:
		return "error"
	}
}

// wrapStoreError 非AppError的存储错误包装为500
func wrapStoreError(err error) error {
	if apperrors.IsAppError(err) {
		return err
	}
	return apperrors.Wrap(err, apperrors.ErrInternal.Message)
}
