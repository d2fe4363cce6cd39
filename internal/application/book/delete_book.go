package book

import (
	"context"
	"log/slog"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/sqldb"
	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// DeleteBookUseCase 删除图书用例(物理删除)
type DeleteBookUseCase struct {
	bookService book.Service
	txManager   *sqldb.TxManager
	publisher   book.EventPublisher
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(
	bookService book.Service,
	txManager *sqldb.TxManager,
	publisher book.EventPublisher,
) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		txManager:   txManager,
		publisher:   publisher,
	}
}

// Execute 执行删除用例
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) (err error) {
	ctx, span := tracing.StartSpan(ctx, "book.DeleteBook")
	defer func() {
		tracing.RecordError(span, err)
		span.End()
		metrics.RecordBookMutation("delete", mutationResult(err))
	}()

	var deleted *book.Book
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		b, err := uc.bookService.DeleteBook(txCtx, id)
		if err != nil {
			return err
		}
		deleted = b
		return nil
	})
	if err != nil {
		return wrapStoreError(err)
	}

	logger.FromContext(ctx).Info("book deleted", slog.Uint64("book_id", uint64(id)))
	publish(ctx, uc.publisher, book.EventDeleted, deleted)
	return nil
}
