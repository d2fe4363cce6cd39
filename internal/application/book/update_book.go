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

// UpdateBookUseCase 整体替换图书用例
// 校验规则与新增相同,所有字段都会被覆盖(id和createdAt除外)
type UpdateBookUseCase struct {
	bookService book.Service
	txManager   *sqldb.TxManager
	publisher   book.EventPublisher
}

// NewUpdateBookUseCase 创建替换用例
func NewUpdateBookUseCase(
	bookService book.Service,
	txManager *sqldb.TxManager,
	publisher book.EventPublisher,
) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		txManager:   txManager,
		publisher:   publisher,
	}
}

// Execute 执行替换用例
// 查找与更新在同一个事务里,记录不存在时返回ErrBookNotFound(404)
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, in book.Input) (view *BookView, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.ReplaceBook")
	defer func() {
		tracing.RecordError(span, err)
		span.End()
		metrics.RecordBookMutation("update", mutationResult(err))
	}()

	payload, err := book.Validate(in)
	if err != nil {
		return nil, err
	}

	var updated *book.Book
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		b, err := uc.bookService.ReplaceBook(txCtx, id, *payload)
		if err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, wrapStoreError(err)
	}

	logger.FromContext(ctx).Info("book updated", slog.Uint64("book_id", uint64(id)))
	publish(ctx, uc.publisher, book.EventUpdated, updated)

	v := NewBookView(updated)
	return &v, nil
}
