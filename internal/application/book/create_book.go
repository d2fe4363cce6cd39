package book

import (
	"context"
	"log/slog"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/tracing"
)

// CreateBookUseCase 新增图书用例
// 流程: 校验 → 插入(id自增, createdAt=now) → 发布book.created事件
type CreateBookUseCase struct {
	bookService book.Service
	publisher   book.EventPublisher
}

// NewCreateBookUseCase 创建新增用例
func NewCreateBookUseCase(bookService book.Service, publisher book.EventPublisher) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
		publisher:   publisher,
	}
}

// Execute 执行新增用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, in book.Input) (view *BookView, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.CreateBook")
	defer func() {
		tracing.RecordError(span, err)
		span.End()
		metrics.RecordBookMutation("create", mutationResult(err))
	}()

	// 1. 校验(第一条失败的规则决定错误信息)
	payload, err := book.Validate(in)
	if err != nil {
		return nil, err
	}

	// 2. 插入
	b, err := uc.bookService.CreateBook(ctx, *payload)
	if err != nil {
		return nil, wrapStoreError(err)
	}

	logger.FromContext(ctx).Info("book created",
		slog.Uint64("book_id", uint64(b.ID)),
		slog.String("title", b.Title),
	)

	// 3. 事件(尽力而为)
	publish(ctx, uc.publisher, book.EventCreated, b)

	v := NewBookView(b)
	return &v, nil
}
