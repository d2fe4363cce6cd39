package sqldb

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain/book/entity.go是领域实体,不依赖GORM
// 3. 没有软删除字段,Delete即物理删除
// 4. category和created_at建索引,分别用于过滤和默认排序
type BookModel struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"size:255;not null"`
	Author    string    `gorm:"size:255;not null"`
	Year      int       `gorm:"not null"`
	Category  string    `gorm:"size:80;not null;default:Other;index"`
	Rating    float64   `gorm:"not null;default:0"`
	Price     float64   `gorm:"not null;default:0"`
	ImageURL  string    `gorm:"column:image_url;size:1000;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// mutableColumns Update时覆盖的列(id和created_at除外)
var mutableColumns = []string{"title", "author", "year", "category", "rating", "price", "image_url"}

// bookRepository 图书仓储实现
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 驱动错误统一包装为AppError,不向上层暴露
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID和创建时间
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := conn(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// Update 覆盖可变字段
// 使用Select显式列出列名,零值(评分0、价格0)也会写入
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	err := conn(ctx, r.db).
		Model(&BookModel{ID: b.ID}).
		Select(mutableColumns).
		Updates(toBookModel(b)).Error
	if err != nil {
		return apperrors.Wrap(err, "更新图书失败")
	}
	return nil
}

// Delete 物理删除
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Delete(&BookModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// List 过滤、排序、分页
// total是过滤后分页前的数量
func (r *bookRepository) List(ctx context.Context, p book.ListParams) ([]*book.Book, int64, error) {
	var total int64
	if err := r.filtered(ctx, p).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	desc := p.SortDir.Desc()
	var models []BookModel
	err := r.filtered(ctx, p).
		Order(clause.OrderByColumn{Column: clause.Column{Name: p.SortBy.Column()}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc}).
		Offset(p.Offset()).
		Limit(p.Limit()).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, total, nil
}

// filtered 构建带过滤条件的查询
// Count和Find各自调用一次,避免复用同一个Statement
func (r *bookRepository) filtered(ctx context.Context, p book.ListParams) *gorm.DB {
	query := conn(ctx, r.db).Model(&BookModel{})

	// 标题或作者包含关键词(不区分大小写)
	if p.Keyword != "" {
		like := "%" + strings.ToLower(p.Keyword) + "%"
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(author) LIKE ?)", like, like)
	}

	// 分类精确匹配
	if p.Category != "" {
		query = whereCategory(query, p.Category)
	}
	return query
}

// whereCategory 按读出后的分类过滤,与toBookEntity的归类规则一致:
// 不在集合内的历史分类读出时为Other,所以也只能被Other过滤到
func whereCategory(query *gorm.DB, category string) *gorm.DB {
	c := book.Category(category)
	switch {
	case c == book.CategoryOther:
		return query.Where("TRIM(category) NOT IN ?", knownCategories())
	case c.IsValid():
		return query.Where("TRIM(category) = ?", category)
	default:
		return query.Where("1 = 0")
	}
}

// knownCategories 除Other以外的分类
func knownCategories() []string {
	out := make([]string, 0, len(book.Categories()))
	for _, c := range book.Categories() {
		if c != book.CategoryOther {
			out = append(out, string(c))
		}
	}
	return out
}

// Count 全表记录数
func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := conn(ctx, r.db).Model(&BookModel{}).Count(&n).Error; err != nil {
		return 0, apperrors.Wrap(err, "查询图书总数失败")
	}
	return n, nil
}

// Stats 全表聚合
func (r *bookRepository) Stats(ctx context.Context) (*book.Stats, error) {
	var agg struct {
		Total      int64
		AvgYear    float64
		AvgRating  float64
		TotalValue float64
	}
	err := conn(ctx, r.db).Model(&BookModel{}).
		Select("COUNT(id) AS total, " +
			"COALESCE(AVG(year), 0) AS avg_year, " +
			"COALESCE(AVG(rating), 0) AS avg_rating, " +
			"COALESCE(SUM(price), 0) AS total_value").
		Scan(&agg).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "统计图书失败")
	}

	var rows []struct {
		Category string
		Cnt      int64
	}
	err = conn(ctx, r.db).Model(&BookModel{}).
		Select("category, COUNT(id) AS cnt").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "按分类统计失败")
	}

	// 历史分类并入Other,与列表展示一致
	byCategory := make(map[string]int64, len(rows))
	for _, row := range rows {
		byCategory[string(book.ParseCategory(row.Category))] += row.Cnt
	}

	return &book.Stats{
		Total:           agg.Total,
		AvgYear:         agg.AvgYear,
		AvgRating:       agg.AvgRating,
		TotalValue:      agg.TotalValue,
		CountByCategory: byCategory,
	}, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
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

// toBookEntity GORM模型 → 领域实体
// 库里的历史数据可能有不在集合内的分类,读出时归为Other
func toBookEntity(m *BookModel) *book.Book {
	return &book.Book{
		ID:        m.ID,
		Title:     m.Title,
		Author:    m.Author,
		Year:      m.Year,
		Category:  book.ParseCategory(m.Category),
		Rating:    m.Rating,
		Price:     m.Price,
		ImageURL:  m.ImageURL,
		CreatedAt: m.CreatedAt.UTC(),
	}
}
