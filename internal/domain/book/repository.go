package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 实现方需从ctx中识别事务,Update/Delete在事务内调用
type Repository interface {
	// Create 创建图书,回填ID和CreatedAt
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书,不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Update 覆盖除ID和CreatedAt以外的全部字段
	Update(ctx context.Context, book *Book) error

	// Delete 物理删除,不存在返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error

	// List 按过滤、排序、分页条件查询
	// 返回当前页数据和过滤后(分页前)的总数
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// Count 全表记录数
	Count(ctx context.Context) (int64, error)

	// Stats 全表聚合统计(不受任何过滤条件影响)
	Stats(ctx context.Context) (*Stats, error)
}

// Stats 聚合原始值(未做舍入)
type Stats struct {
	Total           int64
	AvgYear         float64
	AvgRating       float64
	TotalValue      float64
	CountByCategory map[string]int64
}
