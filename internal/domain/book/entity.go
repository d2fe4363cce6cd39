package book

import (
	"time"
)

// PlaceholderImageURL 未提供封面时使用的占位图
const PlaceholderImageURL = "https://placehold.co/160x220?text=Book"

// 取值范围
const (
	MinYear   = 0
	MaxYear   = 2100
	MinRating = 0.0
	MaxRating = 5.0
	MinPrice  = 0.0
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. 单表扁平实体,没有关联关系
// 2. ID和CreatedAt创建后不可修改,其余字段可由Update整体替换
// 3. 评分和价格使用float64,展示时保留2位小数
type Book struct {
	ID        uint
	Title     string   // 书名
	Author    string   // 作者
	Year      int      // 出版年份(0-2100)
	Category  Category // 分类(固定集合)
	Rating    float64  // 评分(0-5)
	Price     float64  // 价格(>=0)
	ImageURL  string   // 封面图片URL
	CreatedAt time.Time
}

// NewBook 由校验后的Payload创建图书(工厂方法)
// CreatedAt由仓储在插入时回填
func NewBook(p Payload) *Book {
	b := &Book{}
	b.Apply(p)
	return b
}

// Apply 用Payload覆盖所有可变字段(整体替换,不是部分更新)
// ID与CreatedAt保持不变
func (b *Book) Apply(p Payload) {
	b.Title = p.Title
	b.Author = p.Author
	b.Year = p.Year
	b.Category = p.Category
	b.Rating = p.Rating
	b.Price = p.Price
	b.ImageURL = p.ImageURL
}

// Payload 校验并清洗后的图书字段
// 只能由Validate产生,字段均已转换为规范类型并填充默认值
type Payload struct {
	Title    string
	Author   string
	Year     int
	Category Category
	Rating   float64
	Price    float64
	ImageURL string
}
