package book

import (
	"math"
	"strconv"
	"time"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// BookView 图书的对外表示
// rating和price保留两位小数,createdAt为UTC的RFC3339(带小数秒),未设置时为null
type BookView struct {
	ID        uint    `json:"id" example:"1"`
	Title     string  `json:"title" example:"The Hobbit"`
	Author    string  `json:"author" example:"J.R.R. Tolkien"`
	Year      int     `json:"year" example:"1937"`
	Category  string  `json:"category" example:"Fantasy"`
	Rating    float64 `json:"rating" example:"3.7"`
	Price     float64 `json:"price" example:"6.9"`
	ImageURL  string  `json:"imageUrl" example:"https://placehold.co/160x220?text=Book+1"`
	CreatedAt *string `json:"createdAt" example:"2024-05-01T12:30:00.123456Z"`
}

// NewBookView 实体 → 视图
func NewBookView(b *book.Book) BookView {
	return BookView{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Year:      b.Year,
		Category:  string(b.Category),
		Rating:    Round2(b.Rating),
		Price:     Round2(b.Price),
		ImageURL:  b.ImageURL,
		CreatedAt: formatTime(b.CreatedAt),
	}
}

// NewBookViews 批量转换,空列表返回[]而不是null
func NewBookViews(items []*book.Book) []BookView {
	views := make([]BookView, 0, len(items))
	for _, b := range items {
		views = append(views, NewBookView(b))
	}
	return views
}

// Round2 保留两位小数,恰好处于中间时取偶数(0.125 → 0.12)
// 按float64的精确十进制值舍入,不先乘100,避免2.675这类值被放大成假的中间值
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}
