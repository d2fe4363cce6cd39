package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeListParams(t *testing.T) {
	t.Run("全部缺省", func(t *testing.T) {
		p := NormalizeListParams(ListQuery{})
		assert.Equal(t, ListParams{
			Page:     1,
			PageSize: DefaultPageSize,
			SortBy:   SortByCreatedAt,
			SortDir:  SortDesc,
		}, p)
	})

	t.Run("合法参数原样保留", func(t *testing.T) {
		p := NormalizeListParams(ListQuery{
			Page:     "3",
			PageSize: "20",
			Q:        "  tolkien ",
			Category: " Fantasy ",
			SortBy:   "rating",
			SortDir:  "ASC",
		})
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, PageSize(20), p.PageSize)
		assert.Equal(t, "tolkien", p.Keyword)
		assert.Equal(t, "Fantasy", p.Category)
		assert.Equal(t, SortByRating, p.SortBy)
		assert.Equal(t, SortAsc, p.SortDir)
	})

	t.Run("非法参数回退默认值", func(t *testing.T) {
		p := NormalizeListParams(ListQuery{
			Page:     "-5",
			PageSize: "7",
			SortBy:   "isbn; DROP TABLE books",
			SortDir:  "sideways",
		})
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, DefaultPageSize, p.PageSize)
		assert.Equal(t, SortByCreatedAt, p.SortBy)
		assert.Equal(t, SortDesc, p.SortDir)

		p = NormalizeListParams(ListQuery{Page: "abc", PageSize: "ten"})
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, DefaultPageSize, p.PageSize)
	})

	t.Run("createdAt别名", func(t *testing.T) {
		p := NormalizeListParams(ListQuery{SortBy: "createdAt"})
		assert.Equal(t, SortByCreatedAt, p.SortBy)
	})
}

func TestNormalizeListParams_HugePage(t *testing.T) {
	for _, raw := range []string{"9223372036854775807", "99999999999999999999999", "2147483648"} {
		p := NormalizeListParams(ListQuery{Page: raw, PageSize: "50"})
		assert.Equal(t, MaxPage, p.Page, "page=%s", raw)
		assert.Greater(t, p.Offset(), 0, "page=%s", raw)
	}

	p := NormalizeListParams(ListQuery{Page: "-99999999999999999999"})
	assert.Equal(t, 1, p.Page)
}

func TestListParams_Offset(t *testing.T) {
	p := ListParams{Page: 3, PageSize: 20}
	assert.Equal(t, 40, p.Offset())
	assert.Equal(t, 20, p.Limit())
	assert.Equal(t, 0, p.WithPage(1).Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 6, TotalPages(30, 5))
	assert.Equal(t, 1, TotalPages(30, 50))
}

func TestNewListResult_Clamp(t *testing.T) {
	t.Run("超出范围收敛到最后一页", func(t *testing.T) {
		p := ListParams{Page: 9, PageSize: 10}
		r := NewListResult(nil, 25, p)
		assert.Equal(t, 3, r.Page)
		assert.Equal(t, 3, r.TotalPages)
		assert.True(t, r.Clamped(p))
	})

	t.Run("空表不收敛", func(t *testing.T) {
		p := ListParams{Page: 4, PageSize: 10}
		r := NewListResult(nil, 0, p)
		assert.Equal(t, 4, r.Page)
		assert.Equal(t, 1, r.TotalPages)
		assert.False(t, r.Clamped(p))
	})

	t.Run("范围内保持不变", func(t *testing.T) {
		p := ListParams{Page: 2, PageSize: 5}
		r := NewListResult(nil, 12, p)
		assert.Equal(t, 2, r.Page)
		assert.Equal(t, 5, r.PageSize)
	})
}

func TestClosedSets(t *testing.T) {
	assert.Equal(t, []Category{
		"Fantasy", "Sci-Fi", "Classic", "Horror", "Mystery", "Non-Fiction", "Other",
	}, Categories())

	assert.Equal(t, []SortField{
		"author", "created_at", "price", "rating", "title", "year",
	}, SortFields())

	assert.Equal(t, []PageSize{5, 10, 20, 50}, PageSizes())
	assert.Equal(t, PageSize(10), ParsePageSize(11))

	// 返回副本,外部修改不影响内部集合
	cs := Categories()
	cs[0] = "Poetry"
	assert.Equal(t, CategoryFantasy, Categories()[0])

	assert.True(t, SortAsc.Desc() == false)
	assert.True(t, SortDesc.Desc())
}
