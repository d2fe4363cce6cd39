package book

import (
	"strings"
)

// Validate 校验并清洗图书请求体
// 按固定顺序检查,返回第一个失败项的提示;成功时返回规范化的Payload
// 规则:
// - 书名、作者去空白后不能为空
// - 年份必须是整数且在0-2100之间
// - 分类不合法时归为Other(不报错)
// - 评分缺失视为0,必须在0-5之间
// - 价格缺失视为0,必须>=0
// - 封面为空时使用占位图
func Validate(in Input) (*Payload, error) {
	title := strings.TrimSpace(in.Title.Text())
	if title == "" {
		return nil, NewValidationError(MsgTitleRequired)
	}

	author := strings.TrimSpace(in.Author.Text())
	if author == "" {
		return nil, NewValidationError(MsgAuthorRequired)
	}

	year, ok := in.Year.Int()
	if !ok {
		return nil, NewValidationError(MsgYearRequired)
	}
	if year < MinYear || year > MaxYear {
		return nil, NewValidationError(MsgYearRange)
	}

	category := ParseCategory(in.Category.Text())

	rating, ok := optionalFloat(in.Rating)
	if !ok {
		return nil, NewValidationError(MsgRatingNumber)
	}
	if rating < MinRating || rating > MaxRating {
		return nil, NewValidationError(MsgRatingRange)
	}

	price, ok := optionalFloat(in.Price)
	if !ok {
		return nil, NewValidationError(MsgPriceNumber)
	}
	if price < MinPrice {
		return nil, NewValidationError(MsgPriceRange)
	}

	imageURL := strings.TrimSpace(in.ImageURL.Text())
	if imageURL == "" {
		imageURL = PlaceholderImageURL
	}

	return &Payload{
		Title:    title,
		Author:   author,
		Year:     year,
		Category: category,
		Rating:   rating,
		Price:    price,
		ImageURL: imageURL,
	}, nil
}

// optionalFloat 缺失视为0
func optionalFloat(v RawValue) (float64, bool) {
	if !v.Present() {
		return 0, true
	}
	return v.Float()
}
