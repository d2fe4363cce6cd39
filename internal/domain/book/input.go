package book

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// RawValue 保存请求体中某个字段的原始JSON token
// 字段缺失或为null时Present()返回false
// 所有转换方法都不会panic,失败时返回ok=false
type RawValue struct {
	raw json.RawMessage
}

// UnmarshalJSON 只保存原始字节,类型转换延迟到校验阶段
func (v *RawValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		v.raw = nil
		return nil
	}
	v.raw = append(v.raw[:0], trimmed...)
	return nil
}

// MarshalJSON 原样输出,缺失时输出null
func (v RawValue) MarshalJSON() ([]byte, error) {
	if !v.Present() {
		return []byte("null"), nil
	}
	return v.raw, nil
}

// Raw 用一个Go值构造RawValue
func Raw(x interface{}) RawValue {
	data, err := json.Marshal(x)
	if err != nil {
		return RawValue{}
	}
	var v RawValue
	_ = v.UnmarshalJSON(data)
	return v
}

// Present 字段是否提供了非null值
func (v RawValue) Present() bool {
	return len(v.raw) > 0
}

func (v RawValue) isString() bool {
	return v.Present() && v.raw[0] == '"'
}

func (v RawValue) isNumber() bool {
	if !v.Present() {
		return false
	}
	c := v.raw[0]
	return c == '-' || (c >= '0' && c <= '9')
}

// Text 转为字符串
// 字符串取其值,数字和布尔值取字面量,缺失返回空串
func (v RawValue) Text() string {
	if !v.Present() {
		return ""
	}
	if v.isString() {
		var s string
		if err := json.Unmarshal(v.raw, &s); err != nil {
			return ""
		}
		return s
	}
	switch v.raw[0] {
	case '{', '[':
		return ""
	}
	return string(v.raw)
}

// Int 转为整数
// JSON整数直接取值,JSON小数向零截断,字符串按十进制整数解析
// 超出int32范围的有限数值收敛到边界值,仍视为提供了数值
func (v RawValue) Int() (int, bool) {
	switch {
	case v.isNumber():
		s := string(v.raw)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return saturate(float64(n)), true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, false
		}
		return saturate(math.Trunc(f)), true
	case v.isString():
		s := strings.TrimSpace(v.Text())
		// 溢出时ParseInt返回带符号的边界值
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return saturate(float64(n)), true
	default:
		return 0, false
	}
}

func saturate(f float64) int {
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	default:
		return int(f)
	}
}

// Float 转为浮点数
// 拒绝NaN和±Inf
func (v RawValue) Float() (float64, bool) {
	var s string
	switch {
	case v.isNumber():
		s = string(v.raw)
	case v.isString():
		s = strings.TrimSpace(v.Text())
	default:
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Input 创建/更新图书的请求体
// 字段保持原始JSON形态,由Validate统一转换和校验
type Input struct {
	Title    RawValue `json:"title" swaggertype:"string" example:"The Hobbit"`
	Author   RawValue `json:"author" swaggertype:"string" example:"J.R.R. Tolkien"`
	Year     RawValue `json:"year" swaggertype:"integer" example:"1937"`
	Category RawValue `json:"category" swaggertype:"string" example:"Fantasy"`
	Rating   RawValue `json:"rating" swaggertype:"number" example:"4.7"`
	Price    RawValue `json:"price" swaggertype:"number" example:"12.99"`
	ImageURL RawValue `json:"imageUrl" swaggertype:"string" example:"https://placehold.co/160x220?text=Book"`
}
