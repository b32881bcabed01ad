// Package pagination 一覧系エンドポイント共通のページング規約。
package pagination

import "strconv"

const (
	MaxPageSize     = 100
	DefaultPageSize = 100
	DefaultLimit    = 100
)

// クエリから解釈したページング指定
type Params struct {
	Page     int
	PageSize int
	Limit    int
}

// Parse はクエリ文字列の値をそのまま受け取る。
// 数値でない・0以下の値はエラーにせずデフォルト扱いにする。
func Parse(pageRaw, pageSizeRaw, limitRaw string) Params {
	page := 1
	if v, err := strconv.Atoi(pageRaw); err == nil && v >= 1 {
		page = v
	}

	pageSize := DefaultPageSize
	if v, err := strconv.Atoi(pageSizeRaw); err == nil && v >= 1 {
		pageSize = min(v, MaxPageSize)
	}

	limit := DefaultLimit
	if v, err := strconv.Atoi(limitRaw); err == nil && v >= 1 {
		limit = min(v, MaxPageSize)
	}

	return Params{Page: page, PageSize: pageSize, Limit: limit}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ページ取得後にさらにlimitで切り詰めるときの実効件数
func (p Params) Window() int {
	return min(p.PageSize, p.Limit)
}

// 総ページ数。空でも1ページとして数える
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		return 1
	}
	return pages
}

// 一覧レスポンスの共通封筒
type Envelope struct {
	Data       any `json:"data"`
	TotalPages int `json:"total_pages"`
	Limit      int `json:"limit"`
}
