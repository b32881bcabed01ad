package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_Defaults(t *testing.T) {
	p := Parse("", "", "")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, DefaultLimit, p.Limit)
}

// 数値でない・0以下はエラーではなくデフォルト扱い
func TestParse_InvalidValuesFallBack(t *testing.T) {
	cases := []struct {
		name    string
		page    string
		size    string
		limit   string
		expPage int
		expSize int
		expLim  int
	}{
		{"non-numeric", "abc", "xyz", "?", 1, DefaultPageSize, DefaultLimit},
		{"zero", "0", "0", "0", 1, DefaultPageSize, DefaultLimit},
		{"negative", "-3", "-10", "-1", 1, DefaultPageSize, DefaultLimit},
		{"float", "1.5", "2.5", "3.5", 1, DefaultPageSize, DefaultLimit},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := Parse(c.page, c.size, c.limit)
			assert.Equal(t, c.expPage, p.Page)
			assert.Equal(t, c.expSize, p.PageSize)
			assert.Equal(t, c.expLim, p.Limit)
		})
	}
}

// 上限100でクランプ
func TestParse_ClampsToMax(t *testing.T) {
	p := Parse("2", "500", "101")
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, MaxPageSize, p.PageSize)
	assert.Equal(t, MaxPageSize, p.Limit)
}

func TestParse_ValidValuesKept(t *testing.T) {
	p := Parse("3", "25", "10")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.PageSize)
	assert.Equal(t, 10, p.Limit)
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, Params{Page: 3, PageSize: 20}.Offset())
}

// limitがpage_sizeより小さいときはlimit分だけ返す
func TestParams_Window(t *testing.T) {
	assert.Equal(t, 10, Params{PageSize: 25, Limit: 10}.Window())
	assert.Equal(t, 25, Params{PageSize: 25, Limit: 100}.Window())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 100))
	assert.Equal(t, 1, TotalPages(100, 100))
	assert.Equal(t, 2, TotalPages(101, 100))
	assert.Equal(t, 4, TotalPages(100, 30))

	//pageSizeが壊れていても落とさない
	assert.Equal(t, 1, TotalPages(10, 0))
}
