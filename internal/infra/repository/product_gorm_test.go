package repository

import (
	"context"
	"strings"
	"testing"

	repo "msistore/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// =====================
// カタログ検索のWHERE句
// =====================

// ListCatalogを一度実行し、発行されたSQL（count + select）を返す
func catalogSQL(t *testing.T, q repo.CatalogQuery) string {
	t.Helper()

	var captured []string
	recorder := sqlmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error {
		captured = append(captured, actualSQL)
		return nil
	})

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(recorder))
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)

	mock.ExpectQuery("count").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("select").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err = NewProductGormRepository(gormDB).ListCatalog(context.Background(), q)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	return strings.Join(captured, "\n")
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// 価格帯は両端が揃ったときだけ絞り、片方だけなら条件に入れない
func TestListCatalog_PriceFilterNeedsBothBounds(t *testing.T) {
	base := repo.CatalogQuery{Page: 1, PageSize: 20}

	t.Run("FromPriceのみ", func(t *testing.T) {
		q := base
		q.FromPrice = decPtr("10.00")

		sql := catalogSQL(t, q)
		assert.NotContains(t, sql, "new_price")
	})

	t.Run("ToPriceのみ", func(t *testing.T) {
		q := base
		q.ToPrice = decPtr("99.99")

		sql := catalogSQL(t, q)
		assert.NotContains(t, sql, "new_price")
	})

	t.Run("両端あり", func(t *testing.T) {
		q := base
		q.FromPrice = decPtr("10.00")
		q.ToPrice = decPtr("99.99")

		sql := catalogSQL(t, q)
		//BETWEENなので両端を含む
		assert.Contains(t, sql, "new_price BETWEEN")
	})
}

// kwはnameとdescriptionの両方に含まれること（AND条件）
func TestListCatalog_KeywordMatchesNameAndDescription(t *testing.T) {
	sql := catalogSQL(t, repo.CatalogQuery{Page: 1, PageSize: 20, Kw: "laptop"})

	//ORではなくANDで両方に掛かる
	assert.Contains(t, sql, "name LIKE $2 AND description LIKE $3")
	assert.NotContains(t, sql, " OR ")
}

// 公開中（is_active）の絞り込みは常に入る
func TestListCatalog_AlwaysFiltersActive(t *testing.T) {
	catID := int64(3)
	sql := catalogSQL(t, repo.CatalogQuery{Page: 1, PageSize: 20, CategoryID: &catID})

	assert.Contains(t, sql, "is_active = $1")
	assert.Contains(t, sql, "category_id = $2")
}
