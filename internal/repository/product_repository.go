package repository

import (
	"context"
	"errors"

	"msistore/internal/domain/model"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// カタログ一覧の検索条件
// 価格帯はFromPrice/ToPriceが両方あるときだけ効く
type CatalogQuery struct {
	Page     int
	PageSize int

	//nameとdescriptionの両方に含まれること
	Kw string

	CategoryID *int64
	FromPrice  *decimal.Decimal
	ToPrice    *decimal.Decimal
}

// 商品の永続化だけを約束
type ProductRepository interface {
	ListCatalog(ctx context.Context, q CatalogQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
}
