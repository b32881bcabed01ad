package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"msistore/internal/domain/model"
	"msistore/internal/pagination"
	repo "msistore/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
	imageRepo   repo.ImageRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, imageRepo repo.ImageRepository) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		imageRepo:   imageRepo,
	}
}

// GET /productsの入力DTO
// FromPrice/ToPriceは両方揃ったときだけ絞り込みに使う
type ListCatalogInput struct {
	Paging     pagination.Params
	Kw         string
	CategoryID *int64
	FromPrice  *decimal.Decimal
	ToPrice    *decimal.Decimal
}

type ProductOutput struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Detail      datatypes.JSON  `json:"detail"`
	OldPrice    decimal.Decimal `json:"old_price"`
	NewPrice    decimal.Decimal `json:"new_price"`
	Category    int64           `json:"category"`
	Brand       *int64          `json:"brand"`
	Images      []string        `json:"images"`
}

func (u *ProductUsecase) ListCatalog(ctx context.Context, in ListCatalogInput) (pagination.Envelope, error) {
	items, total, err := u.productRepo.ListCatalog(ctx, repo.CatalogQuery{
		Page:       in.Paging.Page,
		PageSize:   in.Paging.PageSize,
		Kw:         strings.TrimSpace(in.Kw),
		CategoryID: in.CategoryID,
		FromPrice:  in.FromPrice,
		ToPrice:    in.ToPrice,
	})
	if err != nil {
		return pagination.Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//ページ取得後、さらにlimitで切り詰める
	if w := in.Paging.Window(); len(items) > w {
		items = items[:w]
	}

	outs := make([]ProductOutput, 0, len(items))
	for i := range items {
		outs = append(outs, u.toProductOutput(ctx, items[i]))
	}

	return pagination.Envelope{
		Data:       outs,
		TotalPages: pagination.TotalPages(total, in.Paging.PageSize),
		Limit:      in.Paging.Limit,
	}, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (ProductOutput, error) {
	if productID <= 0 {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return ProductOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !p.IsActive {
		return ProductOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return u.toProductOutput(ctx, p), nil
}

type SaveProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Detail      datatypes.JSON  `json:"detail"`
	OldPrice    decimal.Decimal `json:"old_price"`
	NewPrice    decimal.Decimal `json:"new_price"`
	CategoryID  int64           `json:"category"`
	BrandID     *int64          `json:"brand"`
	IsActive    bool            `json:"is_active"`
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in SaveProductInput) (int64, error) {
	if err := validateProductInput(in); err != nil {
		return 0, err
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Detail:      in.Detail,
		OldPrice:    in.OldPrice,
		NewPrice:    in.NewPrice,
		CategoryID:  in.CategoryID,
		BrandID:     in.BrandID,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p.ID, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID int64, in SaveProductInput) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := validateProductInput(in); err != nil {
		return err
	}

	err := u.productRepo.Update(ctx, model.Product{
		ID:          productID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Detail:      in.Detail,
		OldPrice:    in.OldPrice,
		NewPrice:    in.NewPrice,
		CategoryID:  in.CategoryID,
		BrandID:     in.BrandID,
		IsActive:    in.IsActive,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func validateProductInput(in SaveProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.CategoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	if in.OldPrice.IsNegative() || in.NewPrice.IsNegative() {
		return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	return nil
}

func (u *ProductUsecase) toProductOutput(ctx context.Context, p model.Product) ProductOutput {
	urls := []string{}

	//画像が取れなくても商品自体は返す
	if images, err := u.imageRepo.ListByProductID(ctx, p.ID); err == nil {
		for _, img := range images {
			urls = append(urls, img.URL)
		}
	}

	return ProductOutput{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Detail:      p.Detail,
		OldPrice:    p.OldPrice,
		NewPrice:    p.NewPrice,
		Category:    p.CategoryID,
		Brand:       p.BrandID,
		Images:      urls,
	}
}
