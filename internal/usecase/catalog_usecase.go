package usecase

import (
	"context"
	"net/http"
	"strings"

	"msistore/internal/domain/model"
	"msistore/internal/pagination"
	repo "msistore/internal/repository"
)

// カテゴリ・ブランド・画像・いいねの薄いCRUD

type CategoryUsecase struct {
	categories repo.CategoryRepository
}

func NewCategoryUsecase(categories repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categories: categories}
}

func (u *CategoryUsecase) List(ctx context.Context, p pagination.Params) (pagination.Envelope, error) {
	items, total, err := u.categories.List(ctx, p.Page, p.PageSize)
	if err != nil {
		return pagination.Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if w := p.Window(); len(items) > w {
		items = items[:w]
	}
	return pagination.Envelope{
		Data:       items,
		TotalPages: pagination.TotalPages(total, p.PageSize),
		Limit:      p.Limit,
	}, nil
}

func (u *CategoryUsecase) Get(ctx context.Context, id int64) (model.Category, error) {
	if id <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	c, err := u.categories.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *CategoryUsecase) Create(ctx context.Context, name string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	c, err := u.categories.Create(ctx, model.Category{Name: name})
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

type BrandUsecase struct {
	brands repo.BrandRepository
}

func NewBrandUsecase(brands repo.BrandRepository) *BrandUsecase {
	return &BrandUsecase{brands: brands}
}

func (u *BrandUsecase) List(ctx context.Context, p pagination.Params) (pagination.Envelope, error) {
	items, total, err := u.brands.List(ctx, p.Page, p.PageSize)
	if err != nil {
		return pagination.Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if w := p.Window(); len(items) > w {
		items = items[:w]
	}
	return pagination.Envelope{
		Data:       items,
		TotalPages: pagination.TotalPages(total, p.PageSize),
		Limit:      p.Limit,
	}, nil
}

func (u *BrandUsecase) Create(ctx context.Context, name string) (model.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Brand{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	b, err := u.brands.Create(ctx, model.Brand{Name: name})
	if err != nil {
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return b, nil
}

type ImageUsecase struct {
	images   repo.ImageRepository
	products repo.ProductRepository
}

func NewImageUsecase(images repo.ImageRepository, products repo.ProductRepository) *ImageUsecase {
	return &ImageUsecase{images: images, products: products}
}

type CreateImageInput struct {
	URL       string `json:"url"`
	ProductID int64  `json:"product"`
	Preview   bool   `json:"preview"`
}

func (u *ImageUsecase) Create(ctx context.Context, in CreateImageInput) (model.Image, error) {
	if strings.TrimSpace(in.URL) == "" {
		return model.Image{}, NewHTTPError(http.StatusBadRequest, "url required")
	}
	if in.ProductID <= 0 {
		return model.Image{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}

	//商品が無いなら404
	if _, err := u.products.FindByID(ctx, in.ProductID); err != nil {
		if err == repo.ErrNotFound {
			return model.Image{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return model.Image{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	img, err := u.images.Create(ctx, model.Image{
		URL:       strings.TrimSpace(in.URL),
		ProductID: in.ProductID,
		Preview:   in.Preview,
	})
	if err != nil {
		return model.Image{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return img, nil
}

type LikeUsecase struct {
	likes    repo.LikeRepository
	infos    repo.UserInfoRepository
	products repo.ProductRepository
}

func NewLikeUsecase(likes repo.LikeRepository, infos repo.UserInfoRepository, products repo.ProductRepository) *LikeUsecase {
	return &LikeUsecase{likes: likes, infos: infos, products: products}
}

func (u *LikeUsecase) List(ctx context.Context, p pagination.Params) (pagination.Envelope, error) {
	items, total, err := u.likes.List(ctx, p.Page, p.PageSize)
	if err != nil {
		return pagination.Envelope{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if w := p.Window(); len(items) > w {
		items = items[:w]
	}
	return pagination.Envelope{
		Data:       items,
		TotalPages: pagination.TotalPages(total, p.PageSize),
		Limit:      p.Limit,
	}, nil
}

// いいねは呼び出し元のプロフィールに紐づく
func (u *LikeUsecase) Create(ctx context.Context, userID int64, productID int64) (model.Like, error) {
	if userID <= 0 {
		return model.Like{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return model.Like{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}

	info, err := u.infos.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return model.Like{}, NewHTTPError(http.StatusBadRequest, "userinfo required")
	}
	if err != nil {
		return model.Like{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if _, err := u.products.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return model.Like{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return model.Like{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	l, err := u.likes.Create(ctx, model.Like{
		UserInfoID: info.UserID,
		ProductID:  productID,
	})
	if err != nil {
		return model.Like{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return l, nil
}
