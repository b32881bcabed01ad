package repository

import (
	"context"

	"msistore/internal/domain/model"
)

type CategoryRepository interface {
	List(ctx context.Context, page, pageSize int) ([]model.Category, int64, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	Create(ctx context.Context, c model.Category) (model.Category, error)
}

type BrandRepository interface {
	List(ctx context.Context, page, pageSize int) ([]model.Brand, int64, error)
	FindByID(ctx context.Context, id int64) (model.Brand, error)
	Create(ctx context.Context, b model.Brand) (model.Brand, error)
}

type ImageRepository interface {
	ListByProductID(ctx context.Context, productID int64) ([]model.Image, error)
	Create(ctx context.Context, img model.Image) (model.Image, error)
}

type LikeRepository interface {
	List(ctx context.Context, page, pageSize int) ([]model.Like, int64, error)
	Create(ctx context.Context, l model.Like) (model.Like, error)
}
