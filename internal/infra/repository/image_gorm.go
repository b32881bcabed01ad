package repository

import (
	"context"

	"msistore/internal/domain/model"

	"gorm.io/gorm"
)

type ImageGormRepository struct {
	db *gorm.DB
}

func NewImageGormRepository(db *gorm.DB) *ImageGormRepository {
	return &ImageGormRepository{db: db}
}

func (r *ImageGormRepository) ListByProductID(ctx context.Context, productID int64) ([]model.Image, error) {
	var items []model.Image
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id asc").Find(&items).Error
	if err != nil {
		return []model.Image{}, err
	}
	return items, nil
}

func (r *ImageGormRepository) Create(ctx context.Context, img model.Image) (model.Image, error) {
	if err := r.db.WithContext(ctx).Create(&img).Error; err != nil {
		return model.Image{}, err
	}
	return img, nil
}
