package repository

import (
	"context"

	"msistore/internal/domain/model"

	"gorm.io/gorm"
)

type LikeGormRepository struct {
	db *gorm.DB
}

func NewLikeGormRepository(db *gorm.DB) *LikeGormRepository {
	return &LikeGormRepository{db: db}
}

func (r *LikeGormRepository) List(ctx context.Context, page, pageSize int) ([]model.Like, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Like{}).Count(&total).Error; err != nil {
		return []model.Like{}, 0, err
	}

	var items []model.Like
	offset := (page - 1) * pageSize
	err := r.db.WithContext(ctx).Order("id asc").Offset(offset).Limit(pageSize).Find(&items).Error
	if err != nil {
		return []model.Like{}, 0, err
	}
	return items, total, nil
}

func (r *LikeGormRepository) Create(ctx context.Context, l model.Like) (model.Like, error) {
	if err := r.db.WithContext(ctx).Create(&l).Error; err != nil {
		return model.Like{}, err
	}
	return l, nil
}
