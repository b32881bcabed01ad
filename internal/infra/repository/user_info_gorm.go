package repository

import (
	"context"
	"errors"

	"msistore/internal/domain/model"
	repo "msistore/internal/repository"

	"gorm.io/gorm"
)

type UserInfoGormRepository struct {
	db *gorm.DB
}

func NewUserInfoGormRepository(db *gorm.DB) *UserInfoGormRepository {
	return &UserInfoGormRepository{db: db}
}

func (r *UserInfoGormRepository) FindByUserID(ctx context.Context, userID int64) (model.UserInfo, error) {
	var info model.UserInfo
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.UserInfo{}, repo.ErrNotFound
	}
	if err != nil {
		return model.UserInfo{}, err
	}
	return info, nil
}

func (r *UserInfoGormRepository) Create(ctx context.Context, info model.UserInfo) (model.UserInfo, error) {
	if err := r.db.WithContext(ctx).Create(&info).Error; err != nil {
		return model.UserInfo{}, err
	}
	return info, nil
}

func (r *UserInfoGormRepository) Update(ctx context.Context, info model.UserInfo) error {
	res := r.db.WithContext(ctx).Model(&model.UserInfo{}).Where("user_id = ?", info.UserID).Updates(map[string]interface{}{
		"country":      info.Country,
		"city":         info.City,
		"street":       info.Street,
		"home_number":  info.HomeNumber,
		"phone_number": info.PhoneNumber,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
