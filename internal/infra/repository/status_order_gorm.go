package repository

import (
	"context"
	"errors"

	"msistore/internal/domain/model"
	repo "msistore/internal/repository"

	"gorm.io/gorm"
)

type StatusOrderGormRepository struct {
	db *gorm.DB
}

func NewStatusOrderGormRepository(db *gorm.DB) *StatusOrderGormRepository {
	return &StatusOrderGormRepository{db: db}
}

func (r *StatusOrderGormRepository) Create(ctx context.Context, s model.StatusOrder) (model.StatusOrder, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.StatusOrder{}, err
	}
	return s, nil
}

func (r *StatusOrderGormRepository) FindByOrderID(ctx context.Context, orderID int64) (model.StatusOrder, error) {
	var s model.StatusOrder
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.StatusOrder{}, repo.ErrNotFound
	}
	if err != nil {
		return model.StatusOrder{}, err
	}
	return s, nil
}

func (r *StatusOrderGormRepository) List(ctx context.Context, page, pageSize int) ([]model.StatusOrder, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.StatusOrder{}).Count(&total).Error; err != nil {
		return []model.StatusOrder{}, 0, err
	}

	var items []model.StatusOrder
	offset := (page - 1) * pageSize
	err := r.db.WithContext(ctx).Order("id asc").Offset(offset).Limit(pageSize).Find(&items).Error
	if err != nil {
		return []model.StatusOrder{}, 0, err
	}
	return items, total, nil
}

func (r *StatusOrderGormRepository) FindByID(ctx context.Context, id int64) (model.StatusOrder, error) {
	var s model.StatusOrder
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.StatusOrder{}, repo.ErrNotFound
	}
	if err != nil {
		return model.StatusOrder{}, err
	}
	return s, nil
}

func (r *StatusOrderGormRepository) Update(ctx context.Context, s model.StatusOrder) error {
	res := r.db.WithContext(ctx).Model(&model.StatusOrder{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"is_paid":         s.IsPaid,
		"delivery_method": s.DeliveryMethod,
		"delivery_stage":  s.DeliveryStage,
		"payment_method":  s.PaymentMethod,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
