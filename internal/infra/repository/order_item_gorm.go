package repository

import (
	"context"
	"errors"

	"msistore/internal/domain/model"
	repo "msistore/internal/repository"

	"gorm.io/gorm"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}
	return nil
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id asc").Find(&items).Error
	if err != nil {
		return []model.OrderItem{}, err
	}
	return items, nil
}

func (r *OrderItemGormRepository) List(ctx context.Context, page, pageSize int) ([]model.OrderItem, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.OrderItem{}).Count(&total).Error; err != nil {
		return []model.OrderItem{}, 0, err
	}

	var items []model.OrderItem
	offset := (page - 1) * pageSize
	err := r.db.WithContext(ctx).Order("id asc").Offset(offset).Limit(pageSize).Find(&items).Error
	if err != nil {
		return []model.OrderItem{}, 0, err
	}
	return items, total, nil
}

func (r *OrderItemGormRepository) FindByID(ctx context.Context, id int64) (model.OrderItem, error) {
	var item model.OrderItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.OrderItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.OrderItem{}, err
	}
	return item, nil
}

func (r *OrderItemGormRepository) Update(ctx context.Context, item model.OrderItem) error {
	res := r.db.WithContext(ctx).Model(&model.OrderItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
