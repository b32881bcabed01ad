package repository

import (
	"context"
	"time"

	"msistore/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (model.Order, error)
	FindByUUID(ctx context.Context, uuid string) (model.Order, error)
	FindByID(ctx context.Context, id int64) (model.Order, error)

	//支払われないまま残った古い注文を非アクティブにする
	DeactivateStaleUnpaid(ctx context.Context, before time.Time) (int64, error)
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)

	List(ctx context.Context, page, pageSize int) ([]model.OrderItem, int64, error)
	FindByID(ctx context.Context, id int64) (model.OrderItem, error)
	Update(ctx context.Context, item model.OrderItem) error
}

type StatusOrderRepository interface {
	Create(ctx context.Context, s model.StatusOrder) (model.StatusOrder, error)
	FindByOrderID(ctx context.Context, orderID int64) (model.StatusOrder, error)

	List(ctx context.Context, page, pageSize int) ([]model.StatusOrder, int64, error)
	FindByID(ctx context.Context, id int64) (model.StatusOrder, error)
	Update(ctx context.Context, s model.StatusOrder) error
}
