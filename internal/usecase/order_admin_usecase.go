package usecase

import (
	"context"
	"net/http"

	"msistore/internal/domain/model"
	"msistore/internal/pagination"
	repo "msistore/internal/repository"
)

// 注文明細・注文ステータスの汎用CRUD（管理者用ルートから使う）

type OrderItemUsecase struct {
	items  repo.OrderItemRepository
	orders repo.OrderRepository
}

func NewOrderItemUsecase(items repo.OrderItemRepository, orders repo.OrderRepository) *OrderItemUsecase {
	return &OrderItemUsecase{items: items, orders: orders}
}

func (u *OrderItemUsecase) List(ctx context.Context, p pagination.Params) (pagination.Envelope, error) {
	items, total, err := u.items.List(ctx, p.Page, p.PageSize)
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

func (u *OrderItemUsecase) Get(ctx context.Context, id int64) (model.OrderItem, error) {
	if id <= 0 {
		return model.OrderItem{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	item, err := u.items.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.OrderItem{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.OrderItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

func (u *OrderItemUsecase) Update(ctx context.Context, id int64, productID int64, quantity int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if quantity <= 0 {
		return NewHTTPError(http.StatusBadRequest, "quantity must be > 0")
	}

	err := u.items.Update(ctx, model.OrderItem{ID: id, ProductID: productID, Quantity: quantity})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 注文が無いのに明細は作れない
func (u *OrderItemUsecase) Create(ctx context.Context, orderID, productID, quantity int64) (model.OrderItem, error) {
	if orderID <= 0 {
		return model.OrderItem{}, NewHTTPError(http.StatusBadRequest, "invalid order")
	}
	if productID <= 0 {
		return model.OrderItem{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if quantity <= 0 {
		return model.OrderItem{}, NewHTTPError(http.StatusBadRequest, "quantity must be > 0")
	}

	if _, err := u.orders.FindByID(ctx, orderID); err != nil {
		if err == repo.ErrNotFound {
			return model.OrderItem{}, NewHTTPError(http.StatusNotFound, "order not found")
		}
		return model.OrderItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items := []model.OrderItem{{ProductID: productID, Quantity: quantity}}
	if err := u.items.CreateBulk(ctx, orderID, items); err != nil {
		return model.OrderItem{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items[0], nil
}

type StatusOrderUsecase struct {
	statuses repo.StatusOrderRepository
	orders   repo.OrderRepository
}

func NewStatusOrderUsecase(statuses repo.StatusOrderRepository, orders repo.OrderRepository) *StatusOrderUsecase {
	return &StatusOrderUsecase{statuses: statuses, orders: orders}
}

func (u *StatusOrderUsecase) List(ctx context.Context, p pagination.Params) (pagination.Envelope, error) {
	items, total, err := u.statuses.List(ctx, p.Page, p.PageSize)
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

func (u *StatusOrderUsecase) Get(ctx context.Context, id int64) (model.StatusOrder, error) {
	if id <= 0 {
		return model.StatusOrder{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	s, err := u.statuses.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.StatusOrder{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.StatusOrder{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *StatusOrderUsecase) Create(ctx context.Context, orderID int64, in OrderStatusInput) (model.StatusOrder, error) {
	if orderID <= 0 {
		return model.StatusOrder{}, NewHTTPError(http.StatusBadRequest, "invalid order")
	}
	if err := validateOrderStatus(in); err != nil {
		return model.StatusOrder{}, err
	}

	if _, err := u.orders.FindByID(ctx, orderID); err != nil {
		if err == repo.ErrNotFound {
			return model.StatusOrder{}, NewHTTPError(http.StatusNotFound, "order not found")
		}
		return model.StatusOrder{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	s, err := u.statuses.Create(ctx, model.StatusOrder{
		OrderID:        orderID,
		IsPaid:         in.IsPaid,
		DeliveryMethod: in.DeliveryMethod,
		DeliveryStage:  in.DeliveryStage,
		PaymentMethod:  in.PaymentMethod,
	})
	if err != nil {
		return model.StatusOrder{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *StatusOrderUsecase) Update(ctx context.Context, id int64, in OrderStatusInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateOrderStatus(in); err != nil {
		return err
	}

	err := u.statuses.Update(ctx, model.StatusOrder{
		ID:             id,
		IsPaid:         in.IsPaid,
		DeliveryMethod: in.DeliveryMethod,
		DeliveryStage:  in.DeliveryStage,
		PaymentMethod:  in.PaymentMethod,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
