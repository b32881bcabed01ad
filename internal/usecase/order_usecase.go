package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"msistore/internal/domain/model"
	repo "msistore/internal/repository"
)

// 注文番号（UUID）を作る約束
type IDGenerator interface {
	NewID() string
}

type OrderUsecase struct {
	tx    repo.TransactionManager
	idGen IDGenerator
}

func NewOrderUsecase(tx repo.TransactionManager, idGen IDGenerator) *OrderUsecase {
	return &OrderUsecase{tx: tx, idGen: idGen}
}

// カートの1行
type CartLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type OrderStatusInput struct {
	IsPaid         bool   `json:"is_paid"`
	DeliveryMethod string `json:"delivery_method"`
	DeliveryStage  string `json:"delivery_stage"`
	PaymentMethod  string `json:"payment_method"`
}

type PlaceOrderInput struct {
	OrderItems  []CartLine       `json:"order_items"`
	OrderStatus OrderStatusInput `json:"order_status"`
}

type PlaceOrderOutput struct {
	UUID string `json:"uuid"`
}

func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if userID <= 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//ステータスは書き込み前に検証して早期に落とす
	if err := validateOrderStatus(in.OrderStatus); err != nil {
		return PlaceOrderOutput{}, err
	}
	for _, line := range in.OrderItems {
		if line.ProductID <= 0 {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
		}
		if line.Quantity <= 0 {
			return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "quantity must be > 0")
		}
	}

	var out PlaceOrderOutput

	//Order＋明細＋ステータスはまとめて1トランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items := make([]model.OrderItem, 0, len(in.OrderItems))
		for _, line := range in.OrderItems {
			//存在しない商品はFK違反で落とすのではなく404で返す
			if _, err := r.Products().FindByID(ctx, line.ProductID); err != nil {
				if err == repo.ErrNotFound {
					return NewHTTPError(http.StatusNotFound, "product not found")
				}
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			items = append(items, model.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
			})
		}

		order, err := r.Orders().Create(ctx, model.Order{
			UUID:     u.idGen.NewID(),
			UserID:   &userID,
			IsActive: true,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, order.ID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if _, err := r.StatusOrders().Create(ctx, model.StatusOrder{
			OrderID:        order.ID,
			IsPaid:         in.OrderStatus.IsPaid,
			DeliveryMethod: in.OrderStatus.DeliveryMethod,
			DeliveryStage:  in.OrderStatus.DeliveryStage,
			PaymentMethod:  in.OrderStatus.PaymentMethod,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = PlaceOrderOutput{UUID: order.UUID}
		return nil
	})

	if err != nil {
		return PlaceOrderOutput{}, err
	}
	return out, nil
}

func validateOrderStatus(s OrderStatusInput) error {
	if strings.TrimSpace(s.DeliveryMethod) == "" {
		return NewHTTPError(http.StatusBadRequest, "delivery_method required")
	}
	if strings.TrimSpace(s.DeliveryStage) == "" {
		return NewHTTPError(http.StatusBadRequest, "delivery_stage required")
	}
	if strings.TrimSpace(s.PaymentMethod) == "" {
		return NewHTTPError(http.StatusBadRequest, "payment_method required")
	}
	return nil
}

type OrderOutput struct {
	ID        int64     `json:"id"`
	UUID      string    `json:"uuid"`
	UserID    *int64    `json:"user_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderItemOutput struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product"`
	Quantity  int64 `json:"quantity"`
}

type OrderStatusOutput struct {
	IsPaid         bool   `json:"is_paid"`
	DeliveryMethod string `json:"delivery_method"`
	DeliveryStage  string `json:"delivery_stage"`
	PaymentMethod  string `json:"payment_method"`
}

// 注文・明細・ステータスをまとめた読み取り専用ビュー
type ReceiptOutput struct {
	Order      OrderOutput       `json:"order"`
	OrderItems []OrderItemOutput `json:"order_items"`
	Status     OrderStatusOutput `json:"status"`
}

func (u *OrderUsecase) GetReceipt(ctx context.Context, userID int64, role string, orderUUID string) (ReceiptOutput, error) {
	if userID <= 0 {
		return ReceiptOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(orderUUID) == "" {
		return ReceiptOutput{}, NewHTTPError(http.StatusBadRequest, "uuid required")
	}

	var out ReceiptOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByUUID(ctx, orderUUID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//他人の注文は「存在しない扱い」にする（ADMINは全件見られる）
		if role != model.RoleNameAdmin {
			if o.UserID == nil || *o.UserID != userID {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
		}

		items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		st, err := r.StatusOrders().FindByOrderID(ctx, o.ID)
		if err != nil {
			//注文作成時に必ず作られるので、無ければデータ不整合
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outItems := make([]OrderItemOutput, 0, len(items))
		for _, it := range items {
			outItems = append(outItems, OrderItemOutput{
				ID:        it.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
			})
		}

		out = ReceiptOutput{
			Order: OrderOutput{
				ID:        o.ID,
				UUID:      o.UUID,
				UserID:    o.UserID,
				IsActive:  o.IsActive,
				CreatedAt: o.CreatedAt,
			},
			OrderItems: outItems,
			Status: OrderStatusOutput{
				IsPaid:         st.IsPaid,
				DeliveryMethod: st.DeliveryMethod,
				DeliveryStage:  st.DeliveryStage,
				PaymentMethod:  st.PaymentMethod,
			},
		}
		return nil
	})

	if err != nil {
		return ReceiptOutput{}, err
	}
	return out, nil
}
