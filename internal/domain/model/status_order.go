package model

import "time"

// 注文ごとに1件、注文作成時に作る
type StatusOrder struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID        int64     `gorm:"not null;index" json:"order"`
	IsPaid         bool      `gorm:"not null;default:false" json:"is_paid"`
	DeliveryMethod string    `gorm:"type:varchar(50);not null" json:"delivery_method"`
	DeliveryStage  string    `gorm:"type:varchar(50);not null" json:"delivery_stage"`
	PaymentMethod  string    `gorm:"type:varchar(50);not null" json:"payment_method"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
