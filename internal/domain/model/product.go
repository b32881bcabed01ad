package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:varchar(200)" json:"description"`

	//スペック表などの構造化データ
	Detail datatypes.JSON `gorm:"type:jsonb;not null" json:"detail"`

	OldPrice decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"old_price"`
	NewPrice decimal.Decimal `gorm:"type:decimal(6,2);not null;index" json:"new_price"`

	CategoryID int64  `gorm:"not null;index" json:"category"`
	BrandID    *int64 `gorm:"index" json:"brand"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
