package model

import "time"

type Order struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	//外部公開用の注文番号。作成後は変更しない
	UUID string `gorm:"type:uuid;not null;uniqueIndex" json:"uuid"`

	//ユーザー削除時はNULLにして注文は残す
	UserID *int64 `gorm:"index" json:"user_id"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
