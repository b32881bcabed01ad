package model

import "time"

type Like struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserInfoID int64     `gorm:"not null;index" json:"user_info"`
	ProductID  int64     `gorm:"not null;index" json:"product"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
