package model

import "time"

type Role struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(20);not null" json:"name"`
}

// シードするロール
const (
	RoleIDUser  int64 = 1
	RoleIDAdmin int64 = 2
)

const (
	RoleNameUser  = "USER"
	RoleNameAdmin = "ADMIN"
)

type User struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string `gorm:"type:varchar(150);not null;uniqueIndex" json:"username"`
	FirstName string `gorm:"type:varchar(150)" json:"first_name"`
	LastName  string `gorm:"type:varchar(150)" json:"last_name"`
	Email     string `gorm:"type:varchar(255)" json:"email"`

	//ハッシュのみ保存（平文は保存しない）
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`

	//アバターのURL（アップロード自体は外部サービス）
	AvatarURL string `gorm:"type:varchar(500)" json:"image"`

	RoleID    int64     `gorm:"not null;default:1;index" json:"role_id"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
