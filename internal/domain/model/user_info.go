package model

// 配送先・連絡先プロフィール
// UserIDが主キー（Userと1:1）
type UserInfo struct {
	UserID      int64  `gorm:"primaryKey" json:"user_id"`
	Country     string `gorm:"type:varchar(50);not null" json:"country"`
	City        string `gorm:"type:varchar(50);not null" json:"city"`
	Street      string `gorm:"type:varchar(50);not null" json:"street"`
	HomeNumber  string `gorm:"type:varchar(50);not null" json:"home_number"`
	PhoneNumber string `gorm:"type:varchar(10);not null" json:"phone_number"`
}
