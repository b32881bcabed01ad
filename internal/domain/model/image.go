package model

// 商品画像（URLのみ保存、アップロードは外部）
type Image struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	URL       string `gorm:"type:varchar(500);not null" json:"url"`
	ProductID int64  `gorm:"not null;index" json:"product"`

	//一覧で使うプレビュー画像か
	Preview bool `gorm:"not null;default:false" json:"preview"`
}
