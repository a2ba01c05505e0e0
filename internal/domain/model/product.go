package model

import "time"

// 商品。category はカテゴリ名を文字列で持つ（移行元のスキーマどおり）。
type Product struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Price        int64     `gorm:"not null" json:"price"`
	Stock        int64     `gorm:"not null" json:"stock"`
	Category     string    `gorm:"type:varchar(255);not null;index" json:"category"`
	ImageURL     string    `gorm:"type:text" json:"image_url"`
	IsNewArrival bool      `gorm:"not null;default:false" json:"is_new_arrival"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 在庫切れ判定（表示と購入可否の両方で使う）
func (p Product) IsOutOfStock() bool {
	return p.Stock <= 0
}
