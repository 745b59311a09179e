package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カタログの商品。カート側からは読み取り専用。
type Product struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null" json:"name"`
	Category  string          `gorm:"type:varchar(100);not null" json:"category"`
	Cost      decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"cost"`
	Rating    int64           `gorm:"not null;default:0" json:"rating"`
	ImageURL  string          `gorm:"type:text" json:"image_url"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
