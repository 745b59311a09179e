package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// 1ユーザー（email）につきカートは1つ
// 明細はJSONBの1ドキュメントとして持つ。
// Versionは楽観ロック用（保存時に一致チェック）。
type Cart struct {
	ID        int64                         `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string                        `gorm:"uniqueIndex;not null" json:"email"`
	Items     datatypes.JSONSlice[CartItem] `gorm:"type:jsonb;not null" json:"cart_items"`
	Version   int64                         `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time                     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time                     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// productIDの明細の位置。無ければ-1。
func (c *Cart) IndexOfProduct(productID int64) int {
	for i, it := range c.Items {
		if it.Product.ID == productID {
			return i
		}
	}
	return -1
}

// 明細合計（cost × quantity の総和）
// スナップショットのcostを使う。カタログは再参照しない。
func (c *Cart) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Product.Cost.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}
