package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 住所未設定のプレースホルダ（新規ユーザーはこの値で作る）
const AddressNotSet = "ADDRESS_NOT_SET"

// 配送先住所の最低文字数
const MinAddressLength = 20

// 新規ユーザーの初期ウォレット残高
var DefaultWalletMoney = decimal.NewFromInt(500)

type User struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Email        string          `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string          `gorm:"column:password_hash;not null" json:"-"`
	WalletMoney  decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"wallet_money"`
	Address      string          `gorm:"type:varchar(255);not null;default:'ADDRESS_NOT_SET'" json:"address"`
	CreatedAt    time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// checkoutの前提条件。defaultのままなら住所未設定扱い。
func (u *User) HasSetNonDefaultAddress() bool {
	return u.Address != AddressNotSet
}
