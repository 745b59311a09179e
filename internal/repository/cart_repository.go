package repository

import (
	"context"
	"errors"

	"github.com/dhiraj-gede/qkart-backend/internal/domain/model"
)

// 保存時にversionが進んでいた（lost update検知）
var ErrVersionConflict = errors.New("cart version conflict")

// カートの永続化（find / create / save）だけを約束。
type CartRepository interface {
	// emailで1件取得。無ければErrNotFound。
	FindByEmail(ctx context.Context, email string) (model.Cart, error)
	// 新規作成。Versionは0で始まる。
	Create(ctx context.Context, cart model.Cart) (model.Cart, error)
	// read-modify-writeの書き戻し。
	// DBのversionと一致しなければErrVersionConflict。
	Save(ctx context.Context, cart model.Cart) (model.Cart, error)
}
