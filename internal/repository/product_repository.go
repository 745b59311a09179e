package repository

import (
	"context"
	"errors"

	"github.com/dhiraj-gede/qkart-backend/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の取得だけを約束（カタログは読み取り専用）。
type ProductRepository interface {
	// IDで1件取得。無ければErrNotFound。
	FindByID(ctx context.Context, id int64) (model.Product, error)
	// 全件を格納順に取得。
	FindAll(ctx context.Context) ([]model.Product, error)
}
