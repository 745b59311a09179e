package usecase

import (
	"context"
	"errors"

	"github.com/dhiraj-gede/qkart-backend/internal/domain/model"
	repo "github.com/dhiraj-gede/qkart-backend/internal/repository"
)

// ProductUsecase はカタログ参照（読み取り専用、副作用なし）。
type ProductUsecase struct {
	productRepo repo.ProductRepository
}

func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// GetProductByID は商品を1件取得。
// 「無い」は正常系の結果なので、HTTP向けにNotFoundへ変換するだけ。
func (u *ProductUsecase) GetProductByID(ctx context.Context, id int64) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewAppError(KindNotFound, "Product not found")
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// GetProducts はカタログ全件を格納順で返す。
func (u *ProductUsecase) GetProducts(ctx context.Context) ([]model.Product, error) {
	return u.productRepo.FindAll(ctx)
}
