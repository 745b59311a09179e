package repository

import (
	"context"
	"errors"

	"github.com/dhiraj-gede/qkart-backend/internal/domain/model"
	repo "github.com/dhiraj-gede/qkart-backend/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// IDで商品を1件取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 全商品を格納順で取得
func (r *ProductGormRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	var items []model.Product

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.Product{}, err
	}

	return items, nil
}
