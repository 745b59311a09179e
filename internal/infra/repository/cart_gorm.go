package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dhiraj-gede/qkart-backend/internal/domain/model"
	repo "github.com/dhiraj-gede/qkart-backend/internal/repository"

	"gorm.io/gorm"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// emailでカートを取得
func (r *CartGormRepository) FindByEmail(ctx context.Context, email string) (model.Cart, error) {
	var cart model.Cart

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&cart).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// 新規カートを作成
func (r *CartGormRepository) Create(ctx context.Context, cart model.Cart) (model.Cart, error) {
	now := time.Now()
	cart.Version = 0
	cart.CreatedAt = now
	cart.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// versionが一致した時だけ書き戻す（lost update防止）
func (r *CartGormRepository) Save(ctx context.Context, cart model.Cart) (model.Cart, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Cart{}).
		Where("id = ? AND version = ?", cart.ID, cart.Version).
		Updates(map[string]interface{}{
			"items":      cart.Items,
			"version":    cart.Version + 1,
			"updated_at": time.Now(),
		})

	if res.Error != nil {
		return model.Cart{}, res.Error
	}

	// 0件更新は「カートが消えた」か「versionが進んだ」のどちらか
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&model.Cart{}).
			Where("id = ?", cart.ID).
			Count(&count).Error; err != nil {
			return model.Cart{}, err
		}
		if count == 0 {
			return model.Cart{}, repo.ErrNotFound
		}
		return model.Cart{}, repo.ErrVersionConflict
	}

	cart.Version++
	return cart, nil
}
