package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dhiraj-gede/qkart-backend/internal/domain/model"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// リフレッシュトークンの保存・取得・更新・削除
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *model.RefreshToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error)
	MarkUsed(ctx context.Context, tokenID string) error
	DeleteAllByUserID(ctx context.Context, userID int64) error
	DeleteByID(ctx context.Context, tokenID string) error
	// 期限切れを掃除して削除件数を返す
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
