package repository

import (
	"context"
	"errors"

	"github.com/dhiraj-gede/qkart-backend/internal/domain/model"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。無ければErrUserNotFound。
	FindByID(ctx context.Context, id int64) (*model.User, error)
	//メールからユーザーを1件取得する。無ければErrUserNotFound。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// ユーザー情報の更新=>ウォレット減算・住所設定など
	Update(ctx context.Context, user *model.User) error
}
