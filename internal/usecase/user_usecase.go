package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/dhiraj-gede/qkart-backend/internal/domain/model"
	repo "github.com/dhiraj-gede/qkart-backend/internal/repository"
)

// UserUsecase はプロフィール参照と配送先住所の設定。
// ウォレット減算はCartUsecase.Checkoutの責務なのでここには無い。
type UserUsecase struct {
	users repo.UserRepository
}

func NewUserUsecase(users repo.UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

func (u *UserUsecase) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrUserNotFound) {
		return nil, NewAppError(KindNotFound, "User not found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SetAddress は配送先住所を設定する。
// checkoutが見る「住所を設定済みか」の実体はこの値。
func (u *UserUsecase) SetAddress(ctx context.Context, user model.User, address string) (string, error) {
	address = strings.TrimSpace(address)

	if len(address) < model.MinAddressLength {
		return "", NewAppError(KindInvalidRequest, "Address must be at least 20 characters")
	}

	user.Address = address
	if err := u.users.Update(ctx, &user); err != nil {
		return "", err
	}

	return address, nil
}
