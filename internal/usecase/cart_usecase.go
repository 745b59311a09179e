package usecase

import (
	"context"
	"errors"

	"github.com/dhiraj-gede/qkart-backend/internal/domain/model"
	repo "github.com/dhiraj-gede/qkart-backend/internal/repository"
)

// 利用者向けの固定文言。検知した時点で即returnする。
const (
	MsgNoCart           = "User does not have a cart"
	MsgNoCartForUpdate  = "User does not have a cart. Use POST to create cart and add a product"
	MsgProductNotInDB   = "Product doesn't exist in database"
	MsgProductInCart    = "Product already in cart. Use the cart sidebar to update or remove product from cart"
	MsgProductNotInCart = "Product not in cart"
	MsgEmptyCart        = "User has not added any products"
	MsgNoAddress        = "User has not set address"
	MsgNoBalance        = "User does not have sufficient balance"
	MsgCartConflict     = "Cart was modified concurrently. Retry the request"
	MsgInternal         = "internal error"
)

// CartUsecase はカートのライフサイクル（作成・変更・checkout）を持つ。
// カートは1ユーザー（email）1つで、初回追加時に作る。
type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
	tx          repo.TransactionManager
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	productRepo repo.ProductRepository,
	tx repo.TransactionManager,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		tx:          tx,
	}
}

// GetCartByUser はユーザーのカートを取得（読み取りのみ）。
func (u *CartUsecase) GetCartByUser(ctx context.Context, user model.User) (model.Cart, error) {
	cart, err := u.cartRepo.FindByEmail(ctx, user.Email)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Cart{}, NewAppError(KindNotFound, MsgNoCart)
	}
	if err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

// AddProductToCart は商品をカートに追加する。
// カートが無ければ明細1件で新規作成。同一商品の二重追加はConflict。
func (u *CartUsecase) AddProductToCart(ctx context.Context, user model.User, productID int64, quantity int64) (model.Cart, error) {
	if quantity < 1 {
		return model.Cart{}, NewAppError(KindInvalidRequest, "invalid quantity")
	}

	// 商品の存在チェック（スナップショットをここで取る）
	product, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Cart{}, NewAppError(KindInvalidRequest, MsgProductNotInDB)
	}
	if err != nil {
		return model.Cart{}, err
	}

	cart, err := u.cartRepo.FindByEmail(ctx, user.Email)
	if errors.Is(err, repo.ErrNotFound) {
		// 初回追加。明細1件のカートを作る。
		created, createErr := u.cartRepo.Create(ctx, model.Cart{
			Email: user.Email,
			Items: []model.CartItem{{Product: product, Quantity: quantity}},
		})
		if createErr != nil {
			return model.Cart{}, NewAppError(KindInternal, MsgInternal)
		}
		return created, nil
	}
	if err != nil {
		return model.Cart{}, err
	}

	// 商品IDで同一判定（参照比較はしない）
	if cart.IndexOfProduct(productID) >= 0 {
		return model.Cart{}, NewAppError(KindConflict, MsgProductInCart)
	}

	cart.Items = append(cart.Items, model.CartItem{Product: product, Quantity: quantity})
	return u.save(ctx, cart)
}

// UpdateProductInCart はカート内商品の数量を上書きする。
func (u *CartUsecase) UpdateProductInCart(ctx context.Context, user model.User, productID int64, quantity int64) (model.Cart, error) {
	if quantity < 1 {
		return model.Cart{}, NewAppError(KindInvalidRequest, "invalid quantity")
	}

	cart, err := u.cartRepo.FindByEmail(ctx, user.Email)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Cart{}, NewAppError(KindInvalidRequest, MsgNoCartForUpdate)
	}
	if err != nil {
		return model.Cart{}, err
	}

	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Cart{}, NewAppError(KindInvalidRequest, MsgProductNotInDB)
		}
		return model.Cart{}, err
	}

	idx := cart.IndexOfProduct(productID)
	if idx < 0 {
		return model.Cart{}, NewAppError(KindInvalidRequest, MsgProductNotInCart)
	}

	// 同一商品の明細は最大1つなので、最初の一致をその場で書き換える
	cart.Items[idx].Quantity = quantity
	return u.save(ctx, cart)
}

// DeleteProductFromCart はカートから商品を1明細だけ取り除く。
func (u *CartUsecase) DeleteProductFromCart(ctx context.Context, user model.User, productID int64) error {
	cart, err := u.cartRepo.FindByEmail(ctx, user.Email)
	if errors.Is(err, repo.ErrNotFound) {
		return NewAppError(KindInvalidRequest, MsgNoCart)
	}
	if err != nil {
		return err
	}

	idx := cart.IndexOfProduct(productID)
	if idx < 0 {
		return NewAppError(KindInvalidRequest, MsgProductNotInCart)
	}

	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	_, err = u.save(ctx, cart)
	return err
}

// Checkout はカートの中身をウォレット減算に変えて、カートを空にする。
// 前提チェックの順番は固定:
// カート無し → 空カート → 住所未設定 → 残高0 → 合計超過。
func (u *CartUsecase) Checkout(ctx context.Context, user model.User) error {
	cart, err := u.cartRepo.FindByEmail(ctx, user.Email)
	if errors.Is(err, repo.ErrNotFound) {
		return NewAppError(KindNotFound, MsgNoCart)
	}
	if err != nil {
		return err
	}

	if len(cart.Items) == 0 {
		return NewAppError(KindInvalidRequest, MsgEmptyCart)
	}

	if !user.HasSetNonDefaultAddress() {
		return NewAppError(KindInvalidRequest, MsgNoAddress)
	}

	// 残高0は合計に関係なく即不可
	if user.WalletMoney.IsZero() {
		return NewAppError(KindInvalidRequest, MsgNoBalance)
	}

	cartValue := cart.TotalValue()
	if user.WalletMoney.LessThan(cartValue) {
		return NewAppError(KindInvalidRequest, MsgNoBalance)
	}

	// 減算とクリアは1トランザクション。user保存を先に発行する。
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user.WalletMoney = user.WalletMoney.Sub(cartValue)
		if err := r.Users().Update(ctx, &user); err != nil {
			return err
		}

		cart.Items = []model.CartItem{}
		if _, err := r.Carts().Save(ctx, cart); err != nil {
			if errors.Is(err, repo.ErrVersionConflict) {
				return NewAppError(KindConflict, MsgCartConflict)
			}
			return err
		}
		return nil
	})
}

// 書き戻し共通処理。version不一致はConflictにする。
func (u *CartUsecase) save(ctx context.Context, cart model.Cart) (model.Cart, error) {
	saved, err := u.cartRepo.Save(ctx, cart)
	if errors.Is(err, repo.ErrVersionConflict) {
		return model.Cart{}, NewAppError(KindConflict, MsgCartConflict)
	}
	if err != nil {
		return model.Cart{}, err
	}
	return saved, nil
}
