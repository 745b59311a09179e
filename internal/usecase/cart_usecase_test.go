package usecase_test

import (
	"context"
	"testing"

	"github.com/dhiraj-gede/qkart-backend/internal/domain/model"
	repo "github.com/dhiraj-gede/qkart-backend/internal/repository"
	"github.com/dhiraj-gede/qkart-backend/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) FindByEmail(ctx context.Context, email string) (model.Cart, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) Create(ctx context.Context, cart model.Cart) (model.Cart, error) {
	args := m.Called(ctx, cart)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) Save(ctx context.Context, cart model.Cart) (model.Cart, error) {
	args := m.Called(ctx, cart)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindAll(ctx context.Context) ([]model.Product, error) {
	panic("not used in CartUsecase tests")
}

type CartUserRepoMock struct{ mock.Mock }

func (m *CartUserRepoMock) Create(ctx context.Context, user *model.User) error {
	panic("not used in CartUsecase tests")
}

func (m *CartUserRepoMock) FindByID(ctx context.Context, id int64) (*model.User, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartUserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartUserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Txの中身をそのまま同じmockへ流す（commit/rollbackは対象外）
type txReposStub struct {
	users repo.UserRepository
	carts repo.CartRepository
}

func (s *txReposStub) Users() repo.UserRepository { return s.users }
func (s *txReposStub) Carts() repo.CartRepository { return s.carts }

type txManagerStub struct {
	repos repo.TxRepos
}

func (s *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(s.repos)
}

// =====================
// Helpers
// =====================

func assertAppError(t *testing.T, err error, wantKind usecase.ErrKind, wantMsg string) {
	t.Helper()
	if !assert.Error(t, err) {
		return
	}
	ae, ok := usecase.AsAppError(err)
	if assert.True(t, ok, "err=%v want *AppError", err) {
		assert.Equal(t, wantKind, ae.Kind)
		assert.Equal(t, wantMsg, ae.Message)
	}
}

func newCartUC(cartRepo *CartRepoMock, productRepo *ProductRepoMock, userRepo *CartUserRepoMock) *usecase.CartUsecase {
	tx := &txManagerStub{repos: &txReposStub{users: userRepo, carts: cartRepo}}
	return usecase.NewCartUsecase(cartRepo, productRepo, tx)
}

func cost(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func testUser(wallet int64, address string) model.User {
	return model.User{
		ID:          1,
		Name:        "crio-user",
		Email:       "criouser@gmail.com",
		WalletMoney: decimal.NewFromInt(wallet),
		Address:     address,
	}
}

// =====================
// GetCartByUser
// =====================

func TestCartUsecase_GetCartByUser_NotFound(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, model.AddressNotSet)

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{}, repo.ErrNotFound)

	uc := newCartUC(cartRepo, new(ProductRepoMock), new(CartUserRepoMock))

	_, err := uc.GetCartByUser(ctx, user)
	assertAppError(t, err, usecase.KindNotFound, usecase.MsgNoCart)
	cartRepo.AssertExpectations(t)
}

func TestCartUsecase_GetCartByUser_Success(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, model.AddressNotSet)

	cart := model.Cart{
		ID:    10,
		Email: user.Email,
		Items: []model.CartItem{
			{Product: model.Product{ID: 7, Name: "Watch", Cost: cost(60)}, Quantity: 2},
		},
	}

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(cart, nil)

	uc := newCartUC(cartRepo, new(ProductRepoMock), new(CartUserRepoMock))

	got, err := uc.GetCartByUser(ctx, user)
	assert.NoError(t, err)
	assert.Equal(t, cart.ID, got.ID)
	assert.Len(t, got.Items, 1)
	cartRepo.AssertExpectations(t)
}

// =====================
// AddProductToCart
// =====================

func TestCartUsecase_AddProductToCart_InvalidQuantity(t *testing.T) {
	uc := newCartUC(new(CartRepoMock), new(ProductRepoMock), new(CartUserRepoMock))

	_, err := uc.AddProductToCart(context.Background(), testUser(500, model.AddressNotSet), 7, 0)
	ae, ok := usecase.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, usecase.KindInvalidRequest, ae.Kind)
}

func TestCartUsecase_AddProductToCart_ProductNotInDB(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, model.AddressNotSet)

	productRepo := new(ProductRepoMock)
	productRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	uc := newCartUC(new(CartRepoMock), productRepo, new(CartUserRepoMock))

	_, err := uc.AddProductToCart(ctx, user, 999, 1)
	assertAppError(t, err, usecase.KindInvalidRequest, usecase.MsgProductNotInDB)
	productRepo.AssertExpectations(t)
}

func TestCartUsecase_AddProductToCart_CreatesCartOnFirstAdd(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, model.AddressNotSet)
	product := model.Product{ID: 7, Name: "Watch", Cost: cost(60)}

	productRepo := new(ProductRepoMock)
	productRepo.On("FindByID", mock.Anything, int64(7)).Return(product, nil)

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{}, repo.ErrNotFound)
	cartRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.Cart) bool {
		return c.Email == user.Email &&
			len(c.Items) == 1 &&
			c.Items[0].Product.ID == int64(7) &&
			c.Items[0].Quantity == int64(2)
	})).Return(model.Cart{
		ID:    1,
		Email: user.Email,
		Items: []model.CartItem{{Product: product, Quantity: 2}},
	}, nil)

	uc := newCartUC(cartRepo, productRepo, new(CartUserRepoMock))

	got, err := uc.AddProductToCart(ctx, user, 7, 2)
	assert.NoError(t, err)
	assert.Len(t, got.Items, 1)
	cartRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestCartUsecase_AddProductToCart_CreateFails_Internal(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, model.AddressNotSet)
	product := model.Product{ID: 7, Cost: cost(60)}

	productRepo := new(ProductRepoMock)
	productRepo.On("FindByID", mock.Anything, int64(7)).Return(product, nil)

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{}, repo.ErrNotFound)
	cartRepo.On("Create", mock.Anything, mock.Anything).Return(model.Cart{}, assert.AnError)

	uc := newCartUC(cartRepo, productRepo, new(CartUserRepoMock))

	_, err := uc.AddProductToCart(ctx, user, 7, 1)
	assertAppError(t, err, usecase.KindInternal, usecase.MsgInternal)
}

func TestCartUsecase_AddProductToCart_DuplicateProduct_Conflict(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, model.AddressNotSet)
	product := model.Product{ID: 7, Cost: cost(60)}

	productRepo := new(ProductRepoMock)
	productRepo.On("FindByID", mock.Anything, int64(7)).Return(product, nil)

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{
		ID:    1,
		Email: user.Email,
		Items: []model.CartItem{{Product: product, Quantity: 3}},
	}, nil)

	uc := newCartUC(cartRepo, productRepo, new(CartUserRepoMock))

	_, err := uc.AddProductToCart(ctx, user, 7, 1)
	assertAppError(t, err, usecase.KindConflict, usecase.MsgProductInCart)
	//二重追加ではSaveまで行かない
	cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCartUsecase_AddProductToCart_AppendsKeepingExisting(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, model.AddressNotSet)

	existing := model.Product{ID: 1, Name: "Shoes", Cost: cost(50)}
	added := model.Product{ID: 2, Name: "Racquet", Cost: cost(100)}

	productRepo := new(ProductRepoMock)
	productRepo.On("FindByID", mock.Anything, int64(2)).Return(added, nil)

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{
		ID:    1,
		Email: user.Email,
		Items: []model.CartItem{{Product: existing, Quantity: 5}},
	}, nil)
	cartRepo.On("Save", mock.Anything, mock.MatchedBy(func(c model.Cart) bool {
		return len(c.Items) == 2 &&
			c.Items[0].Product.ID == int64(1) && c.Items[0].Quantity == int64(5) &&
			c.Items[1].Product.ID == int64(2) && c.Items[1].Quantity == int64(1)
	})).Return(model.Cart{
		ID:    1,
		Email: user.Email,
		Items: []model.CartItem{
			{Product: existing, Quantity: 5},
			{Product: added, Quantity: 1},
		},
	}, nil)

	uc := newCartUC(cartRepo, productRepo, new(CartUserRepoMock))

	got, err := uc.AddProductToCart(ctx, user, 2, 1)
	assert.NoError(t, err)
	assert.Len(t, got.Items, 2)
	cartRepo.AssertExpectations(t)
}

// =====================
// UpdateProductInCart
// =====================

func TestCartUsecase_UpdateProductInCart_NoCart(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, model.AddressNotSet)

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{}, repo.ErrNotFound)

	uc := newCartUC(cartRepo, new(ProductRepoMock), new(CartUserRepoMock))

	_, err := uc.UpdateProductInCart(ctx, user, 7, 2)
	assertAppError(t, err, usecase.KindInvalidRequest, usecase.MsgNoCartForUpdate)
}

func TestCartUsecase_UpdateProductInCart_ProductNotInDB(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, model.AddressNotSet)

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{ID: 1, Email: user.Email}, nil)

	productRepo := new(ProductRepoMock)
	productRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	uc := newCartUC(cartRepo, productRepo, new(CartUserRepoMock))

	_, err := uc.UpdateProductInCart(ctx, user, 999, 2)
	assertAppError(t, err, usecase.KindInvalidRequest, usecase.MsgProductNotInDB)
}

func TestCartUsecase_UpdateProductInCart_ProductNotInCart(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, model.AddressNotSet)
	product := model.Product{ID: 7, Cost: cost(60)}

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{
		ID:    1,
		Email: user.Email,
		Items: []model.CartItem{{Product: model.Product{ID: 1, Cost: cost(50)}, Quantity: 1}},
	}, nil)

	productRepo := new(ProductRepoMock)
	productRepo.On("FindByID", mock.Anything, int64(7)).Return(product, nil)

	uc := newCartUC(cartRepo, productRepo, new(CartUserRepoMock))

	_, err := uc.UpdateProductInCart(ctx, user, 7, 2)
	assertAppError(t, err, usecase.KindInvalidRequest, usecase.MsgProductNotInCart)
}

func TestCartUsecase_UpdateProductInCart_OnlyTargetQuantityChanges(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, model.AddressNotSet)

	shoes := model.Product{ID: 1, Name: "Shoes", Cost: cost(50)}
	watch := model.Product{ID: 7, Name: "Watch", Cost: cost(60)}

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{
		ID:    1,
		Email: user.Email,
		Items: []model.CartItem{
			{Product: shoes, Quantity: 5},
			{Product: watch, Quantity: 1},
		},
	}, nil)

	productRepo := new(ProductRepoMock)
	productRepo.On("FindByID", mock.Anything, int64(7)).Return(watch, nil)

	cartRepo.On("Save", mock.Anything, mock.MatchedBy(func(c model.Cart) bool {
		return len(c.Items) == 2 &&
			c.Items[0].Product.ID == int64(1) && c.Items[0].Quantity == int64(5) &&
			c.Items[1].Product.ID == int64(7) && c.Items[1].Quantity == int64(9)
	})).Return(model.Cart{ID: 1, Email: user.Email}, nil)

	uc := newCartUC(cartRepo, productRepo, new(CartUserRepoMock))

	_, err := uc.UpdateProductInCart(ctx, user, 7, 9)
	assert.NoError(t, err)
	cartRepo.AssertExpectations(t)
}

// =====================
// DeleteProductFromCart
// =====================

func TestCartUsecase_DeleteProductFromCart_NoCart(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, model.AddressNotSet)

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{}, repo.ErrNotFound)

	uc := newCartUC(cartRepo, new(ProductRepoMock), new(CartUserRepoMock))

	err := uc.DeleteProductFromCart(ctx, user, 7)
	assertAppError(t, err, usecase.KindInvalidRequest, usecase.MsgNoCart)
}

func TestCartUsecase_DeleteProductFromCart_ProductNotInCart(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, model.AddressNotSet)

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{
		ID:    1,
		Email: user.Email,
		Items: []model.CartItem{{Product: model.Product{ID: 1, Cost: cost(50)}, Quantity: 1}},
	}, nil)

	uc := newCartUC(cartRepo, new(ProductRepoMock), new(CartUserRepoMock))

	err := uc.DeleteProductFromCart(ctx, user, 7)
	assertAppError(t, err, usecase.KindInvalidRequest, usecase.MsgProductNotInCart)
}

func TestCartUsecase_DeleteProductFromCart_RemovesExactlyOne(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, model.AddressNotSet)

	shoes := model.Product{ID: 1, Name: "Shoes", Cost: cost(50)}
	watch := model.Product{ID: 7, Name: "Watch", Cost: cost(60)}
	sofa := model.Product{ID: 9, Name: "Sofa", Cost: cost(200)}

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{
		ID:    1,
		Email: user.Email,
		Items: []model.CartItem{
			{Product: shoes, Quantity: 5},
			{Product: watch, Quantity: 1},
			{Product: sofa, Quantity: 2},
		},
	}, nil)
	cartRepo.On("Save", mock.Anything, mock.MatchedBy(func(c model.Cart) bool {
		return len(c.Items) == 2 &&
			c.Items[0].Product.ID == int64(1) &&
			c.Items[1].Product.ID == int64(9)
	})).Return(model.Cart{ID: 1, Email: user.Email}, nil)

	uc := newCartUC(cartRepo, new(ProductRepoMock), new(CartUserRepoMock))

	err := uc.DeleteProductFromCart(ctx, user, 7)
	assert.NoError(t, err)
	cartRepo.AssertExpectations(t)
}

// =====================
// Checkout
// =====================

func TestCartUsecase_Checkout_NoCart(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, "123 Main Street, Springfield")

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{}, repo.ErrNotFound)

	uc := newCartUC(cartRepo, new(ProductRepoMock), new(CartUserRepoMock))

	err := uc.Checkout(ctx, user)
	assertAppError(t, err, usecase.KindNotFound, usecase.MsgNoCart)
}

func TestCartUsecase_Checkout_EmptyCart(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, "123 Main Street, Springfield")

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{
		ID:    1,
		Email: user.Email,
		Items: []model.CartItem{},
	}, nil)

	uc := newCartUC(cartRepo, new(ProductRepoMock), new(CartUserRepoMock))

	err := uc.Checkout(ctx, user)
	assertAppError(t, err, usecase.KindInvalidRequest, usecase.MsgEmptyCart)
}

func TestCartUsecase_Checkout_AddressNotSet(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, model.AddressNotSet)

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{
		ID:    1,
		Email: user.Email,
		Items: []model.CartItem{{Product: model.Product{ID: 7, Cost: cost(60)}, Quantity: 1}},
	}, nil)

	uc := newCartUC(cartRepo, new(ProductRepoMock), new(CartUserRepoMock))

	err := uc.Checkout(ctx, user)
	assertAppError(t, err, usecase.KindInvalidRequest, usecase.MsgNoAddress)
}

func TestCartUsecase_Checkout_ZeroBalance(t *testing.T) {
	ctx := context.Background()
	//残高0は合計額に関係なく不可（0円カートでも）
	user := testUser(0, "123 Main Street, Springfield")

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{
		ID:    1,
		Email: user.Email,
		Items: []model.CartItem{{Product: model.Product{ID: 7, Cost: cost(0)}, Quantity: 1}},
	}, nil)

	uc := newCartUC(cartRepo, new(ProductRepoMock), new(CartUserRepoMock))

	err := uc.Checkout(ctx, user)
	assertAppError(t, err, usecase.KindInvalidRequest, usecase.MsgNoBalance)
}

func TestCartUsecase_Checkout_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	//合計250に対して249
	user := testUser(249, "123 Main Street, Springfield")

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{
		ID:    1,
		Email: user.Email,
		Items: []model.CartItem{
			{Product: model.Product{ID: 1, Cost: cost(100)}, Quantity: 2},
			{Product: model.Product{ID: 2, Cost: cost(50)}, Quantity: 1},
		},
	}, nil)

	uc := newCartUC(cartRepo, new(ProductRepoMock), new(CartUserRepoMock))

	err := uc.Checkout(ctx, user)
	assertAppError(t, err, usecase.KindInvalidRequest, usecase.MsgNoBalance)
}

func TestCartUsecase_Checkout_ExactBalance(t *testing.T) {
	ctx := context.Background()
	user := testUser(250, "123 Main Street, Springfield")

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{
		ID:    1,
		Email: user.Email,
		Items: []model.CartItem{
			{Product: model.Product{ID: 1, Cost: cost(100)}, Quantity: 2},
			{Product: model.Product{ID: 2, Cost: cost(50)}, Quantity: 1},
		},
	}, nil)

	userRepo := new(CartUserRepoMock)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.WalletMoney.IsZero()
	})).Return(nil)

	cartRepo.On("Save", mock.Anything, mock.MatchedBy(func(c model.Cart) bool {
		return len(c.Items) == 0
	})).Return(model.Cart{ID: 1, Email: user.Email}, nil)

	uc := newCartUC(cartRepo, new(ProductRepoMock), userRepo)

	err := uc.Checkout(ctx, user)
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
}

func TestCartUsecase_Checkout_DebitsWalletAndClearsCart(t *testing.T) {
	ctx := context.Background()
	user := testUser(300, "123 Main Street, Springfield")

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{
		ID:      1,
		Email:   user.Email,
		Version: 4,
		Items: []model.CartItem{
			{Product: model.Product{ID: 1, Cost: cost(100)}, Quantity: 2},
			{Product: model.Product{ID: 2, Cost: cost(50)}, Quantity: 1},
		},
	}, nil)

	userRepo := new(CartUserRepoMock)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		//300 - (100*2 + 50*1) = 50
		return u.WalletMoney.Equal(decimal.NewFromInt(50))
	})).Return(nil)

	cartRepo.On("Save", mock.Anything, mock.MatchedBy(func(c model.Cart) bool {
		return len(c.Items) == 0 && c.Version == int64(4)
	})).Return(model.Cart{ID: 1, Email: user.Email, Version: 5}, nil)

	uc := newCartUC(cartRepo, new(ProductRepoMock), userRepo)

	err := uc.Checkout(ctx, user)
	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
}

func TestCartUsecase_Checkout_VersionConflict(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, "123 Main Street, Springfield")

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{
		ID:    1,
		Email: user.Email,
		Items: []model.CartItem{{Product: model.Product{ID: 7, Cost: cost(60)}, Quantity: 1}},
	}, nil)

	userRepo := new(CartUserRepoMock)
	userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	cartRepo.On("Save", mock.Anything, mock.Anything).Return(model.Cart{}, repo.ErrVersionConflict)

	uc := newCartUC(cartRepo, new(ProductRepoMock), userRepo)

	err := uc.Checkout(ctx, user)
	assertAppError(t, err, usecase.KindConflict, usecase.MsgCartConflict)
}

func TestCartUsecase_Save_VersionConflict(t *testing.T) {
	ctx := context.Background()
	user := testUser(500, model.AddressNotSet)
	product := model.Product{ID: 2, Cost: cost(100)}

	productRepo := new(ProductRepoMock)
	productRepo.On("FindByID", mock.Anything, int64(2)).Return(product, nil)

	cartRepo := new(CartRepoMock)
	cartRepo.On("FindByEmail", mock.Anything, user.Email).Return(model.Cart{
		ID:    1,
		Email: user.Email,
		Items: []model.CartItem{{Product: model.Product{ID: 1, Cost: cost(50)}, Quantity: 1}},
	}, nil)
	cartRepo.On("Save", mock.Anything, mock.Anything).Return(model.Cart{}, repo.ErrVersionConflict)

	uc := newCartUC(cartRepo, productRepo, new(CartUserRepoMock))

	_, err := uc.AddProductToCart(ctx, user, 2, 1)
	assertAppError(t, err, usecase.KindConflict, usecase.MsgCartConflict)
}
