package handler

import (
	"net/http"
	"strconv"

	"github.com/dhiraj-gede/qkart-backend/internal/config"
	"github.com/dhiraj-gede/qkart-backend/internal/middleware"
	"github.com/dhiraj-gede/qkart-backend/internal/repository"
	"github.com/dhiraj-gede/qkart-backend/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /v1/cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type UpdateCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// /v1/cart 配下を登録。全部認証必須。
func (h *CartHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/v1/cart")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.LoadCurrentUser(userRepo))

	g.GET("", h.getCart)
	g.POST("", h.addProduct)
	g.PUT("", h.updateProduct)
	g.DELETE("/:productId", h.deleteProduct)
	g.PUT("/checkout", h.checkout)
}

func (h *CartHandler) getCart(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	cart, err := h.uc.GetCartByUser(c.Request().Context(), *user)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) addProduct(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	cart, err := h.uc.AddProductToCart(c.Request().Context(), *user, req.ProductID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, cart)
}

func (h *CartHandler) updateProduct(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	cart, err := h.uc.UpdateProductInCart(c.Request().Context(), *user, req.ProductID, req.Quantity)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) deleteProduct(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product id"})
	}

	if err := h.uc.DeleteProductFromCart(c.Request().Context(), *user, productID); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) checkout(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	if err := h.uc.Checkout(c.Request().Context(), *user); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
