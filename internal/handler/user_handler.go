package handler

import (
	"net/http"

	"github.com/dhiraj-gede/qkart-backend/internal/config"
	"github.com/dhiraj-gede/qkart-backend/internal/middleware"
	"github.com/dhiraj-gede/qkart-backend/internal/repository"
	"github.com/dhiraj-gede/qkart-backend/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /v1/users のHTTP（本人のプロフィールと配送先住所）
type UserHandler struct {
	uc *usecase.UserUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type SetAddressRequest struct {
	Address string `json:"address"`
}

type SetAddressResponse struct {
	Address string `json:"address"`
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, userRepo repository.UserRepository) {
	g := e.Group("/v1/users")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.LoadCurrentUser(userRepo))

	g.GET("/me", h.me)
	g.PUT("/me/address", h.setAddress)
}

func (h *UserHandler) me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) setAddress(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req SetAddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	address, err := h.uc.SetAddress(c.Request().Context(), *user, req.Address)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SetAddressResponse{Address: address})
}
