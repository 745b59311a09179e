package server

import (
	"net/http"

	"github.com/dhiraj-gede/qkart-backend/internal/config"
	"github.com/dhiraj-gede/qkart-backend/internal/handler"
	"github.com/dhiraj-gede/qkart-backend/internal/repository"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	userRepo repository.UserRepository,
	authH *handler.AuthHandler,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	userH *handler.UserHandler,
) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	authH.RegisterRoutes(e)
	productH.RegisterRoutes(e)
	cartH.RegisterRoutes(e, cfg, userRepo)
	userH.RegisterRoutes(e, cfg, userRepo)
}
