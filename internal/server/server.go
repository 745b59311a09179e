package server

import (
	"github.com/dhiraj-gede/qkart-backend/internal/config"
	"github.com/dhiraj-gede/qkart-backend/internal/handler"
	"github.com/dhiraj-gede/qkart-backend/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はechoを組み立てて返す。起動はmainが行う。
func New(
	cfg config.Config,
	userRepo repository.UserRepository,
	authH *handler.AuthHandler,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	userH *handler.UserHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	RegisterRoutes(e, cfg, userRepo, authH, productH, cartH, userH)

	return e
}
