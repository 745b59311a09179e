package middleware

import (
	"net/http"

	"github.com/dhiraj-gede/qkart-backend/internal/domain/model"
	"github.com/dhiraj-gede/qkart-backend/internal/repository"

	"github.com/labstack/echo/v4"
)

const CtxCurrentUserKey = "current_user" // *model.User

// AuthJWTの後段。DBから最新のユーザーを引いてcontextに積む。
// checkoutが見るwallet残高と住所はDBの現在値でなければいけない。
func LoadCurrentUser(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//AuthJWTが入れたuser_id を取得する
			rawUserID := c.Get(CtxUserIDKey)
			userID, ok := rawUserID.(int64)
			if !ok || userID <= 0 {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//DBから最新のuserを取得する
			user, err := userRepo.FindByID(c.Request().Context(), userID)
			if err != nil || user == nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			c.Set(CtxCurrentUserKey, user)

			return next(c)
		}
	}
}

// handlerが使う取り出しヘルパ
func CurrentUser(c echo.Context) (*model.User, bool) {
	u, ok := c.Get(CtxCurrentUserKey).(*model.User)
	if !ok || u == nil {
		return nil, false
	}
	return u, true
}
