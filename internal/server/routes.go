package server

import (
	"msistore/internal/config"
	"msistore/internal/handler"

	"github.com/labstack/echo/v4"
)

// Handlersはルート登録に必要なhandler一式
type Handlers struct {
	User       *handler.UserHandler
	UserInfo   *handler.UserInfoHandler
	Product    *handler.ProductHandler
	Category   *handler.CategoryHandler
	Image      *handler.ImageHandler
	Like       *handler.LikeHandler
	Order      *handler.OrderHandler
	OrderAdmin *handler.OrderAdminHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.User.RegisterRoutes(e, cfg)
	h.UserInfo.RegisterRoutes(e, cfg)
	h.Product.RegisterRoutes(e, cfg)
	h.Category.RegisterRoutes(e, cfg)
	h.Image.RegisterRoutes(e, cfg)
	h.Like.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)
	h.OrderAdmin.RegisterRoutes(e, cfg)
}
