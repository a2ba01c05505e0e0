package server

import (
	"borteh/internal/config"
	"borteh/internal/handler"
	appmw "borteh/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers はルート登録に必要なhandler一式。
type Handlers struct {
	Auth          *handler.AuthHandler
	Catalog       *handler.CatalogHandler
	Cart          *handler.CartHandler
	Favorites     *handler.FavoritesHandler
	Theme         *handler.ThemeHandler
	Notification  *handler.NotificationHandler
	AdminProduct  *handler.AdminProductHandler
	AdminCategory *handler.AdminCategoryHandler
	AdminAudit    *handler.AdminAuditHandler
}

// New はecho本体を組み立てる（テストからも使う）。
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	//公開ルート
	h.Auth.RegisterRoutes(e)
	h.Catalog.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Favorites.RegisterRoutes(e)
	h.Theme.RegisterRoutes(e)
	h.Notification.RegisterRoutes(e)

	//管理ルート（JWT + ADMINロール）
	admin := e.Group("/admin", appmw.AuthJWT(cfg), appmw.AdminRoleGuard())
	h.AdminProduct.RegisterRoutes(admin)
	h.AdminCategory.RegisterRoutes(admin)
	h.AdminAudit.RegisterRoutes(admin)

	return e
}

// Start はサーバーを起動する。
func Start(cfg config.Config, h Handlers) error {
	e := New(cfg, h)
	return e.Start(":" + cfg.Port)
}
