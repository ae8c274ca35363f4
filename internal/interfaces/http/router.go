package http

import (
	"github.com/gofiber/fiber/v2"

	appaddress "github.com/jhoicas/tienda-gateway/internal/application/address"
	appauth "github.com/jhoicas/tienda-gateway/internal/application/auth"
	"github.com/jhoicas/tienda-gateway/internal/application/cart"
	"github.com/jhoicas/tienda-gateway/internal/application/catalog"
	"github.com/jhoicas/tienda-gateway/internal/application/checkout"
	"github.com/jhoicas/tienda-gateway/internal/application/orders"
	"github.com/jhoicas/tienda-gateway/internal/application/reports"
	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *appauth.UseCase
	CatalogUC   *catalog.UseCase
	CartSvc     *cart.Service
	CheckoutSvc *checkout.Service
	AddressUC   *appaddress.UseCase
	OrdersUC    *orders.UseCase
	ReportsUC   *reports.UseCase

	SessionStore appauth.SessionStore
	CookieName   string
	CookieSecret string
	CookieExpMin int
}

// Router registra las rutas del gateway.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	guardCfg := GuardConfig{
		Store:      deps.SessionStore,
		CookieName: deps.CookieName,
		Secret:     deps.CookieSecret,
	}

	// Auth (público): cada rol tiene su login; el registro es solo POS.
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieName, deps.CookieSecret, deps.CookieExpMin)
	authGroup := api.Group("/auth")
	authGroup.Post("/pos/login", authHandler.LoginPOS)
	authGroup.Post("/pos/register", authHandler.Register)
	authGroup.Post("/pos/resend-verification", authHandler.ResendVerification)
	authGroup.Post("/pos/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/pos/reset-password", authHandler.ResetPassword)
	authGroup.Post("/inventario/login", authHandler.LoginInventory)
	authGroup.Post("/logout", authHandler.Logout)

	// Catálogo (público): la tienda se navega sin sesión.
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/productos", catalogHandler.ListProducts)
	api.Get("/productos/:id", catalogHandler.GetProduct)
	api.Get("/categorias", catalogHandler.ListCategories)

	// Tienda POS (protegido): carrito, checkout, dirección y compras solo
	// con sesión de cliente.
	pos := api.Group("/pos", Guard(entity.TipoPOS, guardCfg))

	cartHandler := NewCartHandler(deps.CartSvc)
	pos.Get("/carrito", cartHandler.Get)
	pos.Post("/carrito", cartHandler.AddItem)
	pos.Put("/carrito/:productId", cartHandler.UpdateQuantity)
	pos.Delete("/carrito/:productId", cartHandler.RemoveItem)

	checkoutHandler := NewCheckoutHandler(deps.CheckoutSvc, deps.CartSvc)
	pos.Post("/checkout", checkoutHandler.Initiate)
	pos.Post("/checkout/confirmar", checkoutHandler.Confirm)

	addressHandler := NewAddressHandler(deps.AddressUC)
	pos.Get("/direccion", addressHandler.Get)
	pos.Put("/direccion", addressHandler.Save)

	ordersHandler := NewOrdersHandler(deps.OrdersUC)
	pos.Get("/compras", ordersHandler.Mine)

	// Inventario (protegido): CRUD del catálogo, órdenes y reportes solo con
	// sesión de personal.
	inv := api.Group("/inventario", Guard(entity.TipoInventario, guardCfg))

	inv.Post("/productos", catalogHandler.CreateProduct)
	inv.Put("/productos/:id", catalogHandler.UpdateProduct)
	inv.Delete("/productos/:id", catalogHandler.ArchiveProduct)
	inv.Put("/productos/:id/desarchivar", catalogHandler.UnarchiveProduct)
	inv.Post("/categorias", catalogHandler.CreateCategory)
	inv.Put("/categorias/:id", catalogHandler.UpdateCategory)
	inv.Delete("/categorias/:id", catalogHandler.ArchiveCategory)

	inv.Get("/ordenes", ordersHandler.All)

	reportsHandler := NewReportsHandler(deps.ReportsUC)
	inv.Get("/reportes/dashboard", reportsHandler.Dashboard)
	inv.Get("/reportes/pdf", reportsHandler.PDF)
}
