package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appaddress "github.com/jhoicas/tienda-gateway/internal/application/address"
	appauth "github.com/jhoicas/tienda-gateway/internal/application/auth"
	"github.com/jhoicas/tienda-gateway/internal/application/cart"
	"github.com/jhoicas/tienda-gateway/internal/application/catalog"
	"github.com/jhoicas/tienda-gateway/internal/application/checkout"
	"github.com/jhoicas/tienda-gateway/internal/application/orders"
	"github.com/jhoicas/tienda-gateway/internal/application/reports"
	"github.com/jhoicas/tienda-gateway/internal/infrastructure/backend"
	"github.com/jhoicas/tienda-gateway/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/tienda-gateway/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/tienda-gateway/internal/interfaces/http"
	"github.com/jhoicas/tienda-gateway/pkg/config"
	"github.com/jhoicas/tienda-gateway/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando gateway")

	origin, err := cfg.Backend.BaseURL()
	if err != nil {
		log.Fatal().Err(err).Msg("configuración del backend")
	}

	store, err := localstore.Open(cfg.Session.StorePath)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir store local de sesiones")
	}
	defer store.Close()

	api := backend.New(origin, cfg.Backend.Timeout(), log).
		WithReturnURLs(cfg.Stripe.SuccessURL, cfg.Stripe.CancelURL)

	authUC := appauth.NewUseCase(api, store, appauth.CookieConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.ExpMinutes,
		Issuer:     cfg.Session.Issuer,
	}, log)
	catalogUC := catalog.NewUseCase(api, log)
	cartSvc := cart.NewService(api, log)
	checkoutSvc := checkout.NewService(api, store, log)
	addressUC := appaddress.NewUseCase(api, log)
	ordersUC := orders.NewUseCase(api, log)

	// PDF: exportación del reporte de inventario
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportsUC := reports.NewUseCase(api, pdfGenerator, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowOriginsFunc: func(string) bool { return cfg.App.Env != "production" },
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda Gateway API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CatalogUC:    catalogUC,
		CartSvc:      cartSvc,
		CheckoutSvc:  checkoutSvc,
		AddressUC:    addressUC,
		OrdersUC:     ordersUC,
		ReportsUC:    reportsUC,
		SessionStore: store,
		CookieName:   cfg.Session.CookieName,
		CookieSecret: cfg.Session.Secret,
		CookieExpMin: cfg.Session.ExpMinutes,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("gateway detenido")
}
