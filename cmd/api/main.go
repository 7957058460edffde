package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/skumaran/petti-kadai-api/internal/application/auth"
	"github.com/skumaran/petti-kadai-api/internal/application/reports"
	appsales "github.com/skumaran/petti-kadai-api/internal/application/sales"
	"github.com/skumaran/petti-kadai-api/internal/application/usecase"
	"github.com/skumaran/petti-kadai-api/internal/infrastructure/memory"
	infrapdf "github.com/skumaran/petti-kadai-api/internal/infrastructure/pdf"
	"github.com/skumaran/petti-kadai-api/internal/infrastructure/postgres"
	infraredis "github.com/skumaran/petti-kadai-api/internal/infrastructure/redis"
	httpRouter "github.com/skumaran/petti-kadai-api/internal/interfaces/http"
	"github.com/skumaran/petti-kadai-api/pkg/config"
	"github.com/skumaran/petti-kadai-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema migration")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cart store: Redis when configured, in-process otherwise.
	var cartStore appsales.CartStore
	if cfg.Redis.Addr != "" {
		redisStore := infraredis.NewCartStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisStore.Ping(ctx); err != nil {
			log.Fatal().Err(err).Msg("Redis connection")
		}
		defer redisStore.Close()
		cartStore = redisStore
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using Redis cart store")
	} else {
		cartStore = memory.NewCartStore()
		log.Warn().Msg("REDIS_ADDR not set, carts are kept in process memory")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	cartUC := appsales.NewCartUseCase(cartStore, productRepo)
	checkoutUC := appsales.NewCheckoutUseCase(txRunner, cartStore, settingsUC, productRepo, customerRepo, saleRepo)
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := appsales.NewReceiptUseCase(receiptRepo, saleRepo, customerRepo, settingsUC, receiptGenerator, cfg.Receipts.Dir)
	dashboardUC := reports.NewDashboardUseCase(reportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Petti Kadai API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CategoryUC:  categoryUC,
		CustomerUC:  customerUC,
		SettingsUC:  settingsUC,
		CartUC:      cartUC,
		CheckoutUC:  checkoutUC,
		ReceiptUC:   receiptUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
