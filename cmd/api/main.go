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

	appanalytics "github.com/jhoicas/carpihogar-api/internal/application/analytics"
	"github.com/jhoicas/carpihogar-api/internal/application/auth"
	"github.com/jhoicas/carpihogar-api/internal/application/cart"
	"github.com/jhoicas/carpihogar-api/internal/application/catalog"
	"github.com/jhoicas/carpihogar-api/internal/application/orders"
	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/internal/application/sales"
	"github.com/jhoicas/carpihogar-api/internal/application/usecase"
	domaincatalog "github.com/jhoicas/carpihogar-api/internal/domain/catalog"
	infraai "github.com/jhoicas/carpihogar-api/internal/infrastructure/ai"
	"github.com/jhoicas/carpihogar-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/carpihogar-api/internal/infrastructure/pdf"
	"github.com/jhoicas/carpihogar-api/internal/infrastructure/postgres"
	"github.com/jhoicas/carpihogar-api/internal/infrastructure/rediscache"
	"github.com/jhoicas/carpihogar-api/internal/infrastructure/storage"
	infraxlsx "github.com/jhoicas/carpihogar-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/carpihogar-api/internal/interfaces/http"
	"github.com/jhoicas/carpihogar-api/pkg/config"
	"github.com/jhoicas/carpihogar-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Debug().Msg("migraciones aplicadas")

	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	roleFieldsRepo := postgres.NewRoleFieldsRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	orderRepo := postgres.NewStoreOrderRepository(pool)
	providerRepo := postgres.NewProviderRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Redis guarda carritos y cachea settings. Sin Redis los carritos quedan en memoria del proceso.
	var (
		cartStore     ports.CartStore
		settingsCache ports.SettingsCache
	)
	if rdb, err := rediscache.NewClient(ctx, cfg.Redis); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, carritos en memoria y sin caché de settings")
		cartStore = memory.NewCartStore()
	} else {
		defer rdb.Close()
		cartStore = rediscache.NewCartStore(rdb, cfg.Redis.CartTTL)
		settingsCache = rediscache.NewSettingsCache(rdb, cfg.Redis.SettingsTTL)
	}

	blobs := storage.NewClient(cfg.Storage, log.Component("storage"))

	// Sin API key el asesor responde 500; no pasar un *OpenRouterService nil como interfaz.
	var chat ports.ChatService
	if svc := infraai.NewOpenRouterService(cfg.AI, log.Component("advisor")); svc != nil {
		chat = svc
	}

	settingsUC := usecase.NewSettingsUseCase(settingsRepo, settingsCache, log.Component("settings"))
	roleResolver := auth.NewRoleResolver(roleFieldsRepo, log.Component("roles"))
	authUC := auth.NewAuthUseCase(userRepo, roleResolver, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log.Component("auth"))

	inventoryUC := appanalytics.NewInventoryReportUseCase(productRepo, saleRepo, cfg.Catalog.LowStockThreshold)
	commissionUC := appanalytics.NewCommissionUseCase(userRepo, saleRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Carpihogar API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		Roles:        roleResolver,
		CartUC:       cart.NewUseCase(cartStore, productRepo),
		CatalogUC:    catalog.NewUseCase(productRepo, settingsUC, domaincatalog.DefaultTree()),
		ProductUC:    usecase.NewProductUseCase(productRepo, blobs),
		InventoryUC:  inventoryUC,
		SaleUC:       sales.NewUseCase(txRunner, saleRepo, userRepo, settingsUC, log.Component("sales")),
		OrderUC:      orders.NewUseCase(txRunner, orderRepo, productRepo, cartStore, blobs, log.Component("orders")),
		ProviderUC:   usecase.NewProviderUseCase(providerRepo, invoiceRepo, paymentRepo, txRunner, blobs, log.Component("providers")),
		UserUC:       usecase.NewUserUseCase(userRepo),
		CommissionUC: commissionUC,
		ExportUC:     appanalytics.NewExportUseCase(inventoryUC, commissionUC, saleRepo),
		DashboardUC:  appanalytics.NewDashboardUseCase(analyticsRepo),
		SettingsUC:   settingsUC,
		AdvisorUC:    usecase.NewAdvisorUseCase(chat, cfg.AI.Timeout),
		Exporters: httpRouter.Exporters{
			PDF:  infrapdf.NewTableRenderer(cfg.Catalog.LogoPath),
			XLSX: infraxlsx.NewTableRenderer(),
		},
		JWTSecret: cfg.JWT.Secret,
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

	log.Info().Msg("aplicación detenida")
}
