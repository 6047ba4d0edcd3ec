package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/carpihogar-api/internal/application/analytics"
	"github.com/jhoicas/carpihogar-api/internal/application/auth"
	"github.com/jhoicas/carpihogar-api/internal/application/cart"
	"github.com/jhoicas/carpihogar-api/internal/application/catalog"
	"github.com/jhoicas/carpihogar-api/internal/application/orders"
	"github.com/jhoicas/carpihogar-api/internal/application/sales"
	"github.com/jhoicas/carpihogar-api/internal/application/usecase"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	Roles        *auth.RoleResolver
	CartUC       *cart.UseCase
	CatalogUC    *catalog.UseCase
	ProductUC    *usecase.ProductUseCase
	InventoryUC  *appanalytics.InventoryReportUseCase
	SaleUC       *sales.UseCase
	OrderUC      *orders.UseCase
	ProviderUC   *usecase.ProviderUseCase
	UserUC       *usecase.UserUseCase
	CommissionUC *appanalytics.CommissionUseCase
	ExportUC     *appanalytics.ExportUseCase
	DashboardUC  *appanalytics.DashboardUseCase
	SettingsUC   *usecase.SettingsUseCase
	AdvisorUC    *usecase.AdvisorUseCase
	Exporters    Exporters
	JWTSecret    string
}

// Conjuntos de roles por área del back-office.
var (
	rolesStaff    = []string{entity.RoleRoot, entity.RoleAdmin}
	rolesSales    = []string{entity.RoleRoot, entity.RoleAdmin, entity.RoleVendedor}
	rolesDispatch = []string{entity.RoleRoot, entity.RoleAdmin, entity.RoleDespacho, entity.RoleEcommerce}
	rolesBackOff  = []string{entity.RoleRoot, entity.RoleAdmin, entity.RoleVendedor, entity.RoleDespacho, entity.RoleEcommerce}
)

// Router registra las rutas de la API.
// Las rutas públicas no pasan por AuthMiddleware; las privilegiadas resuelven el rol en la base con RequireRole.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authed := AuthMiddleware(deps.JWTSecret)
	staff := RequireRole(deps.Roles, rolesStaff...)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/password-reset", authHandler.PasswordReset)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authed, authHandler.Me)

	// Tienda (público)
	cartHandler := NewCartHandler(deps.CartUC)
	carts := api.Group("/cart")
	carts.Get("/:cartId", cartHandler.Get)
	carts.Post("/:cartId/items", cartHandler.AddItem)
	carts.Put("/:cartId/items/:productId", cartHandler.UpdateItem)
	carts.Delete("/:cartId/items/:productId", cartHandler.RemoveItem)
	carts.Delete("/:cartId", cartHandler.Clear)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogGroup := api.Group("/catalog")
	catalogGroup.Get("/", catalogHandler.Search)
	catalogGroup.Get("/categories", catalogHandler.Categories)
	catalogGroup.Get("/brands", catalogHandler.Brands)
	catalogGroup.Get("/products/:id", catalogHandler.Product)

	// Products (protegido). Las rutas estáticas van antes de /:id.
	productHandler := NewProductHandler(deps.ProductUC, deps.InventoryUC, deps.ExportUC, deps.Exporters)
	products := api.Group("/products", authed)
	products.Get("/export.:format", staff, productHandler.Export)
	products.Get("/most-sold", staff, productHandler.MostSold)
	products.Get("/least-sold", staff, productHandler.LeastSold)
	products.Get("/low-stock", staff, productHandler.LowStock)
	products.Get("/:code/sales", staff, productHandler.Sales)
	products.Get("/", RequireRole(deps.Roles, rolesBackOff...), productHandler.List)
	products.Post("/", staff, productHandler.Create)
	products.Get("/:id", RequireRole(deps.Roles, rolesBackOff...), productHandler.GetByID)
	products.Put("/:id", staff, productHandler.Update)
	products.Delete("/:id", staff, productHandler.Delete)
	products.Post("/:id/images", staff, productHandler.UploadImages)

	// Sales
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ExportUC, deps.Exporters)
	salesGroup := api.Group("/sales", authed)
	salesGroup.Get("/export.:format", staff, saleHandler.Export)
	salesGroup.Post("/", RequireRole(deps.Roles, rolesSales...), saleHandler.Create)
	salesGroup.Get("/", RequireRole(deps.Roles, rolesSales...), saleHandler.List)
	salesGroup.Get("/:id", RequireRole(deps.Roles, rolesSales...), saleHandler.GetByID)

	// Orders: checkout y comprobantes son públicos; la gestión requiere rol de despacho.
	orderHandler := NewOrderHandler(deps.OrderUC)
	dispatch := RequireRole(deps.Roles, rolesDispatch...)
	ordersGroup := api.Group("/orders")
	ordersGroup.Post("/", orderHandler.Checkout)
	ordersGroup.Post("/receipts", orderHandler.UploadReceipt)
	ordersGroup.Get("/", authed, dispatch, orderHandler.List)
	ordersGroup.Get("/:id", authed, dispatch, orderHandler.GetByID)
	ordersGroup.Patch("/:id/status", authed, dispatch, orderHandler.UpdateStatus)

	// Providers, facturas y abonos
	providerHandler := NewProviderHandler(deps.ProviderUC, deps.Exporters)
	providers := api.Group("/providers", authed, staff)
	providers.Get("/", providerHandler.List)
	providers.Get("/summary", providerHandler.Summary)
	providers.Get("/export.:format", providerHandler.Export)
	providers.Post("/", providerHandler.Create)
	providers.Get("/:id", providerHandler.Detail)
	providers.Put("/:id", providerHandler.Update)
	providers.Delete("/:id", providerHandler.Delete)

	invoices := api.Group("/invoices", authed, staff)
	invoices.Post("/", providerHandler.CreateInvoice)
	invoices.Post("/attachments", providerHandler.UploadAttachment)
	invoices.Post("/:id/payments", providerHandler.RegisterPayment)
	invoices.Get("/:id/payments", providerHandler.ListPayments)

	// Users
	userHandler := NewUserHandler(deps.UserUC)
	users := api.Group("/users", authed)
	users.Get("/", staff, userHandler.List)
	users.Post("/", staff, userHandler.Create)
	users.Get("/:id", staff, userHandler.GetByID)
	users.Put("/:id", staff, userHandler.Update)
	users.Delete("/:id", staff, userHandler.Delete)
	users.Put("/:id/commission", RequireRole(deps.Roles, entity.RoleRoot), userHandler.UpdateCommission)

	// Reports
	reportHandler := NewReportHandler(deps.CommissionUC, deps.ExportUC, deps.Exporters)
	reports := api.Group("/reports", authed)
	reports.Get("/commissions", staff, reportHandler.Commissions)
	reports.Get("/commissions/me", RequireRole(deps.Roles, entity.RoleVendedor), reportHandler.MyCommissions)
	reports.Get("/commissions/export.:format", staff, reportHandler.ExportCommissions)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", authed, staff, dashboardHandler.GetSummary)

	// Settings: lectura pública, escritura root/admin.
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings := api.Group("/settings")
	settings.Get("/exchange-rate", settingsHandler.GetExchangeRate)
	settings.Put("/exchange-rate", authed, staff, settingsHandler.SetExchangeRate)
	settings.Get("/whatsapp", settingsHandler.GetWhatsapp)
	settings.Put("/whatsapp", authed, staff, settingsHandler.SetWhatsapp)

	// Asesor: cualquier método en la ruta; solo POST es válido.
	advisorHandler := NewAdvisorHandler(deps.AdvisorUC)
	api.All("/advisor", advisorHandler.Ask)
}
