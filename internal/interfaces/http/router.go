package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skumaran/petti-kadai-api/internal/application/auth"
	"github.com/skumaran/petti-kadai-api/internal/application/reports"
	"github.com/skumaran/petti-kadai-api/internal/application/sales"
	"github.com/skumaran/petti-kadai-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	CustomerUC  *usecase.CustomerUseCase
	SettingsUC  *usecase.SettingsUseCase
	CartUC      *sales.CartUseCase
	CheckoutUC  *sales.CheckoutUseCase
	ReceiptUC   *sales.ReceiptUseCase
	DashboardUC *reports.DashboardUseCase
	JWTSecret   string
}

// Router registers the API routes. Reports and destructive catalog
// operations are owner only; everything else past auth is open to
// cashiers too.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", RequireOwner(), productHandler.Create)
	products.Put("/:id", RequireOwner(), productHandler.Update)
	products.Delete("/:id", RequireOwner(), productHandler.Deactivate)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", RequireOwner(), categoryHandler.Create)
	categories.Put("/:id", RequireOwner(), categoryHandler.Update)
	categories.Delete("/:id", RequireOwner(), categoryHandler.Delete)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Post("/:id/payments", customerHandler.RecordPayment)

	// Cart (session scoped, one per user)
	cart := protected.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Get("/", cartHandler.Get)
	cart.Delete("/", cartHandler.Clear)
	cart.Post("/items", cartHandler.AddItem)
	cart.Put("/items", cartHandler.UpdateItem)
	cart.Delete("/items/:productId", cartHandler.RemoveItem)

	// Sales
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CheckoutUC, deps.ReceiptUC)
	salesGroup.Post("/", saleHandler.Checkout)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Post("/:id/cancel", RequireOwner(), saleHandler.Cancel)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Settings
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)

	// Reports (owner only)
	reportsGroup := protected.Group("/reports", RequireOwner())
	reportHandler := NewReportHandler(deps.DashboardUC)
	reportsGroup.Get("/summary", reportHandler.Summary)
	reportsGroup.Get("/sales-series", reportHandler.SalesSeries)
	reportsGroup.Get("/payment-types", reportHandler.SalesByPaymentType)
	reportsGroup.Get("/top-products", reportHandler.TopProducts)
	reportsGroup.Get("/top-customers", reportHandler.TopCustomers)
}
