package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/analytics"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/auth"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/inventory"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/orders"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/receipts"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/usecase"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	UserUC      *usecase.UserUseCase
	OrderUC     *orders.UseCase
	InventoryUC *inventory.UseCase
	DashboardUC *analytics.DashboardUseCase
	ReceiptUC   *receipts.UseCase
	AuthUC      *auth.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Lectura y operación diaria exigen
// sesión; todo borrado, la edición de pedidos y la gestión de cuentas
// exigen además rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/seed-admin", authHandler.SeedAdmin)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.RoleAdmin)

	authGroupP := protected.Group("/auth")
	authGroupP.Get("/me", authHandler.Me)
	authGroupP.Post("/logout", authHandler.Logout)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", admin, productHandler.Delete)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/search", customerHandler.Search)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", admin, customerHandler.Delete)

	// Orders
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", admin, orderHandler.Update)
	ordersGroup.Delete("/:id", admin, orderHandler.Delete)

	// Receipts
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	ordersGroup.Get("/:id/receipt", receiptHandler.HTML)
	ordersGroup.Get("/:id/receipt.pdf", receiptHandler.PDF)

	// Stock
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.InventoryUC)
	stock.Post("/in", stockHandler.In)
	stock.Post("/out", stockHandler.Out)
	stock.Post("/adjust", stockHandler.Adjust)
	stock.Get("/movements", stockHandler.Movements)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Stats)

	// Users (solo admin)
	users := protected.Group("/users", admin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
