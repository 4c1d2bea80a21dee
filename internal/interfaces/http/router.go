package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/repuestos-api/internal/application/auth"
	"github.com/jhoicas/repuestos-api/internal/application/orders"
	"github.com/jhoicas/repuestos-api/internal/application/usecase"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CompanyUC    *usecase.CompanyUseCase
	StoreUC      *usecase.StoreUseCase
	RetailerUC   *usecase.RetailerUseCase
	PartUC       *usecase.PartUseCase
	UserUC       *usecase.UserUseCase
	CreateOrder  *orders.CreateOrderUseCase
	ChangeStatus *orders.ChangeStatusUseCase
	PickItem     *orders.PickItemUseCase
	OrderQuery   *orders.QueryUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)

	// Companies (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	// Catálogo y usuarios anidados bajo la empresa
	partHandler := NewPartHandler(deps.PartUC)
	companies.Post("/:companyID/parts", partHandler.Create)
	companies.Get("/:companyID/parts", partHandler.List)
	userHandler := NewUserHandler(deps.UserUC)
	companies.Get("/:companyID/users", userHandler.ListByCompany)

	// Parts (protegido, acceso directo por ID)
	parts := protected.Group("/parts")
	parts.Get("/:id", partHandler.GetByID)
	parts.Put("/:id", partHandler.Update)
	parts.Delete("/:id", partHandler.Delete)

	// Stores (protegido)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Post("/", storeHandler.Create)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", storeHandler.Update)
	stores.Delete("/:id", storeHandler.Delete)

	// Retailers (protegido)
	retailers := protected.Group("/retailers")
	retailerHandler := NewRetailerHandler(deps.RetailerUC)
	retailers.Post("/", retailerHandler.Create)
	retailers.Get("/", retailerHandler.List)
	retailers.Get("/:id", retailerHandler.GetByID)
	retailers.Put("/:id", retailerHandler.Update)
	retailers.Delete("/:id", retailerHandler.Delete)

	// Users (protegido, administración de estado)
	users := protected.Group("/users")
	users.Patch("/:id/status",
		RequireRole(string(entity.RoleSuperAdmin), string(entity.RoleAdmin)),
		userHandler.SetStatus)

	// Orders (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.ChangeStatus, deps.PickItem, deps.OrderQuery)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Get("/:id/transitions", orderHandler.Transitions)

	// Cambio de estado y picking: solo admin/manager/storeman. El caso de uso
	// vuelve a validar el rol; el middleware corta antes con 403.
	canOperate := RequireRole(
		string(entity.RoleAdmin),
		string(entity.RoleManager),
		string(entity.RoleStoreman),
	)
	ordersGroup.Patch("/:id/status", canOperate, orderHandler.ChangeStatus)
	ordersGroup.Patch("/:id/items/:itemID/pick", canOperate, orderHandler.PickItem)
}
