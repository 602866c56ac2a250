package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Carolinyr9/estocai/internal/application/auth"
	"github.com/Carolinyr9/estocai/internal/application/usecase"
	"github.com/Carolinyr9/estocai/internal/domain/entity"
)

// ServerConfig é a fiber.Config da API. UnescapePath decodifica os
// percent-escapes dos params de rota antes dos handlers; sem isso
// "/movements/description/quantity%20decreased" filtraria pela string
// literal com %20 e nunca encontraria nada.
func ServerConfig(appName string) fiber.Config {
	return fiber.Config{
		AppName:      appName,
		UnescapePath: true,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	}
}

// RouterDeps dependências para o router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	MovementUC *usecase.MovementUseCase
	ReportUC   *usecase.MovementReportUseCase
	UserUC     *usecase.UserUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra as rotas da API. Mutação de produto/categoria exige ADMIN;
// leituras exigem USER (ADMIN implica USER); autoatendimento de usuário é
// dono-ou-ADMIN.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(entity.RoleAdmin)
	reader := RequireRole(entity.RoleUser)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", admin, categoryHandler.Create)
	categories.Get("/", reader, categoryHandler.List)
	categories.Get("/name/:name", reader, categoryHandler.GetByName)
	categories.Get("/:id", reader, categoryHandler.GetByID)
	categories.Put("/:id", admin, categoryHandler.Update)
	categories.Patch("/:id", admin, categoryHandler.UpdatePartial)
	categories.Delete("/:id", admin, categoryHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", admin, productHandler.Create)
	products.Get("/", reader, productHandler.List)
	products.Get("/name/:name", reader, productHandler.GetByName)
	products.Get("/:id", reader, productHandler.GetByID)
	products.Put("/:id", admin, productHandler.Update)
	products.Patch("/:id/increase", admin, productHandler.IncreaseQuantity)
	products.Patch("/:id/decrease", admin, productHandler.DecreaseQuantity)
	products.Patch("/:id/quantity", admin, productHandler.SetQuantity)
	products.Patch("/:id", admin, productHandler.UpdatePartial)
	products.Delete("/:id", admin, productHandler.Delete)

	// Movements (somente leitura)
	movements := protected.Group("/movements", reader)
	movementHandler := NewMovementHandler(deps.MovementUC, deps.ReportUC)
	movements.Get("/", movementHandler.List)
	movements.Get("/type/:type", movementHandler.ListByType)
	movements.Get("/description/:description", movementHandler.ListByDescription)
	movements.Get("/product/:id/report", movementHandler.Report)
	movements.Get("/product/:id", movementHandler.ListByProduct)

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Patch("/roles/:id", admin, userHandler.UpdateRole)
	users.Get("/:id", RequireSelfOrAdmin(), userHandler.GetByID)
	users.Patch("/:id", RequireSelfOrAdmin(), userHandler.UpdatePartial)
	users.Delete("/:id", RequireSelfOrAdmin(), userHandler.Delete)
}
