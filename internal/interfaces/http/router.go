package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dulceria/sweets-api/internal/application/auth"
	"github.com/dulceria/sweets-api/internal/application/usecase"
	"github.com/dulceria/sweets-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC   *auth.AuthUseCase
	SweetUC  *usecase.SweetUseCase
	UserRepo repository.UserRepository
	Auth     AuthConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (requiere Bearer Token; mutaciones solo admin)
	requireAuth := AuthMiddleware(deps.Auth, deps.UserRepo)
	requireAdmin := RequireAdmin()
	sweets := api.Group("/sweets", requireAuth)
	sweetHandler := NewSweetHandler(deps.SweetUC)
	sweets.Post("/", requireAdmin, sweetHandler.Create)
	sweets.Get("/", sweetHandler.List)
	sweets.Get("/search", sweetHandler.Search)
	sweets.Put("/:id", requireAdmin, sweetHandler.Update)
	sweets.Delete("/:id", requireAdmin, sweetHandler.Delete)
	sweets.Post("/:id/purchase", sweetHandler.Purchase)
	sweets.Post("/:id/restock", requireAdmin, sweetHandler.Restock)
}
