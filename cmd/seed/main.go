// seed puebla la base de datos para desarrollo local: crea un usuario admin
// (admin@dulceria.local / admin123, si no existe) y un catálogo de ejemplo.
//
// Uso: SECRET_KEY=... DATABASE_URL=... go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dulceria/sweets-api/internal/application/auth"
	"github.com/dulceria/sweets-api/internal/application/dto"
	"github.com/dulceria/sweets-api/internal/application/usecase"
	"github.com/dulceria/sweets-api/internal/domain"
	"github.com/dulceria/sweets-api/internal/domain/entity"
	"github.com/dulceria/sweets-api/internal/infrastructure/postgres"
	"github.com/dulceria/sweets-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "crear esquema: %v\n", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(pool)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		Algorithm:  cfg.JWT.Algorithm,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if _, err := authUC.Register(dto.RegisterRequest{
		Email:    "admin@dulceria.local",
		Password: "admin123",
		IsAdmin:  true,
	}); err != nil && err != domain.ErrEmailAlreadyExists {
		fmt.Fprintf(os.Stderr, "crear admin: %v\n", err)
		os.Exit(1)
	}

	sweetRepo := postgres.NewSweetRepository(pool)
	sweetUC := usecase.NewSweetUseCase(sweetRepo)
	existing, err := sweetUC.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "listar catálogo: %v\n", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		fmt.Println("catálogo ya poblado, nada que hacer")
		return
	}

	samples := []entity.Sweet{
		{Name: "Ladoo", Category: "Indian", Price: decimal.NewFromInt(10), Quantity: 5},
		{Name: "Gulab Jamun", Category: "Indian", Price: decimal.NewFromFloat(12.50), Quantity: 20},
		{Name: "Alfajor", Category: "Argentino", Price: decimal.NewFromFloat(3.75), Quantity: 40},
		{Name: "Arequipe", Category: "Colombiano", Price: decimal.NewFromFloat(8.90), Quantity: 15},
		{Name: "Chocolate amargo", Category: "Chocolate", Price: decimal.NewFromFloat(6.25), Quantity: 30},
	}
	now := time.Now()
	for i := range samples {
		s := samples[i]
		s.ID = uuid.New().String()
		s.CreatedAt = now
		s.UpdatedAt = now
		if err := sweetRepo.Create(&s); err != nil {
			fmt.Fprintf(os.Stderr, "crear dulce %s: %v\n", s.Name, err)
			os.Exit(1)
		}
	}

	fmt.Printf("seed completo: admin@dulceria.local y %d dulces\n", len(samples))
}
