package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dulceria/sweets-api/internal/application/dto"
	"github.com/dulceria/sweets-api/internal/domain/entity"
	"github.com/dulceria/sweets-api/pkg/jwt"
)

// Locals keys para el usuario autenticado en Fiber.
const (
	LocalUserID  = "user_id"
	LocalIsAdmin = "is_admin"
)

// AuthConfig parámetros de verificación de tokens para el middleware.
type AuthConfig struct {
	Secret    string
	Algorithm string
}

// userResolver es el contrato mínimo que necesita el middleware para re-resolver
// el subject del token contra el almacén. Lo implementa repository.UserRepository;
// la interfaz propia mantiene el acoplamiento al mínimo y simplifica los tests.
type userResolver interface {
	GetByID(id string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token y re-resuelve el subject contra el
// almacén (exactamente una lectura por petición autenticada, nunca escrituras).
// Token ausente, inválido, expirado o con subject inexistente responden 401.
// El flag is_admin que queda en locals es el snapshot del token, no el del
// registro recién leído: un admin revocado conserva el rol hasta que expire.
func AuthMiddleware(cfg AuthConfig, users userResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, isAdmin, err := jwt.Parse(cfg.Secret, cfg.Algorithm, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		user, err := users.GetByID(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "el usuario del token ya no existe"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalIsAdmin, isAdmin)
		return c.Next()
	}
}

// RequireAdmin autoriza rutas de administrador. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalIsAdmin); un usuario autenticado sin el flag
// responde 403.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
		}
		if !GetIsAdmin(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo administradores"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetIsAdmin devuelve el flag de admin del token (después del middleware de auth).
func GetIsAdmin(c *fiber.Ctx) bool {
	v := c.Locals(LocalIsAdmin)
	if v == nil {
		return false
	}
	b, _ := v.(bool)
	return b
}
