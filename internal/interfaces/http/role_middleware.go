package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/carpihogar-api/internal/application/dto"
)

// roleResolver es el contrato mínimo que necesita el middleware para conocer el rol vigente.
// Lo implementa *auth.RoleResolver.
type roleResolver interface {
	ResolveRole(ctx context.Context, userID string) (string, bool)
}

// RequireRole verifica contra la base que el usuario del token tenga uno de los roles permitidos.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalUserID).
//
// Comportamiento:
//   - 401 MISSING_ROLE → el usuario no tiene rol resoluble (o la consulta falló).
//   - 403 FORBIDDEN    → el rol no está entre los permitidos.
func RequireRole(resolver roleResolver, allowed ...string) fiber.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "usuario no encontrado en el token",
			})
		}

		role, ok := resolver.ResolveRole(c.Context(), userID)
		if !ok || role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "el usuario no tiene un rol asignado",
			})
		}
		if _, permitted := set[role]; !permitted {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + role + "' no tiene acceso a este recurso",
			})
		}

		c.Locals(LocalRole, role)
		return c.Next()
	}
}
