package auth

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

// RoleResolver obtiene el rol efectivo de un usuario desde la base.
type RoleResolver struct {
	repo repository.RoleFieldsRepository
	log  zerolog.Logger
}

// NewRoleResolver construye el resolver.
func NewRoleResolver(repo repository.RoleFieldsRepository, log zerolog.Logger) *RoleResolver {
	return &RoleResolver{repo: repo, log: log}
}

// ResolveRole busca en users y luego en la colección legada. Nunca retorna error:
// ante un fallo del almacén registra un warning y responde ("", false).
func (r *RoleResolver) ResolveRole(ctx context.Context, userID string) (string, bool) {
	if userID == "" {
		return "", false
	}
	fields, found, err := r.repo.FindInUsers(ctx, userID)
	if err != nil {
		r.log.Warn().Err(err).Str("user_id", userID).Msg("no se pudo leer el rol en users")
		return "", false
	}
	if !found {
		fields, found, err = r.repo.FindInLegacy(ctx, userID)
		if err != nil {
			r.log.Warn().Err(err).Str("user_id", userID).Msg("no se pudo leer el rol en la colección legada")
			return "", false
		}
		if !found {
			return "", false
		}
	}
	role := entity.NormalizeRole(fields.Rol, fields.Role)
	if role == "" {
		return "", false
	}
	return role, true
}
