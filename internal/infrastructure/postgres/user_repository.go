package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/domain"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)
var _ repository.RoleFieldsRepository = (*RoleFieldsRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, nombre, email, password_hash, rol, comision, status,
	COALESCE(reset_token, ''), reset_expires, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol, &u.Comision, &u.Status,
		&u.ResetToken, &u.ResetExpires, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, nombre, email, password_hash, rol, comision, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Nombre, user.Email, user.PasswordHash, user.Rol, user.Comision, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepo) getOne(ctx context.Context, query, arg string) (*entity.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Update actualiza nombre, email, rol, estado y hash de contraseña.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET nombre = $2, email = $3, password_hash = $4, rol = $5, status = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		user.ID, user.Nombre, user.Email, user.PasswordHash, user.Rol, user.Status, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateCommission fija el porcentaje de comisión del vendedor.
func (r *UserRepo) UpdateCommission(ctx context.Context, id string, rate decimal.Decimal) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET comision = $2, updated_at = now() WHERE id = $1`, id, rate)
	if err != nil {
		return fmt.Errorf("update commission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetResetToken guarda el token de recuperación de contraseña y su vencimiento.
func (r *UserRepo) SetResetToken(ctx context.Context, id, token string, expires time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET reset_token = $2, reset_expires = $3, updated_at = now() WHERE id = $1`,
		id, token, expires)
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los usuarios ordenados por nombre.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users ORDER BY nombre`)
}

// ListByRole devuelve los usuarios con el rol indicado.
func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]*entity.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE lower(rol) = lower($1) ORDER BY nombre`, role)
}

func (r *UserRepo) list(ctx context.Context, query string, args ...any) ([]*entity.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Delete elimina el usuario.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// RoleFieldsRepo lee rol/role de users y de la colección heredada legacy_users.
type RoleFieldsRepo struct {
	db Querier
}

// NewRoleFieldsRepository construye el lector de campos de rol.
func NewRoleFieldsRepository(db Querier) *RoleFieldsRepo {
	return &RoleFieldsRepo{db: db}
}

// FindInUsers lee el rol desde users. La tabla actual solo tiene "rol".
func (r *RoleFieldsRepo) FindInUsers(ctx context.Context, id string) (entity.RoleFields, bool, error) {
	var f entity.RoleFields
	err := r.db.QueryRow(ctx, `SELECT rol FROM users WHERE id = $1`, id).Scan(&f.Rol)
	return roleResult(f, err)
}

// FindInLegacy lee rol y role desde legacy_users.
func (r *RoleFieldsRepo) FindInLegacy(ctx context.Context, id string) (entity.RoleFields, bool, error) {
	var f entity.RoleFields
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(rol, ''), COALESCE(role, '') FROM legacy_users WHERE id = $1`, id,
	).Scan(&f.Rol, &f.Role)
	return roleResult(f, err)
}

func roleResult(f entity.RoleFields, err error) (entity.RoleFields, bool, error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.RoleFields{}, false, nil
		}
		return entity.RoleFields{}, false, fmt.Errorf("find role fields: %w", err)
	}
	return f, true, nil
}
