package auth_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carpihogar-api/internal/application/auth"
	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/domain"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/infrastructure/memory"
	"github.com/jhoicas/carpihogar-api/pkg/jwt"
)

const secret = "test-secret"

func newAuth(t *testing.T) (*auth.AuthUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	resolver := auth.NewRoleResolver(store.RoleFields(), zerolog.Nop())
	uc := auth.NewAuthUseCase(store.Users(), resolver, auth.JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "test"}, zerolog.Nop())
	return uc, store
}

func seedUser(t *testing.T, store *memory.Store, email, rol string) *entity.User {
	t.Helper()
	u, err := auth.NewUser("Usuario", email, "secreto123", rol, decimal.Zero)
	require.NoError(t, err)
	require.NoError(t, store.Users().Create(context.Background(), u))
	return u
}

// ─── RoleResolver ────────────────────────────────────────────────────────────

func TestResolveRole_UsuarioActual(t *testing.T) {
	store := memory.NewStore()
	u := seedUser(t, store, "a@b.com", "Vendedor")
	r := auth.NewRoleResolver(store.RoleFields(), zerolog.Nop())

	role, ok := r.ResolveRole(context.Background(), u.ID)
	assert.True(t, ok)
	assert.Equal(t, "vendedor", role)
}

func TestResolveRole_ColeccionLegada(t *testing.T) {
	store := memory.NewStore()
	store.PutLegacyUser("legacy-1", entity.RoleFields{Role: "Admin"})
	r := auth.NewRoleResolver(store.RoleFields(), zerolog.Nop())

	role, ok := r.ResolveRole(context.Background(), "legacy-1")
	assert.True(t, ok)
	assert.Equal(t, "admin", role)
}

func TestResolveRole_NoExiste(t *testing.T) {
	r := auth.NewRoleResolver(memory.NewStore().RoleFields(), zerolog.Nop())
	role, ok := r.ResolveRole(context.Background(), "nadie")
	assert.False(t, ok)
	assert.Empty(t, role)
}

func TestResolveRole_FalloDelAlmacenNoPropagaError(t *testing.T) {
	store := memory.NewStore()
	u := seedUser(t, store, "a@b.com", "root")
	store.FailRoles = true
	r := auth.NewRoleResolver(store.RoleFields(), zerolog.Nop())

	role, ok := r.ResolveRole(context.Background(), u.ID)
	assert.False(t, ok)
	assert.Empty(t, role)
}

// ─── Login / registro ────────────────────────────────────────────────────────

func TestLogin_TokenConRolResuelto(t *testing.T) {
	uc, store := newAuth(t)
	seedUser(t, store, "vende@carpihogar.com", "vendedor")

	res, err := uc.Login(context.Background(), dto.LoginRequest{Email: "Vende@carpihogar.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "/dashboard/vendedor", res.Redirect)

	claims, err := jwt.Parse(secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, "vendedor", claims.Role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, store := newAuth(t)
	seedUser(t, store, "x@y.com", "admin")

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "x@y.com", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegister_CreaClienteYRechazaDuplicado(t *testing.T) {
	uc, _ := newAuth(t)
	ctx := context.Background()

	res, err := uc.RegisterUser(ctx, dto.RegisterRequest{Nombre: "Ana", Email: "ana@x.com", Password: "12345678"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCliente, res.Rol)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Nombre: "Ana", Email: "ana@x.com", Password: "12345678"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestPasswordReset_EmailDesconocidoNoFalla(t *testing.T) {
	uc, store := newAuth(t)
	u := seedUser(t, store, "reset@x.com", "cliente")
	ctx := context.Background()

	require.NoError(t, uc.RequestPasswordReset(ctx, dto.PasswordResetRequest{Email: "nadie@x.com"}))
	require.NoError(t, uc.RequestPasswordReset(ctx, dto.PasswordResetRequest{Email: "reset@x.com"}))

	got, err := store.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ResetToken)
	assert.NotNil(t, got.ResetExpires)
}
