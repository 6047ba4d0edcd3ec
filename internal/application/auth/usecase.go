package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/domain"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
	"github.com/jhoicas/carpihogar-api/pkg/jwt"
)

// resetTokenTTL vigencia del token de restablecimiento.
const resetTokenTTL = time.Hour

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y restablecimiento de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	resolver *RoleResolver
	jwtCfg   JWTConfig
	log      zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, resolver *RoleResolver, jwtCfg JWTConfig, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, resolver: resolver, jwtCfg: jwtCfg, log: log}
}

// RegisterUser crea un cliente de la tienda. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	user, err := NewUser(in.Nombre, email, in.Password, entity.RoleCliente, decimal.Zero)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password, resuelve el rol en la base y genera el JWT.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	role, ok := uc.resolver.ResolveRole(ctx, user.ID)
	if !ok {
		role = entity.NormalizeRole(user.Rol, "")
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		User:     *ToUserResponse(user),
		Redirect: entity.RedirectPath(role),
	}, nil
}

// RequestPasswordReset genera un token de un solo uso. No revela si el email existe.
func (uc *AuthUseCase) RequestPasswordReset(ctx context.Context, in dto.PasswordResetRequest) error {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	token := uuid.New().String()
	if err := uc.userRepo.SetResetToken(ctx, user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return err
	}
	// El envío del correo lo hace el proveedor externo; aquí solo queda registrado.
	uc.log.Info().Str("user_id", user.ID).Msg("token de restablecimiento emitido")
	return nil
}

// Me identidad del usuario con el rol resuelto en el servidor.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.MeResponse, error) {
	role, ok := uc.resolver.ResolveRole(ctx, userID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &dto.MeResponse{UserID: userID, Role: role, Redirect: entity.RedirectPath(role)}, nil
}

// NewUser arma una cuenta activa con la contraseña hasheada con bcrypt.
func NewUser(nombre, email, password, rol string, comision decimal.Decimal) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if nombre == "" {
		nombre = email
	}
	return &entity.User{
		ID:           uuid.New().String(),
		Nombre:       nombre,
		Email:        email,
		PasswordHash: string(hash),
		Rol:          rol,
		Comision:     comision,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ToUserResponse convierte la entidad a DTO.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Email:     u.Email,
		Rol:       u.Rol,
		Comision:  u.Comision,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
