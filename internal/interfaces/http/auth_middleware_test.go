package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carpihogar-api/internal/application/auth"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/carpihogar-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/carpihogar-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "carpihogar-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole resolviendo el rol contra el store en memoria
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(store *memory.Store, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	resolver := auth.NewRoleResolver(store.RoleFields(), zerolog.Nop())
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(resolver, allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// seedRole crea un usuario con el rol dado y devuelve su id.
func seedRole(t *testing.T, store *memory.Store, rol string) string {
	t.Helper()
	u, err := auth.NewUser("Usuario "+rol, rol+"-"+uuid.NewString()[:8]+"@carpihogar.test", "secreto123", rol, decimal.Zero)
	require.NoError(t, err)
	require.NoError(t, store.Users().Create(context.Background(), u))
	return u.ID
}

// bearer genera un JWT para el usuario con el rol indicado en el claim.
func bearer(t *testing.T, userID, claimRole string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, "", claimRole, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	store := memory.NewStore()
	id := seedRole(t, store, entity.RoleAdmin)
	app := buildTestApp(store, entity.RoleAdmin)

	resp := doRequest(t, app, bearer(t, id, entity.RoleAdmin))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

func TestRequireRole_DespachoAccedeRutaMultiRol(t *testing.T) {
	store := memory.NewStore()
	id := seedRole(t, store, entity.RoleDespacho)
	app := buildTestApp(store, entity.RoleAdmin, entity.RoleDespacho)

	resp := doRequest(t, app, bearer(t, id, entity.RoleDespacho))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_VendedorBloqueadoEnRutaAdmin(t *testing.T) {
	store := memory.NewStore()
	id := seedRole(t, store, entity.RoleVendedor)
	app := buildTestApp(store, entity.RoleAdmin)

	resp := doRequest(t, app, bearer(t, id, entity.RoleVendedor))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// El claim del token no concede permisos: manda el rol guardado.
func TestRequireRole_IgnoraRolDelToken(t *testing.T) {
	store := memory.NewStore()
	id := seedRole(t, store, entity.RoleVendedor)
	app := buildTestApp(store, entity.RoleRoot)

	resp := doRequest(t, app, bearer(t, id, entity.RoleRoot))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_UsuarioLegado(t *testing.T) {
	store := memory.NewStore()
	store.PutLegacyUser("legacy-7", entity.RoleFields{Role: "Admin"})
	app := buildTestApp(store, entity.RoleAdmin)

	resp := doRequest(t, app, bearer(t, "legacy-7", ""))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_SinRol_Retorna401(t *testing.T) {
	store := memory.NewStore()
	app := buildTestApp(store, entity.RoleAdmin)

	resp := doRequest(t, app, bearer(t, "desconocido", entity.RoleAdmin))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

func TestRequireRole_StoreCaido_Retorna401(t *testing.T) {
	store := memory.NewStore()
	id := seedRole(t, store, entity.RoleAdmin)
	store.FailRoles = true
	app := buildTestApp(store, entity.RoleAdmin)

	resp := doRequest(t, app, bearer(t, id, entity.RoleAdmin))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(memory.NewStore(), entity.RoleAdmin)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(memory.NewStore(), entity.RoleAdmin)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware: extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", bearer(t, "u-1", entity.RoleAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "u-1", body["user_id"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}
