package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/carpihogar-api/internal/application/analytics"
	"github.com/jhoicas/carpihogar-api/internal/application/auth"
	"github.com/jhoicas/carpihogar-api/internal/application/cart"
	"github.com/jhoicas/carpihogar-api/internal/application/catalog"
	"github.com/jhoicas/carpihogar-api/internal/application/orders"
	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/internal/application/sales"
	"github.com/jhoicas/carpihogar-api/internal/application/usecase"
	domaincatalog "github.com/jhoicas/carpihogar-api/internal/domain/catalog"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/domain/order"
	"github.com/jhoicas/carpihogar-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/carpihogar-api/internal/interfaces/http"
)

type fakeRenderer struct{ ext, contentType string }

func (f fakeRenderer) Render(t ports.Table) ([]byte, error) { return []byte(t.Title), nil }
func (f fakeRenderer) ContentType() string                  { return f.contentType }
func (f fakeRenderer) Extension() string                    { return f.ext }

type fakeStorage struct{ paths []string }

func (f *fakeStorage) Upload(_ context.Context, path, _ string, _ []byte) (string, error) {
	f.paths = append(f.paths, path)
	return "https://files.test/" + path, nil
}

type fakeChat struct {
	answer string
	err    error
}

func (f fakeChat) Complete(_ context.Context, _, _ string) (string, error) { return f.answer, f.err }

type testEnv struct {
	app     *fiber.App
	store   *memory.Store
	storage *fakeStorage
}

func newEnv(t *testing.T, chat ports.ChatService) *testEnv {
	t.Helper()
	store := memory.NewStore()
	carts := memory.NewCartStore()
	blobs := &fakeStorage{}
	log := zerolog.Nop()

	resolver := auth.NewRoleResolver(store.RoleFields(), log)
	settingsUC := usecase.NewSettingsUseCase(store.Settings(), nil, log)
	inventoryUC := appanalytics.NewInventoryReportUseCase(store.Products(), store.Sales(), 5)
	commissionUC := appanalytics.NewCommissionUseCase(store.Users(), store.Sales())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(store.Users(), resolver, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, log),
		Roles:        resolver,
		CartUC:       cart.NewUseCase(carts, store.Products()),
		CatalogUC:    catalog.NewUseCase(store.Products(), settingsUC, domaincatalog.DefaultTree()),
		ProductUC:    usecase.NewProductUseCase(store.Products(), blobs),
		InventoryUC:  inventoryUC,
		SaleUC:       sales.NewUseCase(store, store.Sales(), store.Users(), settingsUC, log),
		OrderUC:      orders.NewUseCase(store, store.Orders(), store.Products(), carts, blobs, log),
		ProviderUC:   usecase.NewProviderUseCase(store.Providers(), store.Invoices(), store.Payments(), store, blobs, log),
		UserUC:       usecase.NewUserUseCase(store.Users()),
		CommissionUC: commissionUC,
		ExportUC:     appanalytics.NewExportUseCase(inventoryUC, commissionUC, store.Sales()),
		DashboardUC:  appanalytics.NewDashboardUseCase(store.Analytics()),
		SettingsUC:   settingsUC,
		AdvisorUC:    usecase.NewAdvisorUseCase(chat, time.Second),
		Exporters: apphttp.Exporters{
			PDF:  fakeRenderer{ext: "pdf", contentType: "application/pdf"},
			XLSX: fakeRenderer{ext: "xlsx", contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		},
		JWTSecret: testJWTSecret,
	})
	return &testEnv{app: app, store: store, storage: blobs}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) as(t *testing.T, rol string) (string, string) {
	t.Helper()
	id := seedRole(t, e.store, rol)
	return id, bearer(t, id, rol)
}

func (e *testEnv) product(t *testing.T, codigo string, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{
		ID: "p-" + codigo, Codigo: codigo, Nombre: "Bisagra " + codigo, Categoria: "Bisagras", Marca: "Hafele",
		Precio: decimal.NewFromInt(10), Stock: stock, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	require.NoError(t, e.store.Products().Create(context.Background(), p))
	return p
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ─── Asesor ──────────────────────────────────────────────────────────────────

func TestAdvisor_MetodoNoPermitido(t *testing.T) {
	env := newEnv(t, fakeChat{answer: "ok"})
	resp := env.do(t, http.MethodGet, "/api/advisor", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "Method not allowed", decode[map[string]string](t, resp)["error"])
}

func TestAdvisor_MensajeInvalido(t *testing.T) {
	env := newEnv(t, fakeChat{answer: "ok"})
	for _, body := range []any{map[string]any{"message": "   "}, map[string]any{"message": 42}, map[string]any{}} {
		resp := env.do(t, http.MethodPost, "/api/advisor", "", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid message", decode[map[string]string](t, resp)["error"])
	}
}

func TestAdvisor_Respuesta(t *testing.T) {
	env := newEnv(t, fakeChat{answer: "Use laminado HPL"})
	resp := env.do(t, http.MethodPost, "/api/advisor", "", map[string]any{"message": "¿Qué uso para una cocina?"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Use laminado HPL", decode[map[string]string](t, resp)["response"])
}

func TestAdvisor_SinConfigurarOFalloExterno(t *testing.T) {
	for _, chat := range []ports.ChatService{nil, fakeChat{err: errors.New("timeout")}} {
		env := newEnv(t, chat)
		resp := env.do(t, http.MethodPost, "/api/advisor", "", map[string]any{"message": "hola"})
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.NotEmpty(t, decode[map[string]string](t, resp)["error"])
	}
}

// ─── Auth ────────────────────────────────────────────────────────────────────

func TestAuth_RegistroLoginYMe(t *testing.T) {
	env := newEnv(t, nil)
	resp := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"nombre": "Ana", "email": "ana@correo.com", "password": "secreto123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ana@correo.com", "password": "secreto123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[map[string]any](t, resp)
	assert.Equal(t, "/tienda", login["redirect"])

	resp = env.do(t, http.MethodGet, "/api/auth/me", "Bearer "+login["token"].(string), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.RoleCliente, decode[map[string]string](t, resp)["role"])
}

func TestAuth_LoginInvalido(t *testing.T) {
	env := newEnv(t, nil)
	seedRoleEmail(t, env.store, entity.RoleAdmin, "admin@carpihogar.test")
	resp := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "admin@carpihogar.test", "password": "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestAuth_PasswordResetSiempre202(t *testing.T) {
	env := newEnv(t, nil)
	resp := env.do(t, http.MethodPost, "/api/auth/password-reset", "", map[string]string{"email": "nadie@correo.com"})
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()
}

// ─── Catálogo y carrito ──────────────────────────────────────────────────────

func TestCatalog_BusquedaPorCategoriaPadre(t *testing.T) {
	env := newEnv(t, nil)
	env.product(t, "B-1", 3)

	resp := env.do(t, http.MethodGet, "/api/catalog?search=herrajes", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[map[string]any](t, resp)
	assert.EqualValues(t, 1, out["total"])

	resp = env.do(t, http.MethodGet, "/api/catalog?search=griferias", "", nil)
	assert.EqualValues(t, 0, decode[map[string]any](t, resp)["total"])
}

func TestCart_AgregarYActualizar(t *testing.T) {
	env := newEnv(t, nil)
	p := env.product(t, "B-1", 3)

	resp := env.do(t, http.MethodPost, "/api/cart/c1/items", "", map[string]string{"product_id": p.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = env.do(t, http.MethodPost, "/api/cart/c1/items", "", map[string]string{"product_id": p.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[map[string]any](t, resp)
	assert.EqualValues(t, 2, out["item_count"])

	resp = env.do(t, http.MethodPut, "/api/cart/c1/items/"+p.ID, "", map[string]int{"quantity": 0})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, decode[map[string]any](t, resp)["item_count"])

	resp = env.do(t, http.MethodPost, "/api/cart/c1/items", "", map[string]string{"product_id": "no-existe"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// ─── Productos ───────────────────────────────────────────────────────────────

func TestProducts_CrearRequiereRolStaff(t *testing.T) {
	env := newEnv(t, nil)
	body := map[string]any{"codigo": "HPL-1", "nombre": "Laminado", "categoria": "Laminados HPL", "precio": "25.50", "stock": 4}

	resp := env.do(t, http.MethodPost, "/api/products", "", body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	_, vend := env.as(t, entity.RoleVendedor)
	resp = env.do(t, http.MethodPost, "/api/products", vend, body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	_, admin := env.as(t, entity.RoleAdmin)
	resp = env.do(t, http.MethodPost, "/api/products", admin, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/products", admin, body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestProducts_ValidacionDeCuerpo(t *testing.T) {
	env := newEnv(t, nil)
	_, admin := env.as(t, entity.RoleAdmin)
	resp := env.do(t, http.MethodPost, "/api/products", admin, map[string]any{"nombre": "Sin código", "stock": -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[map[string]string](t, resp)["code"])
}

func TestProducts_Exportar(t *testing.T) {
	env := newEnv(t, nil)
	env.product(t, "B-1", 3)
	_, admin := env.as(t, entity.RoleAdmin)

	resp := env.do(t, http.MethodGet, "/api/products/export.xlsx", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="inventario.xlsx"`)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/products/export.csv", admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestProducts_StockBajo(t *testing.T) {
	env := newEnv(t, nil)
	env.product(t, "B-1", 2)
	env.product(t, "B-2", 40)
	_, admin := env.as(t, entity.RoleAdmin)

	resp := env.do(t, http.MethodGet, "/api/products/low-stock", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, decode[map[string]any](t, resp)["total"])
}

// ─── Ventas ──────────────────────────────────────────────────────────────────

func TestSales_VendedorSoloVeLasSuyas(t *testing.T) {
	env := newEnv(t, nil)
	p := env.product(t, "B-1", 10)
	_, admin := env.as(t, entity.RoleAdmin)
	_, vend := env.as(t, entity.RoleVendedor)

	sale := map[string]any{
		"client_name": "Carlos",
		"items":       []map[string]any{{"product_id": p.ID, "quantity": 2, "price_type": "cliente"}},
	}
	resp := env.do(t, http.MethodPost, "/api/sales", vend, sale)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "sin tasa de cambio")
	assert.Equal(t, "NO_EXCHANGE_RATE", decode[map[string]string](t, resp)["code"])

	resp = env.do(t, http.MethodPut, "/api/settings/exchange-rate", admin, map[string]any{"exchangeRate": "36.5"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/sales", vend, sale)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[map[string]any](t, resp)
	assert.Equal(t, "ORD-00001", created["order_number"])

	stored, err := env.store.Products().GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, stored.Stock)

	_, desp := env.as(t, entity.RoleDespacho)
	resp = env.do(t, http.MethodGet, "/api/sales", desp, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/sales", admin, nil)
	assert.EqualValues(t, 1, decode[map[string]any](t, resp)["total"])
}

func TestSales_OtroVendedorNoVeVentaAjena(t *testing.T) {
	env := newEnv(t, nil)
	p := env.product(t, "B-1", 10)
	require.NoError(t, env.store.Settings().SetExchangeRate(context.Background(), decimal.NewFromInt(40)))

	_, vend := env.as(t, entity.RoleVendedor)
	_, other := env.as(t, entity.RoleVendedor)

	resp := env.do(t, http.MethodPost, "/api/sales", vend, map[string]any{
		"client_name": "Carlos",
		"items":       []map[string]any{{"product_id": p.ID, "quantity": 1, "price_type": "mayor"}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decode[map[string]any](t, resp)["id"].(string)

	resp = env.do(t, http.MethodGet, "/api/sales", other, nil)
	assert.EqualValues(t, 0, decode[map[string]any](t, resp)["total"])

	resp = env.do(t, http.MethodGet, "/api/sales/"+id, other, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestSales_StockInsuficiente(t *testing.T) {
	env := newEnv(t, nil)
	p := env.product(t, "B-1", 1)
	require.NoError(t, env.store.Settings().SetExchangeRate(context.Background(), decimal.NewFromInt(40)))
	_, vend := env.as(t, entity.RoleVendedor)

	resp := env.do(t, http.MethodPost, "/api/sales", vend, map[string]any{
		"client_name": "Carlos",
		"items":       []map[string]any{{"product_id": p.ID, "quantity": 5, "price_type": "cliente"}},
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decode[map[string]string](t, resp)["code"])
}

// ─── Pedidos ─────────────────────────────────────────────────────────────────

func TestOrders_CheckoutYAprobacion(t *testing.T) {
	env := newEnv(t, nil)
	p := env.product(t, "B-1", 5)

	resp := env.do(t, http.MethodPost, "/api/orders", "", map[string]any{
		"client": map[string]string{
			"nombre": "María", "email": "maria@correo.com", "telefono": "0414", "cedula": "V-1",
		},
		"items":   []map[string]any{{"product_id": p.ID, "quantity": 2}},
		"payment": map[string]any{"payer_name": "María", "reference": "123", "amount": "20", "method": "pago movil"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[map[string]any](t, resp)
	assert.Equal(t, order.StatusPendiente, created["status"])
	id := created["id"].(string)

	_, vend := env.as(t, entity.RoleVendedor)
	resp = env.do(t, http.MethodPatch, "/api/orders/"+id+"/status", vend, map[string]string{"status": order.StatusAprobada})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	_, desp := env.as(t, entity.RoleDespacho)
	resp = env.do(t, http.MethodPatch, "/api/orders/"+id+"/status", desp, map[string]string{"status": "Cancelada"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPatch, "/api/orders/"+id+"/status", desp, map[string]string{"status": order.StatusAprobada})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	stored, err := env.store.Products().GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Stock)
}

func TestOrders_SubirComprobante(t *testing.T) {
	env := newEnv(t, nil)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("receipt", "pago.jpg")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("jpeg"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/orders/receipts", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := decode[map[string]string](t, resp)
	require.Len(t, env.storage.paths, 1)
	assert.Equal(t, "https://files.test/"+env.storage.paths[0], out["url"])
}

func TestOrders_AprobarSinStockDevuelve409(t *testing.T) {
	env := newEnv(t, nil)
	p := env.product(t, "B-1", 1)

	resp := env.do(t, http.MethodPost, "/api/orders", "", map[string]any{
		"client": map[string]string{
			"nombre": "María", "email": "maria@correo.com", "telefono": "0414", "cedula": "V-1",
		},
		"items":   []map[string]any{{"product_id": p.ID, "quantity": 4}},
		"payment": map[string]any{"payer_name": "María", "reference": "123", "amount": "40", "method": "pago movil"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decode[map[string]any](t, resp)["id"].(string)

	_, desp := env.as(t, entity.RoleDespacho)
	resp = env.do(t, http.MethodPatch, "/api/orders/"+id+"/status", desp, map[string]string{"status": order.StatusAprobada})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decode[map[string]string](t, resp)["code"])

	stored, err := env.store.Products().GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Stock)

	resp = env.do(t, http.MethodGet, "/api/orders/"+id, desp, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, order.StatusPendiente, decode[map[string]any](t, resp)["status"])
}

// ─── Proveedores ─────────────────────────────────────────────────────────────

func TestProviders_CodigoUnicoYDescripcion(t *testing.T) {
	env := newEnv(t, nil)
	_, admin := env.as(t, entity.RoleAdmin)

	resp := env.do(t, http.MethodPost, "/api/providers", admin, map[string]any{"nombre": "Hafele"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "codigo requerido")
	resp.Body.Close()

	body := map[string]any{"codigo": "PRV-01", "nombre": "Hafele", "descripcion": "Herrajes importados"}
	resp = env.do(t, http.MethodPost, "/api/providers", admin, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[map[string]any](t, resp)
	assert.Equal(t, "PRV-01", created["codigo"])
	assert.Equal(t, "Herrajes importados", created["descripcion"])

	body["nombre"] = "Otro"
	resp = env.do(t, http.MethodPost, "/api/providers", admin, body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestProviders_ResumenYAdjuntos(t *testing.T) {
	env := newEnv(t, nil)
	_, admin := env.as(t, entity.RoleAdmin)

	resp := env.do(t, http.MethodPost, "/api/providers", admin, map[string]any{"codigo": "PRV-01", "nombre": "Grival", "rif": "J-123"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	providerID := decode[map[string]any](t, resp)["id"].(string)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("adjunto", "factura.pdf")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("%PDF"))
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/invoices/attachments", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", admin)
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	url := decode[map[string]string](t, resp)["url"]
	require.Len(t, env.storage.paths, 1)
	assert.Regexp(t, `^adjuntos/\d+_factura\.pdf$`, env.storage.paths[0])

	now := time.Now()
	invoice := map[string]any{
		"provider_id": providerID, "numero": "F-1", "total": "100",
		"issued_at": now, "due_date": now.AddDate(0, 0, 3), "adjunto": "no es url",
	}
	resp = env.do(t, http.MethodPost, "/api/invoices", admin, invoice)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	invoice["adjunto"] = url
	resp = env.do(t, http.MethodPost, "/api/invoices", admin, invoice)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	inv := decode[map[string]any](t, resp)
	assert.Equal(t, url, inv["adjunto"])

	resp = env.do(t, http.MethodPost, "/api/invoices/"+inv["id"].(string)+"/payments", admin, map[string]any{
		"monto": "40", "metodo": "transferencia", "adjunto": "https://files.test/adjuntos/abono.jpg",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	paid := decode[map[string]map[string]any](t, resp)
	assert.Equal(t, "https://files.test/adjuntos/abono.jpg", paid["payment"]["adjunto"])

	_, vend := env.as(t, entity.RoleVendedor)
	resp = env.do(t, http.MethodGet, "/api/providers/summary", vend, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/providers/summary?search=j-123", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sum := decode[map[string]any](t, resp)
	assert.Equal(t, "60", sum["totalDebt"])
	assert.Equal(t, "Grival", sum["topDebtor"])
	assert.EqualValues(t, 1, sum["expiringSoon"])
	require.Len(t, sum["rows"], 1)

	resp = env.do(t, http.MethodGet, "/api/providers/export.xlsx", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "proveedores.xlsx")
	resp.Body.Close()
}

// ─── Settings y usuarios ─────────────────────────────────────────────────────

func TestSettings_LecturaPublicaEscrituraStaff(t *testing.T) {
	env := newEnv(t, nil)
	_, vend := env.as(t, entity.RoleVendedor)
	resp := env.do(t, http.MethodPut, "/api/settings/whatsapp", vend, map[string]string{"whatsappNumber": "+58414"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	_, root := env.as(t, entity.RoleRoot)
	resp = env.do(t, http.MethodPut, "/api/settings/whatsapp", root, map[string]string{"whatsappNumber": "+58414"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/settings/whatsapp", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "+58414", decode[map[string]string](t, resp)["whatsappNumber"])
}

func TestUsers_ComisionSoloRoot(t *testing.T) {
	env := newEnv(t, nil)
	vendID, _ := env.as(t, entity.RoleVendedor)
	_, admin := env.as(t, entity.RoleAdmin)
	_, root := env.as(t, entity.RoleRoot)
	path := "/api/users/" + vendID + "/commission"

	resp := env.do(t, http.MethodPut, path, admin, map[string]any{"comision": "5"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPut, path, root, map[string]any{"comision": "150"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPut, path, root, map[string]any{"comision": "5"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestDashboard_Resumen(t *testing.T) {
	env := newEnv(t, nil)
	env.product(t, "B-1", 1)
	_, admin := env.as(t, entity.RoleAdmin)

	resp := env.do(t, http.MethodGet, "/api/dashboard/summary", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func seedRoleEmail(t *testing.T, store *memory.Store, rol, email string) string {
	t.Helper()
	u, err := auth.NewUser("Usuario", email, "secreto123", rol, decimal.Zero)
	require.NoError(t, err)
	require.NoError(t, store.Users().Create(context.Background(), u))
	return u.ID
}
