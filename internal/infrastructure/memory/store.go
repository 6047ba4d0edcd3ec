// Package memory implementa los puertos de persistencia en memoria.
// Se usa en pruebas y en desarrollo local sin PostgreSQL.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/internal/domain"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

// Store guarda todas las colecciones bajo un mismo mutex.
type Store struct {
	mu        sync.RWMutex
	txMu      sync.Mutex
	products  map[string]entity.Product
	users     map[string]entity.User
	legacy    map[string]entity.RoleFields
	sales     map[string]entity.Sale
	orders    map[string]entity.StoreOrder
	providers map[string]entity.Provider
	provOrder map[string]entity.ProviderOrder
	invoices  map[string]entity.Invoice
	payments  map[string]entity.Payment
	settings  map[string]string
	orderSeq  int64

	// FailRoles fuerza un error en las lecturas de rol (pruebas de degradación).
	FailRoles bool
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:  make(map[string]entity.Product),
		users:     make(map[string]entity.User),
		legacy:    make(map[string]entity.RoleFields),
		sales:     make(map[string]entity.Sale),
		orders:    make(map[string]entity.StoreOrder),
		providers: make(map[string]entity.Provider),
		provOrder: make(map[string]entity.ProviderOrder),
		invoices:  make(map[string]entity.Invoice),
		payments:  make(map[string]entity.Payment),
		settings:  make(map[string]string),
	}
}

// Products repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// RoleFields lectura de roles en users y colección legada.
func (s *Store) RoleFields() *RoleFieldsRepo { return &RoleFieldsRepo{s: s} }

// Sales repositorio de ventas.
func (s *Store) Sales() *SaleRepo { return &SaleRepo{s: s} }

// Orders repositorio de pedidos de la tienda.
func (s *Store) Orders() *StoreOrderRepo { return &StoreOrderRepo{s: s} }

// Providers repositorio de proveedores.
func (s *Store) Providers() *ProviderRepo { return &ProviderRepo{s: s} }

// Invoices repositorio de facturas.
func (s *Store) Invoices() *InvoiceRepo { return &InvoiceRepo{s: s} }

// Payments repositorio de abonos.
func (s *Store) Payments() *PaymentRepo { return &PaymentRepo{s: s} }

// Settings repositorio de configuración.
func (s *Store) Settings() *SettingsRepo { return &SettingsRepo{s: s} }

// Analytics conteos del tablero.
func (s *Store) Analytics() *AnalyticsRepo { return &AnalyticsRepo{s: s} }

// PutLegacyUser registra un documento de la colección legada.
func (s *Store) PutLegacyUser(id string, fields entity.RoleFields) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.legacy[id] = fields
}

// AddProviderOrder registra un pedido a proveedor.
func (s *Store) AddProviderOrder(o entity.ProviderOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.provOrder[o.ID] = o
}

// ─── Transacciones ───────────────────────────────────────────────────────────

var _ ports.TxRunner = (*Store)(nil)

// Run serializa las transacciones y restaura el estado previo si fn falla.
func (s *Store) Run(ctx context.Context, fn func(repos ports.TxRepos) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	err := fn(ports.TxRepos{
		Products: s.Products(),
		Sales:    s.Sales(),
		Orders:   s.Orders(),
		Invoices: s.Invoices(),
		Payments: s.Payments(),
	})
	if err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	products map[string]entity.Product
	sales    map[string]entity.Sale
	orders   map[string]entity.StoreOrder
	invoices map[string]entity.Invoice
	payments map[string]entity.Payment
	orderSeq int64
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		products: cloneMap(s.products),
		sales:    cloneMap(s.sales),
		orders:   cloneMap(s.orders),
		invoices: cloneMap(s.invoices),
		payments: cloneMap(s.payments),
		orderSeq: s.orderSeq,
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snap.products
	s.sales = snap.sales
	s.orders = snap.orders
	s.invoices = snap.invoices
	s.payments = snap.payments
	s.orderSeq = snap.orderSeq
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ─── Productos ───────────────────────────────────────────────────────────────

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct{ s *Store }

func copyProduct(p entity.Product) *entity.Product {
	p.Imagenes = append([]string(nil), p.Imagenes...)
	return &p
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.products {
		if existing.Codigo == p.Codigo {
			return domain.ErrDuplicate
		}
	}
	r.s.products[p.ID] = *copyProduct(*p)
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return copyProduct(p), nil
}

func (r *ProductRepo) GetByCodigo(_ context.Context, codigo string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.Codigo == codigo {
			return copyProduct(p), nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[p.ID] = *copyProduct(*p)
	return nil
}

func (r *ProductRepo) UpdateStock(_ context.Context, id string, stock int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	p.UpdatedAt = time.Now()
	r.s.products[id] = p
	return nil
}

func (r *ProductRepo) UpdateImages(_ context.Context, id string, images []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Imagenes = append([]string(nil), images...)
	r.s.products[id] = p
	return nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, copyProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	return nil
}

// ─── Usuarios ────────────────────────────────────────────────────────────────

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) UpdateCommission(_ context.Context, id string, rate decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Comision = rate
	r.s.users[id] = u
	return nil
}

func (r *UserRepo) SetResetToken(_ context.Context, id, token string, expires time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.ResetToken = token
	u.ResetExpires = &expires
	r.s.users[id] = u
	return nil
}

func (r *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	return r.ListByRole(context.Background(), "")
}

func (r *UserRepo) ListByRole(_ context.Context, role string) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.User
	for _, u := range r.s.users {
		if role != "" && entity.NormalizeRole(u.Rol, "") != role {
			continue
		}
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

var _ repository.RoleFieldsRepository = (*RoleFieldsRepo)(nil)

// RoleFieldsRepo lee el rol de users o de la colección legada.
type RoleFieldsRepo struct{ s *Store }

func (r *RoleFieldsRepo) FindInUsers(_ context.Context, id string) (entity.RoleFields, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailRoles {
		return entity.RoleFields{}, false, errStoreUnavailable
	}
	u, ok := r.s.users[id]
	if !ok {
		return entity.RoleFields{}, false, nil
	}
	return entity.RoleFields{Rol: u.Rol}, true, nil
}

func (r *RoleFieldsRepo) FindInLegacy(_ context.Context, id string) (entity.RoleFields, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.FailRoles {
		return entity.RoleFields{}, false, errStoreUnavailable
	}
	f, ok := r.s.legacy[id]
	return f, ok, nil
}

// ─── Ventas ──────────────────────────────────────────────────────────────────

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo ventas en memoria.
type SaleRepo struct{ s *Store }

func copySale(v entity.Sale) *entity.Sale {
	v.Items = append([]entity.SaleItem(nil), v.Items...)
	return &v
}

func (r *SaleRepo) NextOrderNumber(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orderSeq++
	return r.s.orderSeq, nil
}

func (r *SaleRepo) Create(_ context.Context, v *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sales[v.ID] = *copySale(*v)
	return nil
}

func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	return copySale(v), nil
}

func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return r.ListBySeller(ctx, "")
}

func (r *SaleRepo) ListBySeller(_ context.Context, sellerID string) ([]*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Sale
	for _, v := range r.s.sales {
		if sellerID != "" && v.SellerID != sellerID {
			continue
		}
		out = append(out, copySale(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderNumber < out[j].OrderNumber })
	return out, nil
}

// ─── Pedidos de la tienda ────────────────────────────────────────────────────

var _ repository.StoreOrderRepository = (*StoreOrderRepo)(nil)

// StoreOrderRepo pedidos en memoria.
type StoreOrderRepo struct{ s *Store }

func copyOrder(o entity.StoreOrder) *entity.StoreOrder {
	o.Items = append([]entity.OrderItem(nil), o.Items...)
	return &o
}

func (r *StoreOrderRepo) Create(_ context.Context, o *entity.StoreOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orders[o.ID] = *copyOrder(*o)
	return nil
}

func (r *StoreOrderRepo) GetByID(_ context.Context, id string) (*entity.StoreOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return copyOrder(o), nil
}

func (r *StoreOrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.StoreOrder, error) {
	return r.GetByID(ctx, id)
}

func (r *StoreOrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	r.s.orders[id] = o
	return nil
}

func (r *StoreOrderRepo) List(_ context.Context) ([]*entity.StoreOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.StoreOrder, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		out = append(out, copyOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ─── Proveedores ─────────────────────────────────────────────────────────────

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo proveedores en memoria.
type ProviderRepo struct{ s *Store }

func copyProvider(p entity.Provider) *entity.Provider {
	p.Contactos = append([]entity.ProviderContact(nil), p.Contactos...)
	return &p
}

// codigoTaken indica si otro proveedor ya usa el código. Requiere el lock tomado.
func (r *ProviderRepo) codigoTaken(id, codigo string) bool {
	for _, existing := range r.s.providers {
		if existing.ID != id && existing.Codigo == codigo {
			return true
		}
	}
	return false
}

func (r *ProviderRepo) Create(_ context.Context, p *entity.Provider) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.codigoTaken(p.ID, p.Codigo) {
		return domain.ErrDuplicate
	}
	r.s.providers[p.ID] = *copyProvider(*p)
	return nil
}

func (r *ProviderRepo) GetByID(_ context.Context, id string) (*entity.Provider, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.providers[id]
	if !ok {
		return nil, nil
	}
	return copyProvider(p), nil
}

func (r *ProviderRepo) Update(_ context.Context, p *entity.Provider) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.providers[p.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.codigoTaken(p.ID, p.Codigo) {
		return domain.ErrDuplicate
	}
	r.s.providers[p.ID] = *copyProvider(*p)
	return nil
}

func (r *ProviderRepo) List(_ context.Context) ([]*entity.Provider, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Provider, 0, len(r.s.providers))
	for _, p := range r.s.providers {
		out = append(out, copyProvider(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *ProviderRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.providers, id)
	return nil
}

func (r *ProviderRepo) ListOrders(_ context.Context, providerID string) ([]*entity.ProviderOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.ProviderOrder
	for _, o := range r.s.provOrder {
		if o.ProviderID == providerID {
			o := o
			out = append(out, &o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	return out, nil
}

// ─── Facturas y abonos ───────────────────────────────────────────────────────

var (
	_ repository.InvoiceRepository = (*InvoiceRepo)(nil)
	_ repository.PaymentRepository = (*PaymentRepo)(nil)
)

// InvoiceRepo facturas de proveedor en memoria.
type InvoiceRepo struct{ s *Store }

func (r *InvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.invoices[inv.ID] = *inv
	return nil
}

func (r *InvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r *InvoiceRepo) GetForUpdate(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.GetByID(ctx, id)
}

func (r *InvoiceRepo) UpdatePayment(_ context.Context, inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.invoices[inv.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.PaidAmount = inv.PaidAmount
	cur.Estado = inv.Estado
	cur.UpdatedAt = time.Now()
	r.s.invoices[inv.ID] = cur
	return nil
}

func (r *InvoiceRepo) ListByProvider(_ context.Context, providerID string) ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Invoice
	for _, inv := range r.s.invoices {
		if inv.ProviderID == providerID {
			inv := inv
			out = append(out, &inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (r *InvoiceRepo) List(_ context.Context) ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Invoice, 0, len(r.s.invoices))
	for _, inv := range r.s.invoices {
		inv := inv
		out = append(out, &inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

// PaymentRepo abonos en memoria.
type PaymentRepo struct{ s *Store }

func (r *PaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.payments[p.ID] = *p
	return nil
}

func (r *PaymentRepo) ListByInvoice(_ context.Context, invoiceID string) ([]*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Payment
	for _, p := range r.s.payments {
		if p.InvoiceID == invoiceID {
			p := p
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.Before(out[j].Fecha) })
	return out, nil
}

// ─── Configuración ───────────────────────────────────────────────────────────

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo configuración global en memoria.
type SettingsRepo struct{ s *Store }

func (r *SettingsRepo) GetExchangeRate(_ context.Context) (decimal.Decimal, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	raw, ok := r.s.settings[entity.SettingExchangeRate]
	if !ok {
		return decimal.Zero, false, nil
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, err
	}
	return rate, true, nil
}

func (r *SettingsRepo) SetExchangeRate(_ context.Context, rate decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.settings[entity.SettingExchangeRate] = rate.String()
	return nil
}

func (r *SettingsRepo) GetWhatsapp(_ context.Context) (string, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n, ok := r.s.settings[entity.SettingWhatsappNumber]
	return n, ok, nil
}

func (r *SettingsRepo) SetWhatsapp(_ context.Context, number string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.settings[entity.SettingWhatsappNumber] = number
	return nil
}

// ─── Analítica ───────────────────────────────────────────────────────────────

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo conteos en memoria.
type AnalyticsRepo struct{ s *Store }

func (r *AnalyticsRepo) CountSales(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.sales)), nil
}

func (r *AnalyticsRepo) CountProducts(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.products)), nil
}

func (r *AnalyticsRepo) CountUsers(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.users)), nil
}

func (r *AnalyticsRepo) CountProviders(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.providers)), nil
}
