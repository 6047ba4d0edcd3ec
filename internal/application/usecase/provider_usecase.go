package usecase

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/internal/domain"
	"github.com/jhoicas/carpihogar-api/internal/domain/catalog"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/domain/reporting"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

// ProviderUseCase proveedores, sus facturas y abonos.
type ProviderUseCase struct {
	providers repository.ProviderRepository
	invoices  repository.InvoiceRepository
	payments  repository.PaymentRepository
	tx        ports.TxRunner
	storage   ports.BlobStorage
	log       zerolog.Logger
	now       func() time.Time
}

// NewProviderUseCase construye el caso de uso. storage puede ser nil: los adjuntos quedan deshabilitados.
func NewProviderUseCase(
	providers repository.ProviderRepository,
	invoices repository.InvoiceRepository,
	payments repository.PaymentRepository,
	tx ports.TxRunner,
	storage ports.BlobStorage,
	log zerolog.Logger,
) *ProviderUseCase {
	return &ProviderUseCase{
		providers: providers,
		invoices:  invoices,
		payments:  payments,
		tx:        tx,
		storage:   storage,
		log:       log,
		now:       time.Now,
	}
}

// CanSeeInternalNotes solo root y admin leen o escriben notas internas.
func CanSeeInternalNotes(role string) bool {
	return role == entity.RoleRoot || role == entity.RoleAdmin
}

// Create registra un proveedor. Las notas internas se descartan si el rol no tiene acceso.
func (uc *ProviderUseCase) Create(ctx context.Context, role string, in dto.ProviderRequest) (*dto.ProviderResponse, error) {
	now := uc.now()
	p := &entity.Provider{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyProvider(p, role, in)
	if err := uc.providers.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProviderResponse(p, role), nil
}

// Update reemplaza los datos del proveedor. Las notas internas solo cambian con rol root/admin.
func (uc *ProviderUseCase) Update(ctx context.Context, role, id string, in dto.ProviderRequest) (*dto.ProviderResponse, error) {
	p, err := uc.providers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	applyProvider(p, role, in)
	p.UpdatedAt = uc.now()
	if err := uc.providers.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProviderResponse(p, role), nil
}

// List proveedores visibles para el rol.
func (uc *ProviderUseCase) List(ctx context.Context, role string) ([]dto.ProviderResponse, error) {
	list, err := uc.providers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProviderResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProviderResponse(p, role))
	}
	return out, nil
}

// Summary deuda total, por proveedor, mayor deudor y facturas a vencer en 7 días.
func (uc *ProviderUseCase) Summary(ctx context.Context, search string) (*reporting.ProviderSummary, error) {
	providers, err := uc.providers.List(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	sum := reporting.ProviderBalances(providers, invoices, uc.now(), search, catalog.Normalize)
	return &sum, nil
}

// ExportSummary tabla Código, Nombre, RIF, Deuda de los proveedores filtrados.
func (uc *ProviderUseCase) ExportSummary(ctx context.Context, search string, r ports.TableRenderer) ([]byte, error) {
	sum, err := uc.Summary(ctx, search)
	if err != nil {
		return nil, err
	}
	t := ports.Table{
		Title:   "Resumen Proveedores",
		Headers: []string{"Código", "Nombre", "RIF", "Deuda"},
	}
	for _, row := range sum.Rows {
		t.Rows = append(t.Rows, []string{row.Codigo, row.Nombre, row.RIF, row.Debt.StringFixed(2)})
	}
	return r.Render(t)
}

// UploadAttachment guarda el archivo de una factura o abono y devuelve su URL pública.
func (uc *ProviderUseCase) UploadAttachment(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if uc.storage == nil {
		return "", domain.ErrNotConfigured
	}
	if len(data) == 0 {
		return "", domain.ErrInvalidInput
	}
	key := fmt.Sprintf("adjuntos/%d_%s", uc.now().UnixMilli(), path.Base(filename))
	url, err := uc.storage.Upload(ctx, key, contentType, data)
	if err != nil {
		uc.log.Error().Err(err).Str("key", key).Msg("falló la subida del adjunto")
		return "", err
	}
	return url, nil
}

// Detail proveedor con sus facturas y pedidos.
func (uc *ProviderUseCase) Detail(ctx context.Context, role, id string) (*dto.ProviderDetailResponse, error) {
	p, err := uc.providers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	invs, err := uc.invoices.ListByProvider(ctx, id)
	if err != nil {
		return nil, err
	}
	orders, err := uc.providers.ListOrders(ctx, id)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	out := &dto.ProviderDetailResponse{
		Provider: *toProviderResponse(p, role),
		Invoices: make([]dto.InvoiceResponse, 0, len(invs)),
		Orders:   make([]dto.ProviderOrderResponse, 0, len(orders)),
	}
	for _, inv := range invs {
		out.Invoices = append(out.Invoices, toInvoiceResponse(inv, now))
	}
	for _, o := range orders {
		out.Orders = append(out.Orders, dto.ProviderOrderResponse{ID: o.ID, Descripcion: o.Descripcion, Estado: o.Estado, Fecha: o.Fecha})
	}
	return out, nil
}

// Delete elimina un proveedor.
func (uc *ProviderUseCase) Delete(ctx context.Context, id string) error {
	return uc.providers.Delete(ctx, id)
}

// CreateInvoice registra una factura del proveedor en estado Pendiente.
func (uc *ProviderUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if !in.Total.IsPositive() || in.DueDate.Before(in.IssuedAt) {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.providers.GetByID(ctx, in.ProviderID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	inv := &entity.Invoice{
		ID:         uuid.New().String(),
		ProviderID: in.ProviderID,
		Numero:     in.Numero,
		Total:      in.Total,
		Estado:     entity.InvoiceStatusPendiente,
		IssuedAt:   in.IssuedAt,
		DueDate:    in.DueDate,
		Adjunto:    in.Adjunto,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	res := toInvoiceResponse(inv, now)
	return &res, nil
}

// RegisterPayment inserta el abono y actualiza monto pagado y estado de la factura
// en una sola transacción, con la fila de la factura bloqueada.
func (uc *ProviderUseCase) RegisterPayment(ctx context.Context, userID, invoiceID string, in dto.RegisterPaymentRequest) (*dto.RegisterPaymentResponse, error) {
	if !in.Monto.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	fecha := now
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	var (
		inv     *entity.Invoice
		payment *entity.Payment
	)
	err := uc.tx.Run(ctx, func(repos ports.TxRepos) error {
		var err error
		inv, err = repos.Invoices.GetForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		payment = &entity.Payment{
			ID:         uuid.New().String(),
			InvoiceID:  inv.ID,
			Monto:      in.Monto,
			Metodo:     in.Metodo,
			Referencia: in.Referencia,
			Fecha:      fecha,
			Adjunto:    in.Adjunto,
			CreatedBy:  userID,
			CreatedAt:  now,
		}
		if err := repos.Payments.Create(ctx, payment); err != nil {
			return err
		}
		inv.ApplyPayment(in.Monto)
		return repos.Invoices.UpdatePayment(ctx, inv)
	})
	if err != nil {
		return nil, err
	}
	return &dto.RegisterPaymentResponse{
		Payment: toPaymentResponse(payment),
		Invoice: toInvoiceResponse(inv, now),
	}, nil
}

// ListPayments historial de abonos de la factura.
func (uc *ProviderUseCase) ListPayments(ctx context.Context, invoiceID string) ([]dto.PaymentResponse, error) {
	inv, err := uc.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.payments.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPaymentResponse(p))
	}
	return out, nil
}

func applyProvider(p *entity.Provider, role string, in dto.ProviderRequest) {
	p.Codigo = in.Codigo
	p.Nombre = in.Nombre
	p.RIF = in.RIF
	p.Direccion = in.Direccion
	p.Telefono = in.Telefono
	p.Email = in.Email
	p.Descripcion = in.Descripcion
	p.Contactos = make([]entity.ProviderContact, 0, len(in.Contactos))
	for _, c := range in.Contactos {
		p.Contactos = append(p.Contactos, entity.ProviderContact(c))
	}
	if in.NotasInternas != nil && CanSeeInternalNotes(role) {
		p.NotasInternas = *in.NotasInternas
	}
}

func toProviderResponse(p *entity.Provider, role string) *dto.ProviderResponse {
	out := &dto.ProviderResponse{
		ID:          p.ID,
		Codigo:      p.Codigo,
		Nombre:      p.Nombre,
		RIF:         p.RIF,
		Direccion:   p.Direccion,
		Telefono:    p.Telefono,
		Email:       p.Email,
		Descripcion: p.Descripcion,
		Contactos:   make([]dto.ProviderContactDTO, 0, len(p.Contactos)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, c := range p.Contactos {
		out.Contactos = append(out.Contactos, dto.ProviderContactDTO(c))
	}
	if CanSeeInternalNotes(role) {
		notes := p.NotasInternas
		out.NotasInternas = &notes
	}
	return out
}

func toInvoiceResponse(inv *entity.Invoice, now time.Time) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:          inv.ID,
		ProviderID:  inv.ProviderID,
		Numero:      inv.Numero,
		Total:       inv.Total,
		PaidAmount:  inv.PaidAmount,
		Balance:     inv.Balance(),
		Estado:      inv.Estado,
		IssuedAt:    inv.IssuedAt,
		DueDate:     inv.DueDate,
		Overdue:     inv.IsOverdue(now),
		DaysOverdue: inv.DaysOverdue(now),
		Adjunto:     inv.Adjunto,
	}
}

func toPaymentResponse(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:         p.ID,
		InvoiceID:  p.InvoiceID,
		Monto:      p.Monto,
		Metodo:     p.Metodo,
		Referencia: p.Referencia,
		Fecha:      p.Fecha,
		Adjunto:    p.Adjunto,
		CreatedBy:  p.CreatedBy,
	}
}
