package orders

import (
	"context"
	"fmt"
	"path"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/internal/domain"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/domain/order"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

// UseCase checkout de la tienda y gestión de estados de pedidos.
type UseCase struct {
	tx       ports.TxRunner
	orders   repository.StoreOrderRepository
	products repository.ProductRepository
	carts    ports.CartStore
	storage  ports.BlobStorage
	log      zerolog.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso. carts y storage pueden ser nil.
func NewUseCase(
	tx ports.TxRunner,
	orders repository.StoreOrderRepository,
	products repository.ProductRepository,
	carts ports.CartStore,
	storage ports.BlobStorage,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{tx: tx, orders: orders, products: products, carts: carts, storage: storage, log: log, now: time.Now}
}

// Checkout crea el pedido en estado Pendiente con los precios actuales del catálogo.
// Si Items viene vacío se usan los del carrito CartID; el carrito se vacía al terminar.
func (uc *UseCase) Checkout(ctx context.Context, in dto.CheckoutRequest) (*dto.OrderResponse, error) {
	lines, err := uc.requestedLines(ctx, in)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Payment.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	items := make([]entity.OrderItem, 0, len(lines))
	for _, l := range lines {
		p, err := uc.products.GetByID(ctx, l.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, l.ProductID)
		}
		items = append(items, entity.OrderItem{ProductID: p.ID, Nombre: p.Nombre, Precio: p.Precio, Quantity: l.Quantity})
	}

	now := uc.now()
	o := &entity.StoreOrder{
		ID:     uuid.New().String(),
		Client: entity.OrderClient(in.Client),
		Items:  items,
		Payment: entity.PaymentProof{
			PayerName:  in.Payment.PayerName,
			Reference:  in.Payment.Reference,
			Amount:     in.Payment.Amount,
			Method:     in.Payment.Method,
			ReceiptURL: in.Payment.ReceiptURL,
		},
		Status:    order.StatusPendiente,
		CreatedAt: now,
		UpdatedAt: now,
	}
	o.Total = o.ItemsTotal()
	if err := uc.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	if in.CartID != "" && uc.carts != nil {
		if err := uc.carts.Delete(ctx, in.CartID); err != nil {
			uc.log.Warn().Err(err).Str("order_id", o.ID).Str("cart_id", in.CartID).Msg("no se pudo vaciar el carrito")
		}
	}
	return ToOrderResponse(o), nil
}

func (uc *UseCase) requestedLines(ctx context.Context, in dto.CheckoutRequest) ([]dto.CheckoutItem, error) {
	if len(in.Items) > 0 || in.CartID == "" || uc.carts == nil {
		return in.Items, nil
	}
	c, err := uc.carts.Get(ctx, in.CartID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CheckoutItem, 0, len(c.Items))
	for _, it := range c.Items {
		out = append(out, dto.CheckoutItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return out, nil
}

// UploadReceipt guarda el comprobante y devuelve su URL pública.
func (uc *UseCase) UploadReceipt(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if uc.storage == nil {
		return "", domain.ErrNotConfigured
	}
	if len(data) == 0 {
		return "", domain.ErrInvalidInput
	}
	key := fmt.Sprintf("receipts/%d_%s", uc.now().UnixMilli(), path.Base(filename))
	url, err := uc.storage.Upload(ctx, key, contentType, data)
	if err != nil {
		uc.log.Error().Err(err).Str("key", key).Msg("falló la subida del comprobante")
		return "", err
	}
	return url, nil
}

// UpdateStatus cambia el estado del pedido. Al pasar a Aprobada desde otro estado descuenta
// el stock de cada producto en la misma transacción, con las filas bloqueadas.
// Los productos que ya no existen se omiten.
func (uc *UseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.OrderResponse, error) {
	var updated *entity.StoreOrder
	err := uc.tx.Run(ctx, func(repos ports.TxRepos) error {
		o, err := repos.Orders.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		tr, err := order.Plan(o.Status, status)
		if err != nil {
			return err
		}
		if tr.DecrementStock {
			if err := decrementStock(ctx, repos.Products, o.Items, uc.log); err != nil {
				return err
			}
		}
		if err := repos.Orders.UpdateStatus(ctx, o.ID, tr.To); err != nil {
			return err
		}
		o.Status = tr.To
		o.UpdatedAt = uc.now()
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(updated), nil
}

func decrementStock(ctx context.Context, products repository.ProductRepository, items []entity.OrderItem, log zerolog.Logger) error {
	qty := make(map[string]int, len(items))
	for _, it := range items {
		qty[it.ProductID] += it.Quantity
	}
	ids := make([]string, 0, len(qty))
	for id := range qty {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, pid := range ids {
		p, err := products.GetForUpdate(ctx, pid)
		if err != nil {
			return err
		}
		if p == nil {
			log.Warn().Str("product_id", pid).Msg("producto del pedido no existe; se omite")
			continue
		}
		if qty[pid] > p.Stock {
			return fmt.Errorf("%w: %s (disponible %d)", domain.ErrInsufficientStock, p.Codigo, p.Stock)
		}
		if err := products.UpdateStock(ctx, pid, p.Stock-qty[pid]); err != nil {
			return err
		}
	}
	return nil
}

// Get un pedido por id.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return ToOrderResponse(o), nil
}

// List pedidos del más reciente al más antiguo.
func (uc *UseCase) List(ctx context.Context) ([]dto.OrderResponse, error) {
	list, err := uc.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *ToOrderResponse(o))
	}
	return out, nil
}

// ToOrderResponse convierte la entidad a DTO.
func ToOrderResponse(o *entity.StoreOrder) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse(it))
	}
	return &dto.OrderResponse{
		ID:     o.ID,
		Client: dto.CheckoutClient(o.Client),
		Items:  items,
		Payment: dto.CheckoutPayment{
			PayerName:  o.Payment.PayerName,
			Reference:  o.Payment.Reference,
			Amount:     o.Payment.Amount,
			Method:     o.Payment.Method,
			ReceiptURL: o.Payment.ReceiptURL,
		},
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
