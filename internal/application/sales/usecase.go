package sales

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/internal/domain"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

// RateSource tasa de cambio vigente.
type RateSource interface {
	ExchangeRate(ctx context.Context) (decimal.Decimal, bool, error)
}

// UseCase registro y consulta de ventas de mostrador.
type UseCase struct {
	tx    ports.TxRunner
	sales repository.SaleRepository
	users repository.UserRepository
	rates RateSource
	log   zerolog.Logger
	now   func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(tx ports.TxRunner, sales repository.SaleRepository, users repository.UserRepository, rates RateSource, log zerolog.Logger) *UseCase {
	return &UseCase{tx: tx, sales: sales, users: users, rates: rates, log: log, now: time.Now}
}

// Create registra la venta en una sola transacción: bloquea cada producto, verifica stock,
// descuenta, reserva el número de orden e inserta la venta. Si algo falla no queda nada escrito.
func (uc *UseCase) Create(ctx context.Context, sellerID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	qty := make(map[string]int, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 || !entity.IsValidPriceType(it.PriceType) {
			return nil, domain.ErrInvalidInput
		}
		qty[it.ProductID] += it.Quantity
	}

	rate, ok, err := uc.rates.ExchangeRate(ctx)
	if err != nil {
		return nil, err
	}
	if !ok || !rate.IsPositive() {
		return nil, domain.ErrNoExchangeRate
	}

	seller, err := uc.users.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	sellerName := ""
	if seller != nil {
		sellerName = seller.Nombre
	}

	// Orden fijo de bloqueo para evitar deadlocks entre ventas concurrentes.
	ids := make([]string, 0, len(qty))
	for id := range qty {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sale *entity.Sale
	err = uc.tx.Run(ctx, func(repos ports.TxRepos) error {
		locked := make(map[string]*entity.Product, len(ids))
		for _, id := range ids {
			p, err := repos.Products.GetForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
			}
			if qty[id] > p.Stock {
				return fmt.Errorf("%w: %s (disponible %d)", domain.ErrInsufficientStock, p.Codigo, p.Stock)
			}
			locked[id] = p
		}

		items := make([]entity.SaleItem, 0, len(in.Items))
		for _, it := range in.Items {
			items = append(items, entity.NewSaleItem(locked[it.ProductID], it.Quantity, it.PriceType, rate))
		}
		for _, id := range ids {
			if err := repos.Products.UpdateStock(ctx, id, locked[id].Stock-qty[id]); err != nil {
				return err
			}
		}

		n, err := repos.Sales.NextOrderNumber(ctx)
		if err != nil {
			return err
		}
		sale = &entity.Sale{
			ID:           uuid.New().String(),
			OrderNumber:  entity.FormatOrderNumber(n),
			SellerID:     sellerID,
			SellerName:   sellerName,
			ClientName:   in.ClientName,
			ClientID:     in.ClientID,
			ClientPhone:  in.ClientPhone,
			ClientAddr:   in.ClientAddr,
			Items:        items,
			ExchangeRate: rate,
			TotalBs:      entity.SumSubtotals(items),
			CreatedAt:    uc.now(),
		}
		return repos.Sales.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("sale_id", sale.ID).Str("order_number", sale.OrderNumber).Msg("venta registrada")
	return ToSaleResponse(sale), nil
}

// Get una venta por id.
func (uc *UseCase) Get(ctx context.Context, id string) (*dto.SaleResponse, error) {
	s, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return ToSaleResponse(s), nil
}

// List ventas ordenadas por número de orden. sellerID vacío trae todas.
func (uc *UseCase) List(ctx context.Context, sellerID string) ([]dto.SaleResponse, error) {
	var (
		list []*entity.Sale
		err  error
	)
	if sellerID == "" {
		list, err = uc.sales.List(ctx)
	} else {
		list, err = uc.sales.ListBySeller(ctx, sellerID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *ToSaleResponse(s))
	}
	return out, nil
}

// ToSaleResponse convierte la entidad a DTO.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Codigo:    it.Codigo,
			Nombre:    it.Nombre,
			Quantity:  it.Quantity,
			PriceType: it.PriceType,
			Price:     it.Price,
			PriceBs:   it.PriceBs,
			Subtotal:  it.Subtotal,
		})
	}
	return &dto.SaleResponse{
		ID:           s.ID,
		OrderNumber:  s.OrderNumber,
		SellerID:     s.SellerID,
		SellerName:   s.SellerName,
		ClientName:   s.ClientName,
		ClientID:     s.ClientID,
		ClientPhone:  s.ClientPhone,
		ClientAddr:   s.ClientAddr,
		Items:        items,
		ExchangeRate: s.ExchangeRate,
		TotalBs:      s.TotalBs,
		CreatedAt:    s.CreatedAt,
	}
}
