package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/domain"
	"github.com/jhoicas/carpihogar-api/internal/domain/catalog"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/domain/reporting"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

// CommissionUseCase reportes de comisiones de vendedores.
type CommissionUseCase struct {
	users repository.UserRepository
	sales repository.SaleRepository
	now   func() time.Time
}

// NewCommissionUseCase construye el caso de uso.
func NewCommissionUseCase(users repository.UserRepository, sales repository.SaleRepository) *CommissionUseCase {
	return &CommissionUseCase{users: users, sales: sales, now: time.Now}
}

// Period mes y año del reporte; ceros significan el mes en curso.
type Period struct {
	Month int
	Year  int
}

func (uc *CommissionUseCase) resolve(p Period) (Period, error) {
	now := uc.now()
	if p.Month == 0 {
		p.Month = int(now.Month())
	}
	if p.Year == 0 {
		p.Year = now.Year()
	}
	if p.Month < 1 || p.Month > 12 || p.Year < 2000 {
		return p, domain.ErrInvalidInput
	}
	return p, nil
}

// Report una fila por vendedor con ventas, total y comisión del período.
func (uc *CommissionUseCase) Report(ctx context.Context, period Period, search string) (*dto.CommissionReportDTO, error) {
	period, err := uc.resolve(period)
	if err != nil {
		return nil, err
	}
	vendors, err := uc.users.ListByRole(ctx, entity.RoleVendedor)
	if err != nil {
		return nil, err
	}
	sales, err := uc.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := reporting.CommissionReport(vendors, sales, period.Month, period.Year, search, catalog.Normalize)
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.CommissionTotal)
	}
	return &dto.CommissionReportDTO{Month: period.Month, Year: period.Year, Rows: rows, Total: total}, nil
}

// Mine comisiones por venta del vendedor indicado.
func (uc *CommissionUseCase) Mine(ctx context.Context, sellerID string, period Period) (*dto.MyCommissionsDTO, error) {
	period, err := uc.resolve(period)
	if err != nil {
		return nil, err
	}
	seller, err := uc.users.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrUserNotFound
	}
	sales, err := uc.sales.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	own := reporting.FilterSales(sales, reporting.SalesFilter{SellerID: sellerID, Month: period.Month, Year: period.Year})
	rows, total := reporting.SellerCommissions(own, seller.Comision)
	return &dto.MyCommissionsDTO{
		Month: period.Month,
		Year:  period.Year,
		Rate:  seller.Comision,
		Sales: rows,
		Total: total,
	}, nil
}
