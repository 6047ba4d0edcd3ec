// Package analytics contiene los casos de uso de reportes: tablero, inventario,
// comisiones y exportaciones.
package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/domain/reporting"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

// DashboardUseCase genera los totales del tablero principal.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// GetSummary pide los cuatro conteos en paralelo; si uno falla, falla el resumen.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	var out dto.DashboardSummaryDTO
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := uc.analyticsRepo.CountSales(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: ventas: %w", err)
		}
		out.Sales = n
		return nil
	})
	g.Go(func() error {
		n, err := uc.analyticsRepo.CountProducts(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: productos: %w", err)
		}
		out.Products = n
		return nil
	})
	g.Go(func() error {
		n, err := uc.analyticsRepo.CountUsers(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: usuarios: %w", err)
		}
		out.Users = n
		return nil
	})
	g.Go(func() error {
		n, err := uc.analyticsRepo.CountProviders(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: proveedores: %w", err)
		}
		out.Providers = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	out.DateLabel = monthLabel(uc.now())
	return &out, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", reporting.MonthNames[t.Month()-1], t.Year())
}
