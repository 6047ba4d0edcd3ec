package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/carpihogar-api/internal/application/analytics"
	"github.com/jhoicas/carpihogar-api/internal/application/ports"
)

// ReportHandler reportes de comisiones.
type ReportHandler struct {
	commissions *appanalytics.CommissionUseCase
	exportUC    *appanalytics.ExportUseCase
	exporters   Exporters
}

// NewReportHandler construye el handler.
func NewReportHandler(commissions *appanalytics.CommissionUseCase, exportUC *appanalytics.ExportUseCase, exporters Exporters) *ReportHandler {
	return &ReportHandler{commissions: commissions, exportUC: exportUC, exporters: exporters}
}

// Commissions godoc
// @Summary      Reporte de comisiones por vendedor
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        month   query  int     false  "Mes (1-12), por defecto el actual"
// @Param        year    query  int     false  "Año, por defecto el actual"
// @Param        search  query  string  false  "Filtro por nombre del vendedor"
// @Success      200  {object}  dto.CommissionReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/commissions [get]
func (h *ReportHandler) Commissions(c *fiber.Ctx) error {
	out, err := h.commissions.Report(c.Context(), periodFromQuery(c), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MyCommissions comisiones por venta del vendedor autenticado.
// GET /api/reports/commissions/me
func (h *ReportHandler) MyCommissions(c *fiber.Ctx) error {
	out, err := h.commissions.Mine(c.Context(), GetUserID(c), periodFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportCommissions GET /api/reports/commissions/export.:format (pdf | xlsx)
func (h *ReportHandler) ExportCommissions(c *fiber.Ctx) error {
	period, search := periodFromQuery(c), c.Query("search")
	return export(c, h.exporters, "comisiones", func(ctx context.Context, r ports.TableRenderer) ([]byte, error) {
		return h.exportUC.Commissions(ctx, period, search, r)
	})
}

func periodFromQuery(c *fiber.Ctx) appanalytics.Period {
	return appanalytics.Period{Month: c.QueryInt("month", 0), Year: c.QueryInt("year", 0)}
}
