package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/application/ports"
)

// Exporters renderizadores disponibles para /export.:format.
type Exporters struct {
	PDF  ports.TableRenderer
	XLSX ports.TableRenderer
}

func (e Exporters) pick(format string) ports.TableRenderer {
	switch strings.ToLower(format) {
	case "pdf":
		return e.PDF
	case "xlsx":
		return e.XLSX
	}
	return nil
}

// export resuelve el formato de la ruta, genera el archivo y lo envía como adjunto.
func export(c *fiber.Ctx, ex Exporters, basename string, build func(ctx context.Context, r ports.TableRenderer) ([]byte, error)) error {
	r := ex.pick(c.Params("format"))
	if r == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "formato soportado: pdf o xlsx"})
	}
	data, err := build(c.Context(), r)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, basename+"."+r.Extension(), r.ContentType(), data)
}
