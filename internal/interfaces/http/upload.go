package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carpihogar-api/internal/application/dto"
)

// uploadedFile archivo único recibido en un multipart.
type uploadedFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// formFile lee el campo field del multipart. Si falta responde 400 y devuelve false.
func formFile(c *fiber.Ctx, field string) (*uploadedFile, bool, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "archivo " + field + " requerido"})
	}
	f, err := fh.Open()
	if err != nil {
		return nil, false, respondError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, false, respondError(c, err)
	}
	return &uploadedFile{Name: fh.Filename, ContentType: fh.Header.Get(fiber.HeaderContentType), Data: data}, true, nil
}
