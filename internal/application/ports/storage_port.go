package ports

import "context"

// BlobStorage almacenamiento de archivos (imágenes de producto, comprobantes de pago).
type BlobStorage interface {
	// Upload guarda data en path y devuelve la URL pública de descarga.
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)
}
