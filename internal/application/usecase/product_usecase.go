package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/application/dto"
	"github.com/jhoicas/carpihogar-api/internal/application/ports"
	"github.com/jhoicas/carpihogar-api/internal/domain"
	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
	"github.com/jhoicas/carpihogar-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos y carga de imágenes.
type ProductUseCase struct {
	repo    repository.ProductRepository
	storage ports.BlobStorage
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, storage ports.BlobStorage) *ProductUseCase {
	return &ProductUseCase{repo: repo, storage: storage}
}

// Create crea un nuevo producto. El código debe ser único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	codigo := strings.TrimSpace(in.Codigo)
	existing, err := uc.repo.GetByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Precio.IsNegative() || in.Stock < 0 || in.StockMinimo < 0 {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Imagenes) > entity.MaxProductImages {
		return nil, domain.ErrTooManyImages
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Codigo:        codigo,
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		Categoria:     in.Categoria,
		Marca:         in.Marca,
		Proveedor:     in.Proveedor,
		Precio:        in.Precio,
		PrecioMayor:   in.PrecioMayor,
		PrecioAliados: in.PrecioAliados,
		PrecioCliente: in.PrecioCliente,
		Stock:         in.Stock,
		StockMinimo:   in.StockMinimo,
		Imagenes:      append([]string{}, in.Imagenes...),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product, nil), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return ToProductResponse(product, nil), nil
}

// Update actualiza los campos enviados.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		product.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		product.Descripcion = *in.Descripcion
	}
	if in.Categoria != nil {
		product.Categoria = *in.Categoria
	}
	if in.Marca != nil {
		product.Marca = *in.Marca
	}
	if in.Proveedor != nil {
		product.Proveedor = *in.Proveedor
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Precio = *in.Precio
	}
	if in.PrecioMayor != nil {
		product.PrecioMayor = in.PrecioMayor
	}
	if in.PrecioAliados != nil {
		product.PrecioAliados = in.PrecioAliados
	}
	if in.PrecioCliente != nil {
		product.PrecioCliente = in.PrecioCliente
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	if in.StockMinimo != nil {
		if *in.StockMinimo < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.StockMinimo = *in.StockMinimo
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product, nil), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p, nil))
	}
	return items, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// ImageUpload archivo recibido para un producto.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// AddImages sube las imágenes al almacenamiento y las agrega al producto (máximo 3 en total).
func (uc *ProductUseCase) AddImages(ctx context.Context, id string, files []ImageUpload) (*dto.ProductResponse, error) {
	if len(files) == 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.CanAddImages(len(files)) {
		return nil, domain.ErrTooManyImages
	}
	images := append([]string{}, product.Imagenes...)
	for _, f := range files {
		key := fmt.Sprintf("products/%s/%d_%s", product.ID, time.Now().UnixMilli(), path.Base(f.Filename))
		url, err := uc.storage.Upload(ctx, key, f.ContentType, f.Data)
		if err != nil {
			return nil, fmt.Errorf("subir imagen: %w", err)
		}
		images = append(images, url)
	}
	if err := uc.repo.UpdateImages(ctx, product.ID, images); err != nil {
		return nil, err
	}
	product.Imagenes = images
	return ToProductResponse(product, nil), nil
}

// ToProductResponse convierte la entidad a DTO. Con rate != nil calcula el precio en Bs.
func ToProductResponse(p *entity.Product, rate *decimal.Decimal) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	images := p.Imagenes
	if images == nil {
		images = []string{}
	}
	out := &dto.ProductResponse{
		ID:            p.ID,
		Codigo:        p.Codigo,
		Nombre:        p.Nombre,
		Descripcion:   p.Descripcion,
		Categoria:     p.Categoria,
		Marca:         p.Marca,
		Proveedor:     p.Proveedor,
		Precio:        p.Precio,
		PrecioMayor:   p.PrecioMayor,
		PrecioAliados: p.PrecioAliados,
		PrecioCliente: p.PrecioCliente,
		Stock:         p.Stock,
		StockMinimo:   p.StockMinimo,
		Imagenes:      images,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if rate != nil {
		bs := p.Precio.Mul(*rate).Round(2)
		out.PrecioBs = &bs
	}
	return out
}
