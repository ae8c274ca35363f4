// Package catalog expone el catálogo de productos/categorías para la tienda
// y el CRUD de inventario para el personal.
package catalog

import (
	"context"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/tienda-gateway/internal/domain"
	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
	"github.com/jhoicas/tienda-gateway/internal/infrastructure/backend"
	"github.com/jhoicas/tienda-gateway/pkg/logger"
)

// BackendCatalogAPI puerto hacia el catálogo del backend.
type BackendCatalogAPI interface {
	ListProducts(ctx context.Context, token string) ([]entity.Product, error)
	GetProduct(ctx context.Context, token string, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, token string, in backend.ProductInput) error
	UpdateProduct(ctx context.Context, token string, id int64, in backend.ProductInput) error
	ArchiveProduct(ctx context.Context, token string, id int64) error
	UnarchiveProduct(ctx context.Context, token string, id int64) error
	ListCategories(ctx context.Context, token string) ([]entity.Category, error)
	CreateCategory(ctx context.Context, token string, in backend.CategoryInput) error
	UpdateCategory(ctx context.Context, token string, id int64, in backend.CategoryInput) error
	ArchiveCategory(ctx context.Context, token string, id int64) error
}

// UseCase catálogo e inventario.
type UseCase struct {
	api BackendCatalogAPI
	log *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(api BackendCatalogAPI, log *logger.Logger) *UseCase {
	return &UseCase{api: api, log: log.Component("catalog")}
}

// quitarAcentos normaliza a NFD y elimina marcas diacríticas, para que
// "almohadón" matchee "almohadon" y viceversa.
func quitarAcentos(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// coincide búsqueda case- y acento-insensible.
func coincide(texto, consulta string) bool {
	return strings.Contains(
		strings.ToLower(quitarAcentos(texto)),
		strings.ToLower(quitarAcentos(consulta)),
	)
}

// ListProducts lista productos. archivados selecciona entre el catálogo
// activo y el archivo; consulta filtra por nombre/descripción sin distinguir
// mayúsculas ni acentos.
func (uc *UseCase) ListProducts(ctx context.Context, token string, archivados bool, consulta string) ([]entity.Product, error) {
	all, err := uc.api.ListProducts(ctx, token)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(all))
	for _, p := range all {
		if p.Archivado != archivados {
			continue
		}
		if consulta != "" && !coincide(p.Nombre, consulta) && !coincide(p.Descripcion, consulta) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// GetProduct detalle de un producto.
func (uc *UseCase) GetProduct(ctx context.Context, token string, id int64) (*entity.Product, error) {
	return uc.api.GetProduct(ctx, token, id)
}

// SaveProductInput entrada validada de producto.
type SaveProductInput struct {
	Nombre      string
	Descripcion string
	PrecioVenta string
	Cantidad    int
	ImagenURL   string
	CategoriaID int64
}

func (in SaveProductInput) toBackend() (backend.ProductInput, error) {
	if in.Nombre == "" {
		return backend.ProductInput{}, domain.ErrInvalidInput
	}
	precio, err := decimal.NewFromString(in.PrecioVenta)
	if err != nil || precio.IsNegative() {
		return backend.ProductInput{}, domain.ErrInvalidInput
	}
	if in.Cantidad < 0 {
		return backend.ProductInput{}, domain.ErrInvalidInput
	}
	return backend.ProductInput{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		PrecioVenta: precio,
		Cantidad:    in.Cantidad,
		ImagenURL:   in.ImagenURL,
		CategoriaID: in.CategoriaID,
	}, nil
}

// CreateProduct alta de producto (inventario).
func (uc *UseCase) CreateProduct(ctx context.Context, token string, in SaveProductInput) error {
	payload, err := in.toBackend()
	if err != nil {
		return err
	}
	return uc.api.CreateProduct(ctx, token, payload)
}

// UpdateProduct edición de producto (inventario).
func (uc *UseCase) UpdateProduct(ctx context.Context, token string, id int64, in SaveProductInput) error {
	payload, err := in.toBackend()
	if err != nil {
		return err
	}
	return uc.api.UpdateProduct(ctx, token, id, payload)
}

// ArchiveProduct archivado lógico; Unarchive lo revierte.
func (uc *UseCase) ArchiveProduct(ctx context.Context, token string, id int64) error {
	return uc.api.ArchiveProduct(ctx, token, id)
}

// UnarchiveProduct restaura un producto archivado.
func (uc *UseCase) UnarchiveProduct(ctx context.Context, token string, id int64) error {
	return uc.api.UnarchiveProduct(ctx, token, id)
}

// ListCategories lista categorías activas o archivadas.
func (uc *UseCase) ListCategories(ctx context.Context, token string, archivadas bool) ([]entity.Category, error) {
	all, err := uc.api.ListCategories(ctx, token)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Category, 0, len(all))
	for _, c := range all {
		if c.Archivada == archivadas {
			out = append(out, c)
		}
	}
	return out, nil
}

// CreateCategory alta de categoría.
func (uc *UseCase) CreateCategory(ctx context.Context, token, nombre, descripcion string) error {
	if nombre == "" {
		return domain.ErrInvalidInput
	}
	return uc.api.CreateCategory(ctx, token, backend.CategoryInput{Nombre: nombre, Descripcion: descripcion})
}

// UpdateCategory edición de categoría.
func (uc *UseCase) UpdateCategory(ctx context.Context, token string, id int64, nombre, descripcion string) error {
	if nombre == "" {
		return domain.ErrInvalidInput
	}
	return uc.api.UpdateCategory(ctx, token, id, backend.CategoryInput{Nombre: nombre, Descripcion: descripcion})
}

// ArchiveCategory archivado lógico de categoría.
func (uc *UseCase) ArchiveCategory(ctx context.Context, token string, id int64) error {
	return uc.api.ArchiveCategory(ctx, token, id)
}
