package dto

import (
	"time"

	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
)

// ProductResponse salida de producto para el catálogo.
type ProductResponse struct {
	ID          int64     `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	PrecioVenta string    `json:"precio_venta"`
	Cantidad    int       `json:"cantidad"`
	ImagenURL   string    `json:"imagen_url"`
	CategoriaID int64     `json:"categoria_id"`
	Archivado   bool      `json:"archivado"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToProductResponse mapea la entidad a la respuesta.
func ToProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		PrecioVenta: p.PrecioVenta.StringFixed(2),
		Cantidad:    p.Cantidad,
		ImagenURL:   p.ImagenURL,
		CategoriaID: p.CategoriaID,
		Archivado:   p.Archivado,
		CreatedAt:   p.CreatedAt,
	}
}

// ToProductListResponse mapea un slice de productos.
func ToProductListResponse(ps []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, ToProductResponse(p))
	}
	return out
}

// SaveProductRequest entrada de creación/edición de producto (inventario).
type SaveProductRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string `json:"descripcion" validate:"max=2000"`
	PrecioVenta string `json:"precio_venta" validate:"required"`
	Cantidad    int    `json:"cantidad" validate:"min=0"`
	ImagenURL   string `json:"imagen_url"`
	CategoriaID int64  `json:"categoria_id"`
}

// SaveCategoryRequest entrada de creación/edición de categoría.
type SaveCategoryRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=120"`
	Descripcion string `json:"descripcion" validate:"max=2000"`
}
