package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo tal como lo expone el backend.
// Cantidad es el stock disponible reportado; el gateway nunca lo decrementa
// especulativamente.
type Product struct {
	ID          int64           `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	Cantidad    int             `json:"cantidad"`
	ImagenURL   string          `json:"imagen_url"`
	CategoriaID int64           `json:"categoria_id"`
	Archivado   bool            `json:"archivado"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BajoStock reporta si el producto está en o bajo el umbral de reposición.
func (p Product) BajoStock(umbral int) bool {
	return p.Cantidad <= umbral
}
