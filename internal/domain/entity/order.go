package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order es una orden ya registrada por el backend tras el checkout.
// Desde el gateway es de solo lectura.
type Order struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	SessionID string          `json:"session_id"` // sesión de pago que la originó
	Total     decimal.Decimal `json:"total"`
	Estado    string          `json:"estado"`
	CreatedAt time.Time       `json:"created_at"`
	Items     []OrderItem     `json:"items"`
}

// OrderItem es una línea de una orden registrada.
type OrderItem struct {
	ProductID   int64           `json:"product_id"`
	Nombre      string          `json:"nombre"`
	Cantidad    int             `json:"cantidad"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
}
