package dto

import "github.com/jhoicas/tienda-gateway/internal/domain/entity"

// CartLineResponse línea de carrito con sus derivados: subtotal y si el
// control "+" sigue habilitado (cantidad < stock conocido).
type CartLineResponse struct {
	ProductID         int64  `json:"product_id"`
	Nombre            string `json:"nombre"`
	PrecioVenta       string `json:"precio_venta"`
	Cantidad          int    `json:"cantidad"`
	StockDisponible   int    `json:"stock_disponible"`
	ImagenURL         string `json:"imagen_url"`
	Subtotal          string `json:"subtotal"`
	PuedeIncrementar  bool   `json:"puede_incrementar"`
}

// CartResponse carrito completo con el total siempre recalculado.
type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total string             `json:"total"`
}

// AddItemRequest entrada para agregar al carrito.
type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Cantidad  int   `json:"cantidad" validate:"required,min=1"`
}

// UpdateQuantityRequest entrada para fijar la cantidad de una línea.
type UpdateQuantityRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Cantidad  int   `json:"cantidad"`
}

// ToCartResponse arma la respuesta desde las líneas del dominio.
func ToCartResponse(items []entity.CartItem) CartResponse {
	out := CartResponse{
		Items: make([]CartLineResponse, 0, len(items)),
		Total: entity.CartTotal(items).StringFixed(2),
	}
	for _, it := range items {
		out.Items = append(out.Items, CartLineResponse{
			ProductID:        it.ProductID,
			Nombre:           it.Nombre,
			PrecioVenta:      it.PrecioVenta.StringFixed(2),
			Cantidad:         it.Cantidad,
			StockDisponible:  it.StockDisponible,
			ImagenURL:        it.ImagenURL,
			Subtotal:         it.Subtotal().StringFixed(2),
			PuedeIncrementar: it.PuedeIncrementar(),
		})
	}
	return out
}
