package entity

import "github.com/shopspring/decimal"

// CartItem es una línea del carrito: producto, cantidad pedida y el techo de
// stock que reportó el servidor. Invariante: Cantidad <= StockDisponible
// (el servidor es la fuente de verdad; aquí solo se corta el incremento).
type CartItem struct {
	ProductID       int64           `json:"product_id"`
	Nombre          string          `json:"nombre"`
	PrecioVenta     decimal.Decimal `json:"precio_venta"`
	Cantidad        int             `json:"cantidad"`
	StockDisponible int             `json:"stock_disponible"`
	ImagenURL       string          `json:"imagen_url"`
}

// Subtotal devuelve precio_venta * cantidad.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.PrecioVenta.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}

// PuedeIncrementar reporta si la línea admite una unidad más sin pasar el
// stock conocido. Con esto se deshabilita el control "+" en cantidad == stock.
func (i CartItem) PuedeIncrementar() bool {
	return i.Cantidad < i.StockDisponible
}

// CartTotal suma los subtotales de todas las líneas. Se recalcula siempre
// desde las líneas; nunca se cachea aparte.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
