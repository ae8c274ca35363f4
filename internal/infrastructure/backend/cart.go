package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
)

// cartLine línea de carrito tal como la serializa el backend.
// decimal.Decimal acepta el precio como número o string JSON.
type cartLine struct {
	ProductID       int64           `json:"product_id"`
	Nombre          string          `json:"nombre"`
	PrecioVenta     decimal.Decimal `json:"precio_venta"`
	Cantidad        int             `json:"cantidad"`
	StockDisponible int             `json:"stock_disponible"`
	ImagenURL       string          `json:"imagen_url"`
}

func (l cartLine) toEntity() entity.CartItem {
	return entity.CartItem{
		ProductID:       l.ProductID,
		Nombre:          l.Nombre,
		PrecioVenta:     l.PrecioVenta,
		Cantidad:        l.Cantidad,
		StockDisponible: l.StockDisponible,
		ImagenURL:       l.ImagenURL,
	}
}

// FetchCart GET /api/cart/{userId}. Devuelve las líneas con la imagen
// normalizada a URL absoluta.
func (c *Client) FetchCart(ctx context.Context, token string, userID int64) ([]entity.CartItem, error) {
	var lines []cartLine
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/cart/%d", userID), token, nil, &lines); err != nil {
		return nil, err
	}
	items := make([]entity.CartItem, 0, len(lines))
	for _, l := range lines {
		it := l.toEntity()
		it.ImagenURL = c.AbsoluteImageURL(it.ImagenURL)
		items = append(items, it)
	}
	return items, nil
}

// addToCartRequest cuerpo de POST /api/cart.
type addToCartRequest struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Cantidad  int   `json:"cantidad"`
}

// AddToCart POST /api/cart.
func (c *Client) AddToCart(ctx context.Context, token string, userID, productID int64, cantidad int) error {
	return c.do(ctx, http.MethodPost, "/api/cart", token,
		addToCartRequest{UserID: userID, ProductID: productID, Cantidad: cantidad}, nil)
}

// updateQuantityRequest cuerpo de PUT /api/cart/update-quantity.
type updateQuantityRequest struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Cantidad  int   `json:"cantidad"`
}

// UpdateQuantity PUT /api/cart/update-quantity.
func (c *Client) UpdateQuantity(ctx context.Context, token string, userID, productID int64, cantidad int) error {
	return c.do(ctx, http.MethodPut, "/api/cart/update-quantity", token,
		updateQuantityRequest{UserID: userID, ProductID: productID, Cantidad: cantidad}, nil)
}

// RemoveFromCart DELETE /api/cart/{userId}/{productId}.
func (c *Client) RemoveFromCart(ctx context.Context, token string, userID, productID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/%d/%d", userID, productID), token, nil, nil)
}
