package backend

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-gateway/internal/domain"
	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
)

// CheckoutLine línea de carrito con el user_id adjunto, como la espera el
// endpoint de creación de sesión de pago.
type CheckoutLine struct {
	UserID      int64           `json:"user_id"`
	ProductID   int64           `json:"product_id"`
	Nombre      string          `json:"nombre"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	Cantidad    int             `json:"cantidad"`
	ImagenURL   string          `json:"imagen_url"`
}

// CheckoutLinesFrom adjunta userID a cada línea del carrito.
func CheckoutLinesFrom(userID int64, items []entity.CartItem) []CheckoutLine {
	lines := make([]CheckoutLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, CheckoutLine{
			UserID:      userID,
			ProductID:   it.ProductID,
			Nombre:      it.Nombre,
			PrecioVenta: it.PrecioVenta,
			Cantidad:    it.Cantidad,
			ImagenURL:   it.ImagenURL,
		})
	}
	return lines
}

type createSessionRequest struct {
	CartItems  []CheckoutLine `json:"cartItems"`
	Email      string         `json:"email"`
	SuccessURL string         `json:"successUrl,omitempty"`
	CancelURL  string         `json:"cancelUrl,omitempty"`
}

type createSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// CreateCheckoutSession POST /api/stripe/create-session. Si el backend no
// devuelve sessionId la operación falla con ErrCheckoutSession: sin
// identificador no hay redirect al pago.
func (c *Client) CreateCheckoutSession(ctx context.Context, token string, lines []CheckoutLine, email string) (string, error) {
	var out createSessionResponse
	if err := c.do(ctx, http.MethodPost, "/api/stripe/create-session", token,
		createSessionRequest{CartItems: lines, Email: email, SuccessURL: c.successURL, CancelURL: c.cancelURL}, &out); err != nil {
		return "", err
	}
	if out.SessionID == "" {
		return "", domain.ErrCheckoutSession
	}
	return out.SessionID, nil
}

type saveOrderRequest struct {
	SessionID string         `json:"sessionId"`
	UserID    int64          `json:"userId"`
	CartItems []CheckoutLine `json:"cartItems"`
}

// SaveOrder POST /api/stripe/save-order — registra la orden tras volver del
// pago. La deduplicación por aterrizaje es responsabilidad del caller
// (marca one-shot en el store local).
func (c *Client) SaveOrder(ctx context.Context, token, paymentSessionID string, userID int64, lines []CheckoutLine) error {
	return c.do(ctx, http.MethodPost, "/api/stripe/save-order", token,
		saveOrderRequest{SessionID: paymentSessionID, UserID: userID, CartItems: lines}, nil)
}
