package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
)

// UserOrders GET /api/orders/user/{userId} — historial "mis compras".
func (c *Client) UserOrders(ctx context.Context, token string, userID int64) ([]entity.Order, error) {
	var orders []entity.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/user/%d", userID), token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AllOrders GET /api/orders/all — listado completo para personal de inventario.
func (c *Client) AllOrders(ctx context.Context, token string) ([]entity.Order, error) {
	var orders []entity.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/all", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
