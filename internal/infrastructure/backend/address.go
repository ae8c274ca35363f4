package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jhoicas/tienda-gateway/internal/domain"
	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
)

// GetAddress GET /api/address/{userId}. Devuelve (nil, nil) si el usuario
// aún no tiene dirección.
func (c *Client) GetAddress(ctx context.Context, token string, userID int64) (*entity.Address, error) {
	var addr entity.Address
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/address/%d", userID), token, nil, &addr)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

// SaveAddress POST /api/address. Una dirección por usuario: el backend aplica
// última escritura gana.
func (c *Client) SaveAddress(ctx context.Context, token string, addr entity.Address) error {
	return c.do(ctx, http.MethodPost, "/api/address", token, addr, nil)
}
