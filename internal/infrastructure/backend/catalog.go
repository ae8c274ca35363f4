package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
)

// productPayload producto tal como lo serializa el backend.
type productPayload struct {
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

func (p productPayload) toEntity(c *Client) entity.Product {
	return entity.Product{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		PrecioVenta: p.PrecioVenta,
		Cantidad:    p.Cantidad,
		ImagenURL:   c.AbsoluteImageURL(p.ImagenURL),
		CategoriaID: p.CategoriaID,
		Archivado:   p.Archivado,
		CreatedAt:   p.CreatedAt,
	}
}

// ListProducts GET /api/products.
func (c *Client) ListProducts(ctx context.Context, token string) ([]entity.Product, error) {
	var payload []productPayload
	if err := c.do(ctx, http.MethodGet, "/api/products", token, nil, &payload); err != nil {
		return nil, err
	}
	products := make([]entity.Product, 0, len(payload))
	for _, p := range payload {
		products = append(products, p.toEntity(c))
	}
	return products, nil
}

// GetProduct GET /api/products/{id}.
func (c *Client) GetProduct(ctx context.Context, token string, id int64) (*entity.Product, error) {
	var payload productPayload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), token, nil, &payload); err != nil {
		return nil, err
	}
	p := payload.toEntity(c)
	return &p, nil
}

// ProductInput datos de creación/edición de producto.
type ProductInput struct {
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	Cantidad    int             `json:"cantidad"`
	ImagenURL   string          `json:"imagen_url"`
	CategoriaID int64           `json:"categoria_id"`
}

// CreateProduct POST /api/products.
func (c *Client) CreateProduct(ctx context.Context, token string, in ProductInput) error {
	return c.do(ctx, http.MethodPost, "/api/products", token, in, nil)
}

// UpdateProduct PUT /api/products/{id}.
func (c *Client) UpdateProduct(ctx context.Context, token string, id int64, in ProductInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), token, in, nil)
}

// ArchiveProduct DELETE /api/products/{id} (archivado lógico en el backend).
func (c *Client) ArchiveProduct(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), token, nil, nil)
}

// UnarchiveProduct PUT /api/products/{id}/desarchivar.
func (c *Client) UnarchiveProduct(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d/desarchivar", id), token, nil, nil)
}

// ListCategories GET /api/categories.
func (c *Client) ListCategories(ctx context.Context, token string) ([]entity.Category, error) {
	var cats []entity.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", token, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// CategoryInput datos de creación/edición de categoría.
type CategoryInput struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// CreateCategory POST /api/categories.
func (c *Client) CreateCategory(ctx context.Context, token string, in CategoryInput) error {
	return c.do(ctx, http.MethodPost, "/api/categories", token, in, nil)
}

// UpdateCategory PUT /api/categories/{id}.
func (c *Client) UpdateCategory(ctx context.Context, token string, id int64, in CategoryInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/categories/%d", id), token, in, nil)
}

// ArchiveCategory DELETE /api/categories/{id}.
func (c *Client) ArchiveCategory(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/categories/%d", id), token, nil, nil)
}
