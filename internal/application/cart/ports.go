package cart

import (
	"context"

	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
)

// BackendAPI es el puerto hacia el backend remoto que necesita el carrito.
// La implementación concreta es el cliente REST; en tests se inyecta un fake
// que cuenta llamadas para verificar qué operaciones tocan la red.
type BackendAPI interface {
	FetchCart(ctx context.Context, token string, userID int64) ([]entity.CartItem, error)
	AddToCart(ctx context.Context, token string, userID, productID int64, cantidad int) error
	UpdateQuantity(ctx context.Context, token string, userID, productID int64, cantidad int) error
	RemoveFromCart(ctx context.Context, token string, userID, productID int64) error
	GetProduct(ctx context.Context, token string, id int64) (*entity.Product, error)
}
