package checkout

import (
	"context"

	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
	"github.com/jhoicas/tienda-gateway/internal/infrastructure/backend"
	"github.com/jhoicas/tienda-gateway/internal/infrastructure/localstore"
)

// PaymentAPI puerto hacia los endpoints de pago del backend.
type PaymentAPI interface {
	CreateCheckoutSession(ctx context.Context, token string, lines []backend.CheckoutLine, email string) (string, error)
	SaveOrder(ctx context.Context, token, paymentSessionID string, userID int64, lines []backend.CheckoutLine) error
}

// SnapshotStore puerto al almacenamiento local: snapshot del carrito para el
// flujo con redirect y la marca one-shot de orden registrada.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, userID int64, items []entity.CartItem, extra localstore.CheckoutExtra) error
	LoadSnapshot(ctx context.Context, userID int64) ([]entity.CartItem, localstore.CheckoutExtra, error)
	ClearSnapshot(ctx context.Context, userID int64) error
	MarkOrderSaved(ctx context.Context, paymentSessionID string) (bool, error)
	UnmarkOrderSaved(ctx context.Context, paymentSessionID string) error
}
