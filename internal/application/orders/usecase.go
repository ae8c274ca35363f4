// Package orders expone el historial de órdenes: "mis compras" para el
// cliente POS y el listado completo para inventario. Las órdenes son del
// backend; aquí son de solo lectura.
package orders

import (
	"context"

	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
	"github.com/jhoicas/tienda-gateway/pkg/logger"
)

// BackendOrdersAPI puerto hacia el backend de órdenes.
type BackendOrdersAPI interface {
	UserOrders(ctx context.Context, token string, userID int64) ([]entity.Order, error)
	AllOrders(ctx context.Context, token string) ([]entity.Order, error)
}

// UseCase historial de órdenes.
type UseCase struct {
	api BackendOrdersAPI
	log *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(api BackendOrdersAPI, log *logger.Logger) *UseCase {
	return &UseCase{api: api, log: log.Component("orders")}
}

// ForUser historial de compras del usuario.
func (uc *UseCase) ForUser(ctx context.Context, token string, userID int64) ([]entity.Order, error) {
	return uc.api.UserOrders(ctx, token, userID)
}

// All listado completo (solo personal de inventario; la puerta lo garantiza).
func (uc *UseCase) All(ctx context.Context, token string) ([]entity.Order, error) {
	return uc.api.AllOrders(ctx, token)
}
