// Package address maneja la dirección de entrega del usuario: una por
// usuario, última escritura gana.
package address

import (
	"context"

	"github.com/jhoicas/tienda-gateway/internal/domain"
	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
	"github.com/jhoicas/tienda-gateway/pkg/logger"
)

// BackendAddressAPI puerto hacia el backend de direcciones.
type BackendAddressAPI interface {
	GetAddress(ctx context.Context, token string, userID int64) (*entity.Address, error)
	SaveAddress(ctx context.Context, token string, addr entity.Address) error
}

// UseCase dirección de entrega.
type UseCase struct {
	api BackendAddressAPI
	log *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(api BackendAddressAPI, log *logger.Logger) *UseCase {
	return &UseCase{api: api, log: log.Component("address")}
}

// Get devuelve la dirección del usuario o nil si no tiene.
func (uc *UseCase) Get(ctx context.Context, token string, userID int64) (*entity.Address, error) {
	return uc.api.GetAddress(ctx, token, userID)
}

// Save valida y guarda la dirección. El backend sobreescribe la anterior.
func (uc *UseCase) Save(ctx context.Context, token string, addr entity.Address) error {
	if addr.UserID == 0 || addr.Calle == "" || addr.Ciudad == "" || addr.CodigoPostal == "" {
		return domain.ErrInvalidInput
	}
	return uc.api.SaveAddress(ctx, token, addr)
}
