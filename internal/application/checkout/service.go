// Package checkout transforma el carrito vigente en una sesión de pago
// alojada y registra la orden al volver del redirect, exactamente una vez
// por sesión de pago.
package checkout

import (
	"context"

	"github.com/jhoicas/tienda-gateway/internal/domain"
	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
	"github.com/jhoicas/tienda-gateway/internal/infrastructure/backend"
	"github.com/jhoicas/tienda-gateway/internal/infrastructure/localstore"
	"github.com/jhoicas/tienda-gateway/pkg/logger"
)

// Service iniciador de checkout y confirmación de orden.
type Service struct {
	api   PaymentAPI
	store SnapshotStore
	log   *logger.Logger
}

// NewService construye el servicio.
func NewService(api PaymentAPI, store SnapshotStore, log *logger.Logger) *Service {
	return &Service{api: api, store: store, log: log.Component("checkout")}
}

// Initiate empaqueta carrito + usuario en una sesión de pago.
//
// Precondiciones sin red: sesión válida y al menos una línea con cantidad > 0;
// si falta cualquiera, falla rápido sin llamada de red. En éxito: adjunta el
// user_id a cada línea, persiste el snapshot (para recuperar estado al volver
// del redirect) y devuelve el identificador de la sesión de pago. Sin
// identificador no hay redirect (ErrCheckoutSession, mapeado en el cliente).
func (s *Service) Initiate(ctx context.Context, sess *entity.Session, items []entity.CartItem) (string, error) {
	if !sess.Valida() {
		return "", domain.ErrUnauthorized
	}
	conCantidad := false
	for _, it := range items {
		if it.Cantidad > 0 {
			conCantidad = true
			break
		}
	}
	if !conCantidad {
		return "", domain.ErrEmptyCart
	}

	extra := localstore.CheckoutExtra{Email: sess.User.Email}
	if err := s.store.SaveSnapshot(ctx, sess.User.ID, items, extra); err != nil {
		return "", err
	}

	lines := backend.CheckoutLinesFrom(sess.User.ID, items)
	sessionID, err := s.api.CreateCheckoutSession(ctx, sess.Token, lines, sess.User.Email)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", sess.User.ID).Msg("crear sesión de pago falló")
		return "", err
	}
	s.log.Info().Int64("user_id", sess.User.ID).Str("payment_session", sessionID).Msg("sesión de pago creada")
	return sessionID, nil
}

// ConfirmOrder registra la orden tras el aterrizaje post-pago.
//
// Guardia one-shot: la marca local por sesión de pago se toma antes de llamar
// al backend; un segundo aterrizaje con el mismo id devuelve
// ErrDuplicateSubmission sin llamada de red. Si el registro falla, la marca se
// libera para que un reintento del usuario sea posible. En éxito se limpia el
// snapshot del carrito.
func (s *Service) ConfirmOrder(ctx context.Context, sess *entity.Session, paymentSessionID string) error {
	if !sess.Valida() {
		return domain.ErrUnauthorized
	}
	if paymentSessionID == "" {
		return domain.ErrInvalidInput
	}

	first, err := s.store.MarkOrderSaved(ctx, paymentSessionID)
	if err != nil {
		return err
	}
	if !first {
		return domain.ErrDuplicateSubmission
	}

	items, _, err := s.store.LoadSnapshot(ctx, sess.User.ID)
	if err != nil || len(items) == 0 {
		// Sin snapshot no hay orden que registrar; se libera la marca.
		_ = s.store.UnmarkOrderSaved(ctx, paymentSessionID)
		if err != nil {
			return err
		}
		return domain.ErrNotFound
	}

	lines := backend.CheckoutLinesFrom(sess.User.ID, items)
	if err := s.api.SaveOrder(ctx, sess.Token, paymentSessionID, sess.User.ID, lines); err != nil {
		s.log.Warn().Err(err).Str("payment_session", paymentSessionID).Msg("registrar orden falló")
		_ = s.store.UnmarkOrderSaved(ctx, paymentSessionID)
		return err
	}

	if err := s.store.ClearSnapshot(ctx, sess.User.ID); err != nil {
		s.log.Warn().Err(err).Int64("user_id", sess.User.ID).Msg("limpiar snapshot falló")
	}
	s.log.Info().Str("payment_session", paymentSessionID).Int64("user_id", sess.User.ID).Msg("orden registrada")
	return nil
}
