// Package cart implementa el servicio de carrito: mantiene la vista local de
// las líneas consistente con el stock y el estado que reporta el servidor.
//
// Política deliberada de reconciliación sobre optimismo: tras cambiar una
// cantidad se re-trae el carrito completo en lugar de actualizar localmente,
// porque el stock del servidor pudo cambiar de forma concurrente. No se
// "optimiza" este comportamiento.
package cart

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-gateway/internal/domain"
	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
	"github.com/jhoicas/tienda-gateway/pkg/logger"
)

// Service servicio de carrito. Guarda por usuario la última vista conocida de
// sus líneas; la vista se reemplaza completa en cada re-fetch y solo se
// filtra localmente al eliminar una línea.
type Service struct {
	api BackendAPI
	log *logger.Logger

	mu    sync.Mutex
	lines map[int64][]entity.CartItem // vista local por usuario
}

// NewService construye el servicio.
func NewService(api BackendAPI, log *logger.Logger) *Service {
	return &Service{
		api:   api,
		log:   log.Component("cart"),
		lines: make(map[int64][]entity.CartItem),
	}
}

// Lines devuelve una copia de la vista local del usuario.
func (s *Service) Lines(userID int64) []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.CartItem, len(s.lines[userID]))
	copy(out, s.lines[userID])
	return out
}

// Total suma precio_venta * cantidad sobre la vista local. Se recalcula en
// cada llamada; nunca se guarda aparte de las líneas.
func (s *Service) Total(userID int64) decimal.Decimal {
	return entity.CartTotal(s.Lines(userID))
}

// replaceAll reemplaza la vista local completa (sin merge incremental).
func (s *Service) replaceAll(userID int64, items []entity.CartItem) {
	s.mu.Lock()
	s.lines[userID] = items
	s.mu.Unlock()
}

// FetchCart trae las líneas del backend y reemplaza la vista local completa.
func (s *Service) FetchCart(ctx context.Context, sess *entity.Session) ([]entity.CartItem, error) {
	if !sess.Valida() {
		return nil, domain.ErrUnauthorized
	}
	items, err := s.api.FetchCart(ctx, sess.Token, sess.User.ID)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", sess.User.ID).Msg("no se pudo traer el carrito")
		return nil, err
	}
	s.replaceAll(sess.User.ID, items)
	return s.Lines(sess.User.ID), nil
}

// AddItem agrega cantidad unidades del producto. Falla con ErrOutOfStock si la
// cantidad solicitada excede el stock remoto conocido, sin llamar al endpoint
// de agregado. Tras agregar se re-trae el carrito: el stock post-agregado es
// del servidor, aquí no se decrementa especulativamente.
func (s *Service) AddItem(ctx context.Context, sess *entity.Session, productID int64, cantidad int) ([]entity.CartItem, error) {
	if !sess.Valida() {
		return nil, domain.ErrUnauthorized
	}
	if cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}

	// Stock conocido: la línea local si existe, si no el detalle del producto.
	enCarrito := 0
	stock := -1
	for _, it := range s.Lines(sess.User.ID) {
		if it.ProductID == productID {
			enCarrito = it.Cantidad
			stock = it.StockDisponible
			break
		}
	}
	if stock < 0 {
		p, err := s.api.GetProduct(ctx, sess.Token, productID)
		if err != nil {
			return nil, err
		}
		stock = p.Cantidad
	}
	if enCarrito+cantidad > stock {
		return nil, domain.ErrOutOfStock
	}

	if err := s.api.AddToCart(ctx, sess.Token, sess.User.ID, productID, cantidad); err != nil {
		s.log.Warn().Err(err).Int64("product_id", productID).Msg("agregar al carrito falló")
		return nil, err
	}
	return s.FetchCart(ctx, sess)
}

// UpdateQuantity fija la cantidad de una línea. Cantidades negativas se
// rechazan localmente sin tocar la red y la vista queda intacta. Subir por
// encima del stock conocido tampoco llega a la capa de red: el control de
// cantidad se deshabilita en cantidad == stock_disponible. En éxito se
// re-trae el carrito completo para resincronizar.
func (s *Service) UpdateQuantity(ctx context.Context, sess *entity.Session, productID int64, cantidad int) ([]entity.CartItem, error) {
	if !sess.Valida() {
		return nil, domain.ErrUnauthorized
	}
	if cantidad < 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range s.Lines(sess.User.ID) {
		if it.ProductID == productID && cantidad > it.StockDisponible {
			return nil, domain.ErrOutOfStock
		}
	}
	if err := s.api.UpdateQuantity(ctx, sess.Token, sess.User.ID, productID, cantidad); err != nil {
		s.log.Warn().Err(err).Int64("product_id", productID).Int("cantidad", cantidad).Msg("actualizar cantidad falló")
		return nil, err
	}
	return s.FetchCart(ctx, sess)
}

// RemoveItem elimina la línea en el backend y la filtra de la vista local de
// inmediato. No re-trae: eliminar una línea no invalida el stock de las demás.
func (s *Service) RemoveItem(ctx context.Context, sess *entity.Session, productID int64) ([]entity.CartItem, error) {
	if !sess.Valida() {
		return nil, domain.ErrUnauthorized
	}
	if err := s.api.RemoveFromCart(ctx, sess.Token, sess.User.ID, productID); err != nil {
		s.log.Warn().Err(err).Int64("product_id", productID).Msg("eliminar del carrito falló")
		return nil, err
	}
	s.mu.Lock()
	kept := s.lines[sess.User.ID][:0:0]
	for _, it := range s.lines[sess.User.ID] {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	s.lines[sess.User.ID] = kept
	s.mu.Unlock()
	return s.Lines(sess.User.ID), nil
}
