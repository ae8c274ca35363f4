package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-gateway/internal/application/orders"
)

// OrdersHandler historial de órdenes.
type OrdersHandler struct {
	uc *orders.UseCase
}

// NewOrdersHandler construye el handler.
func NewOrdersHandler(uc *orders.UseCase) *OrdersHandler {
	return &OrdersHandler{uc: uc}
}

// Mine "mis compras" del usuario autenticado (POS).
func (h *OrdersHandler) Mine(c *fiber.Ctx) error {
	sess := GetSession(c)
	out, err := h.uc.ForUser(c.Context(), sess.Token, sess.User.ID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// All listado completo para personal de inventario.
func (h *OrdersHandler) All(c *fiber.Ctx) error {
	sess := GetSession(c)
	out, err := h.uc.All(c.Context(), sess.Token)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
