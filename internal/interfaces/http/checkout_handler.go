package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-gateway/internal/application/cart"
	"github.com/jhoicas/tienda-gateway/internal/application/checkout"
	"github.com/jhoicas/tienda-gateway/internal/application/dto"
	"github.com/jhoicas/tienda-gateway/internal/domain"
)

// CheckoutHandler inicia el pago y confirma la orden al volver del redirect.
type CheckoutHandler struct {
	svc  *checkout.Service
	cart *cart.Service
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(svc *checkout.Service, cartSvc *cart.Service) *CheckoutHandler {
	return &CheckoutHandler{svc: svc, cart: cartSvc}
}

// Initiate empaqueta el carrito vigente en una sesión de pago y devuelve su
// identificador para el redirect externo.
func (h *CheckoutHandler) Initiate(c *fiber.Ctx) error {
	sess := GetSession(c)
	items := h.cart.Lines(sess.User.ID)
	if len(items) == 0 {
		// Vista local vacía: puede ser un gateway recién levantado;
		// un fetch resuelve sin inventar estado.
		fetched, err := h.cart.FetchCart(c.Context(), sess)
		if err != nil {
			return errorJSON(c, err)
		}
		items = fetched
	}
	sessionID, err := h.svc.Initiate(c.Context(), sess, items)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.CheckoutResponse{SessionID: sessionID})
}

// Confirm registra la orden tras el aterrizaje post-pago. Un segundo
// aterrizaje con la misma sesión de pago se suprime como no-op exitoso:
// la orden ya quedó registrada, no es un error para el usuario.
func (h *CheckoutHandler) Confirm(c *fiber.Ctx) error {
	sess := GetSession(c)
	var in dto.ConfirmOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.svc.ConfirmOrder(c.Context(), sess, in.SessionID)
	if errors.Is(err, domain.ErrDuplicateSubmission) {
		return c.JSON(dto.ConfirmOrderResponse{Registered: true, Message: "la orden ya había sido registrada"})
	}
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ConfirmOrderResponse{Registered: true, Message: "orden registrada correctamente"})
}
