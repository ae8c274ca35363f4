package http

import (
	"github.com/gofiber/fiber/v2"

	appaddress "github.com/jhoicas/tienda-gateway/internal/application/address"
	"github.com/jhoicas/tienda-gateway/internal/application/dto"
	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
)

// AddressHandler dirección de entrega del cliente POS (protegido).
type AddressHandler struct {
	uc *appaddress.UseCase
}

// NewAddressHandler construye el handler.
func NewAddressHandler(uc *appaddress.UseCase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

// Get devuelve la dirección del usuario autenticado; 404 si aún no tiene.
func (h *AddressHandler) Get(c *fiber.Ctx) error {
	sess := GetSession(c)
	addr, err := h.uc.Get(c.Context(), sess.Token, sess.User.ID)
	if err != nil {
		return errorJSON(c, err)
	}
	if addr == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sin dirección registrada"})
	}
	return c.JSON(addr)
}

// Save crea o reemplaza la dirección (última escritura gana).
func (h *AddressHandler) Save(c *fiber.Ctx) error {
	sess := GetSession(c)
	var in entity.Address
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.UserID = sess.User.ID // la dirección siempre es del usuario autenticado
	if err := h.uc.Save(c.Context(), sess.Token, in); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "dirección guardada"})
}
