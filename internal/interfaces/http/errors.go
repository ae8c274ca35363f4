package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-gateway/internal/application/dto"
	"github.com/jhoicas/tienda-gateway/internal/domain"
)

// errorJSON mapea errores de dominio a respuestas HTTP. Las fallas de red y
// de formato del backend se presentan como avisos transitorios (502), nunca
// tumban la vista ni se reintentan en silencio.
func errorJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas o sesión ausente"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrOutOfStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OUT_OF_STOCK", Message: "la cantidad solicitada excede el stock disponible"})
	case errors.Is(err, domain.ErrCheckoutSession):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "CHECKOUT_SESSION", Message: "no se pudo crear la sesión de pago, intenta de nuevo"})
	case errors.Is(err, domain.ErrMalformedResponse):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "MALFORMED_RESPONSE", Message: "respuesta inesperada del backend"})
	case errors.Is(err, domain.ErrBackendUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_UNAVAILABLE", Message: "no se pudo contactar al backend, intenta de nuevo"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
