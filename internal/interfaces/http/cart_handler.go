package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-gateway/internal/application/cart"
	"github.com/jhoicas/tienda-gateway/internal/application/dto"
)

// CartHandler maneja el carrito del cliente POS (protegido).
type CartHandler struct {
	svc *cart.Service
}

// NewCartHandler construye el handler.
func NewCartHandler(svc *cart.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

// Get trae el carrito del backend y devuelve la vista con el total.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	sess := GetSession(c)
	items, err := h.svc.FetchCart(c.Context(), sess)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToCartResponse(items))
}

// AddItem agrega un producto al carrito.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	sess := GetSession(c)
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items, err := h.svc.AddItem(c.Context(), sess, in.ProductID, in.Cantidad)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCartResponse(items))
}

// UpdateQuantity fija la cantidad de una línea y devuelve el carrito
// resincronizado.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	sess := GetSession(c)
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items, err := h.svc.UpdateQuantity(c.Context(), sess, in.ProductID, in.Cantidad)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToCartResponse(items))
}

// RemoveItem elimina una línea del carrito.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	sess := GetSession(c)
	productID, err := strconv.ParseInt(c.Params("productId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productId inválido"})
	}
	items, err := h.svc.RemoveItem(c.Context(), sess, productID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToCartResponse(items))
}
