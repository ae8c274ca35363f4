package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-gateway/internal/application/catalog"
	"github.com/jhoicas/tienda-gateway/internal/application/dto"
)

// CatalogHandler catálogo público y CRUD de inventario.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// sessionToken devuelve el token del backend si hay sesión (rutas públicas
// funcionan sin ella).
func sessionToken(c *fiber.Ctx) string {
	if sess := GetSession(c); sess != nil {
		return sess.Token
	}
	return ""
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// ListProducts catálogo de productos; ?q= filtra sin distinguir acentos,
// ?archivados=true lista el archivo (inventario).
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	archivados := c.QueryBool("archivados", false)
	out, err := h.uc.ListProducts(c.Context(), sessionToken(c), archivados, c.Query("q"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToProductListResponse(out))
}

// GetProduct detalle de producto.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	p, err := h.uc.GetProduct(c.Context(), sessionToken(c), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.ToProductResponse(*p))
}

func saveProductInput(in dto.SaveProductRequest) catalog.SaveProductInput {
	return catalog.SaveProductInput{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		PrecioVenta: in.PrecioVenta,
		Cantidad:    in.Cantidad,
		ImagenURL:   in.ImagenURL,
		CategoriaID: in.CategoriaID,
	}
}

// CreateProduct alta de producto (inventario).
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.CreateProduct(c.Context(), sessionToken(c), saveProductInput(in)); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "producto creado"})
}

// UpdateProduct edición de producto (inventario).
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.SaveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateProduct(c.Context(), sessionToken(c), id, saveProductInput(in)); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto actualizado"})
}

// ArchiveProduct archivado lógico (inventario).
func (h *CatalogHandler) ArchiveProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.ArchiveProduct(c.Context(), sessionToken(c), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto archivado"})
}

// UnarchiveProduct restaura un producto archivado (inventario).
func (h *CatalogHandler) UnarchiveProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.UnarchiveProduct(c.Context(), sessionToken(c), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto restaurado"})
}

// ListCategories categorías activas (o archivadas con ?archivadas=true).
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.Context(), sessionToken(c), c.QueryBool("archivadas", false))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// CreateCategory alta de categoría (inventario).
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.SaveCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.CreateCategory(c.Context(), sessionToken(c), in.Nombre, in.Descripcion); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "categoría creada"})
}

// UpdateCategory edición de categoría (inventario).
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.SaveCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateCategory(c.Context(), sessionToken(c), id, in.Nombre, in.Descripcion); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "categoría actualizada"})
}

// ArchiveCategory archivado de categoría (inventario).
func (h *CatalogHandler) ArchiveCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.ArchiveCategory(c.Context(), sessionToken(c), id); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "categoría archivada"})
}
