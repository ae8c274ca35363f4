package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-gateway/internal/application/dto"
	"github.com/jhoicas/tienda-gateway/internal/application/reports"
)

// ReportsHandler panel y exportación de reportes (inventario).
type ReportsHandler struct {
	uc *reports.UseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *reports.UseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// Dashboard métricas del panel de inventario.
func (h *ReportsHandler) Dashboard(c *fiber.Ctx) error {
	sess := GetSession(c)
	data, err := h.uc.Dashboard(c.Context(), sess.Token)
	if err != nil {
		return errorJSON(c, err)
	}
	out := dto.DashboardResponse{
		TotalProductos:  data.TotalProductos,
		StockTotal:      data.StockTotal,
		BajoStock:       data.BajoStock,
		TotalCategorias: data.TotalCategorias,
		TotalOrdenes:    data.TotalOrdenes,
		VentasTotal:     data.VentasTotal.StringFixed(2),
	}
	for _, cat := range data.PorCategoria {
		out.PorCategoria = append(out.PorCategoria, dto.CategoryCount{
			Categoria: cat.Nombre,
			Productos: cat.Productos,
		})
	}
	return c.JSON(out)
}

// PDF exportación del reporte en PDF.
func (h *ReportsHandler) PDF(c *fiber.Ctx) error {
	sess := GetSession(c)
	doc, err := h.uc.PDF(c.Context(), sess.Token)
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-inventario.pdf"`)
	return c.Send(doc)
}
