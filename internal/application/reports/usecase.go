// Package reports arma las métricas del panel de inventario y su exportación
// a PDF a partir de los datos del backend.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
	"github.com/jhoicas/tienda-gateway/pkg/logger"
)

// UmbralBajoStock umbral de reposición usado en el panel.
const UmbralBajoStock = 10

// BackendReportsAPI datos fuente del reporte.
type BackendReportsAPI interface {
	ListProducts(ctx context.Context, token string) ([]entity.Product, error)
	ListCategories(ctx context.Context, token string) ([]entity.Category, error)
	AllOrders(ctx context.Context, token string) ([]entity.Order, error)
}

// PDFGenerator puerto de salida para la exportación del reporte.
type PDFGenerator interface {
	GenerateReportPDF(ctx context.Context, data *ReportData) ([]byte, error)
}

// CategoriaResumen conteo de productos por categoría.
type CategoriaResumen struct {
	Nombre    string
	Productos int
}

// ReportData métricas agregadas del inventario y las ventas.
type ReportData struct {
	GeneradoEn      time.Time
	TotalProductos  int
	StockTotal      int
	BajoStock       int
	TotalCategorias int
	TotalOrdenes    int
	VentasTotal     decimal.Decimal
	PorCategoria    []CategoriaResumen
	ProductosBajos  []entity.Product // detalle de productos en o bajo el umbral
}

// UseCase reportes de inventario.
type UseCase struct {
	api BackendReportsAPI
	pdf PDFGenerator
	log *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(api BackendReportsAPI, pdf PDFGenerator, log *logger.Logger) *UseCase {
	return &UseCase{api: api, pdf: pdf, log: log.Component("reports")}
}

// Dashboard calcula las métricas del panel desde productos, categorías y
// órdenes vigentes.
func (uc *UseCase) Dashboard(ctx context.Context, token string) (*ReportData, error) {
	products, err := uc.api.ListProducts(ctx, token)
	if err != nil {
		return nil, err
	}
	categories, err := uc.api.ListCategories(ctx, token)
	if err != nil {
		return nil, err
	}
	orders, err := uc.api.AllOrders(ctx, token)
	if err != nil {
		return nil, err
	}

	data := &ReportData{
		GeneradoEn:      time.Now(),
		TotalProductos:  len(products),
		TotalCategorias: len(categories),
		TotalOrdenes:    len(orders),
		VentasTotal:     decimal.Zero,
	}

	porCategoria := make(map[int64]int)
	for _, p := range products {
		data.StockTotal += p.Cantidad
		if p.BajoStock(UmbralBajoStock) {
			data.BajoStock++
			data.ProductosBajos = append(data.ProductosBajos, p)
		}
		porCategoria[p.CategoriaID]++
	}
	for _, c := range categories {
		data.PorCategoria = append(data.PorCategoria, CategoriaResumen{
			Nombre:    c.Nombre,
			Productos: porCategoria[c.ID],
		})
	}
	for _, o := range orders {
		data.VentasTotal = data.VentasTotal.Add(o.Total)
	}
	return data, nil
}

// PDF genera la exportación del reporte.
func (uc *UseCase) PDF(ctx context.Context, token string) ([]byte, error) {
	data, err := uc.Dashboard(ctx, token)
	if err != nil {
		return nil, err
	}
	doc, err := uc.pdf.GenerateReportPDF(ctx, data)
	if err != nil {
		uc.log.Error().Err(err).Msg("generar PDF del reporte falló")
		return nil, err
	}
	return doc, nil
}
