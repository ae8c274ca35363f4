// Package pdf implementa la exportación del reporte de inventario con
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MÉTRICAS: productos / stock / bajo stock / órdenes / ventas │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: productos en o bajo el umbral de reposición          │
//	│  TABLA: productos por categoría                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/tienda-gateway/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 63, Green: 81, Blue: 181}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 198, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, data *reports.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metricsRows(data)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(data.ProductosBajos) > 0 {
		m.AddRows(sectionTitle(fmt.Sprintf("Productos con stock bajo (≤ %d)", reports.UmbralBajoStock)))
		m.AddRows(lowStockHeaderRow())
		for _, r := range lowStockRows(data) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	m.AddRows(sectionTitle("Productos por categoría"))
	for _, r := range categoryRows(data) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(data *reports.ReportData) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+data.GeneradoEn.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 5, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// metricsRows: la franja de métricas del panel.
func metricsRows(data *reports.ReportData) []core.Row {
	metric := func(label, value string, color *props.Color) core.Col {
		return col.New(2).Add(
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: color}),
			text.New(label, props.Text{Size: 7, Top: 6, Align: align.Center, Color: colorGray}),
		)
	}
	bajoColor := colorPrimary
	if data.BajoStock > 0 {
		bajoColor = colorAlert
	}
	return []core.Row{
		row.New(14).Add(
			metric("Productos", fmt.Sprintf("%d", data.TotalProductos), colorPrimary),
			metric("Stock total", fmt.Sprintf("%d", data.StockTotal), colorPrimary),
			metric("Bajo stock", fmt.Sprintf("%d", data.BajoStock), bajoColor),
			metric("Categorías", fmt.Sprintf("%d", data.TotalCategorias), colorPrimary),
			metric("Órdenes", fmt.Sprintf("%d", data.TotalOrdenes), colorPrimary),
			metric("Ventas", "$"+data.VentasTotal.StringFixed(2), colorPrimary),
		),
	}
}

func sectionTitle(titulo string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(titulo, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
		),
	)
}

func lowStockHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray}),
		)
	}
	return row.New(6).Add(
		header(7, "Producto"),
		header(2, "Stock"),
		header(3, "Precio"),
	)
}

func lowStockRows(data *reports.ReportData) []core.Row {
	rows := make([]core.Row, 0, len(data.ProductosBajos))
	for _, p := range data.ProductosBajos {
		rows = append(rows, row.New(5).Add(
			col.New(7).Add(text.New(p.Nombre, props.Text{Size: 8})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", p.Cantidad), props.Text{Size: 8, Color: colorAlert})),
			col.New(3).Add(text.New("$"+p.PrecioVenta.StringFixed(2), props.Text{Size: 8})),
		))
	}
	return rows
}

func categoryRows(data *reports.ReportData) []core.Row {
	rows := make([]core.Row, 0, len(data.PorCategoria))
	for _, c := range data.PorCategoria {
		rows = append(rows, row.New(5).Add(
			col.New(9).Add(text.New(c.Nombre, props.Text{Size: 8})),
			col.New(3).Add(text.New(fmt.Sprintf("%d productos", c.Productos), props.Text{Size: 8, Color: colorGray})),
		))
	}
	return rows
}
