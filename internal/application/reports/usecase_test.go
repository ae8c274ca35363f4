package reports_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-gateway/internal/application/reports"
	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
	"github.com/jhoicas/tienda-gateway/pkg/logger"
)

type fakeSource struct {
	products   []entity.Product
	categories []entity.Category
	orders     []entity.Order
}

func (f *fakeSource) ListProducts(ctx context.Context, token string) ([]entity.Product, error) {
	return f.products, nil
}

func (f *fakeSource) ListCategories(ctx context.Context, token string) ([]entity.Category, error) {
	return f.categories, nil
}

func (f *fakeSource) AllOrders(ctx context.Context, token string) ([]entity.Order, error) {
	return f.orders, nil
}

type fakePDF struct{ calls int }

func (f *fakePDF) GenerateReportPDF(ctx context.Context, data *reports.ReportData) ([]byte, error) {
	f.calls++
	return []byte("%PDF-1.4"), nil
}

func total(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestDashboard_CalculaMetricas(t *testing.T) {
	f := &fakeSource{
		products: []entity.Product{
			{ID: 1, Nombre: "Café", Cantidad: 25, CategoriaID: 1},
			{ID: 2, Nombre: "Té", Cantidad: 10, CategoriaID: 1},  // en el umbral: bajo stock
			{ID: 3, Nombre: "Taza", Cantidad: 3, CategoriaID: 2}, // bajo stock
		},
		categories: []entity.Category{
			{ID: 1, Nombre: "Bebidas"},
			{ID: 2, Nombre: "Accesorios"},
		},
		orders: []entity.Order{
			{ID: 1, Total: total("100.00")},
			{ID: 2, Total: total("50.50")},
		},
	}
	uc := reports.NewUseCase(f, &fakePDF{}, logger.NewNop())

	data, err := uc.Dashboard(context.Background(), "tok")
	require.NoError(t, err)

	assert.Equal(t, 3, data.TotalProductos)
	assert.Equal(t, 38, data.StockTotal)
	assert.Equal(t, 2, data.BajoStock, "cantidad <= umbral cuenta como bajo stock")
	assert.Equal(t, 2, data.TotalCategorias)
	assert.Equal(t, 2, data.TotalOrdenes)
	assert.True(t, data.VentasTotal.Equal(total("150.50")))

	require.Len(t, data.PorCategoria, 2)
	assert.Equal(t, "Bebidas", data.PorCategoria[0].Nombre)
	assert.Equal(t, 2, data.PorCategoria[0].Productos)
	assert.Equal(t, 1, data.PorCategoria[1].Productos)

	require.Len(t, data.ProductosBajos, 2)
}

func TestDashboard_SinDatos_MetricasEnCero(t *testing.T) {
	uc := reports.NewUseCase(&fakeSource{}, &fakePDF{}, logger.NewNop())

	data, err := uc.Dashboard(context.Background(), "tok")
	require.NoError(t, err)

	assert.Zero(t, data.TotalProductos)
	assert.Zero(t, data.BajoStock)
	assert.True(t, data.VentasTotal.IsZero())
}

func TestPDF_GeneraDocumento(t *testing.T) {
	pdf := &fakePDF{}
	uc := reports.NewUseCase(&fakeSource{}, pdf, logger.NewNop())

	doc, err := uc.PDF(context.Background(), "tok")
	require.NoError(t, err)

	assert.Equal(t, 1, pdf.calls)
	assert.NotEmpty(t, doc)
}
