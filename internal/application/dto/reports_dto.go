package dto

// CategoryCount productos por categoría para el dashboard.
type CategoryCount struct {
	Categoria string `json:"categoria"`
	Productos int    `json:"productos"`
}

// DashboardResponse métricas del panel de inventario.
type DashboardResponse struct {
	TotalProductos  int             `json:"total_productos"`
	StockTotal      int             `json:"stock_total"`
	BajoStock       int             `json:"bajo_stock"`
	TotalCategorias int             `json:"total_categorias"`
	TotalOrdenes    int             `json:"total_ordenes"`
	VentasTotal     string          `json:"ventas_total"`
	PorCategoria    []CategoryCount `json:"por_categoria"`
}
