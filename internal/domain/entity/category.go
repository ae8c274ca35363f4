package entity

// Category representa una categoría de productos del catálogo.
type Category struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Archivada   bool   `json:"archivada"`
}
