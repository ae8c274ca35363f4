package entity

// Address es la dirección de entrega de un usuario. Una por usuario; el
// backend aplica "última escritura gana" al guardar.
type Address struct {
	UserID       int64  `json:"user_id"`
	Calle        string `json:"calle"`
	Numero       string `json:"numero"`
	Colonia      string `json:"colonia"`
	Ciudad       string `json:"ciudad"`
	Estado       string `json:"estado"`
	CodigoPostal string `json:"codigo_postal"`
	Telefono     string `json:"telefono"`
}
