package entity

// Tipos de usuario. El tipo es una partición dura, no un nivel de permisos:
// un usuario POS jamás pasa la puerta de inventario ni al revés.
const (
	TipoPOS        = "pos"
	TipoInventario = "inventario"
)

// User representa el registro de usuario que devuelve el backend al autenticar.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Tipo     string `json:"tipo"` // pos, inventario
}

// TipoValido reporta si el tipo es uno de los conocidos.
func TipoValido(tipo string) bool {
	return tipo == TipoPOS || tipo == TipoInventario
}
