package entity

import "time"

// Session es la sesión autenticada que el gateway guarda localmente:
// el token bearer del backend (opaco, sin validar formato) más el usuario.
// No expira localmente; vive hasta logout o limpieza explícita.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      *User     `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// Valida reporta si la sesión tiene token no vacío y usuario presente.
// No consulta red ni reloj: es el insumo puro de la puerta de autenticación.
func (s *Session) Valida() bool {
	return s != nil && s.Token != "" && s.User != nil
}
