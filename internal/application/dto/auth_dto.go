package dto

import "github.com/jhoicas/tienda-gateway/internal/domain/entity"

// LoginRequest entrada de login (POS o inventario).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest entrada de registro POS.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ResendVerificationRequest reenvío del correo de verificación.
type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPasswordRequest solicitud de restablecimiento.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest consumo del token de restablecimiento.
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// SessionResponse salida de login: el usuario autenticado. El token del
// backend nunca viaja al navegador; queda en el store local del gateway.
type SessionResponse struct {
	User entity.User `json:"user"`
}
