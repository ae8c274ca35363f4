package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/tienda-gateway/internal/domain"
	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
)

// loginResponse respuesta de los endpoints de login del backend:
// token bearer + registro de usuario.
type loginResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POSLogin POST /api/pos/login. El backend no siempre etiqueta el tipo en la
// respuesta; el gateway lo fija según el endpoint usado, igual que hacía el
// frontend original al guardar el usuario.
func (c *Client) POSLogin(ctx context.Context, email, password string) (string, *entity.User, error) {
	var out loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/pos/login", "", loginRequest{Email: email, Password: password}, &out); err != nil {
		return "", nil, err
	}
	if out.Token == "" || out.User == nil {
		return "", nil, domain.ErrMalformedResponse
	}
	out.User.Tipo = entity.TipoPOS
	return out.Token, out.User, nil
}

// InventoryLogin POST /api/auth/login para personal de inventario.
func (c *Client) InventoryLogin(ctx context.Context, email, password string) (string, *entity.User, error) {
	var out loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", loginRequest{Email: email, Password: password}, &out); err != nil {
		return "", nil, err
	}
	if out.Token == "" || out.User == nil {
		return "", nil, domain.ErrMalformedResponse
	}
	out.User.Tipo = entity.TipoInventario
	return out.Token, out.User, nil
}

// registerRequest cuerpo de POST /api/pos/register.
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POSRegister registra un cliente POS; el backend envía el correo de
// verificación de cuenta.
func (c *Client) POSRegister(ctx context.Context, username, email, password string) error {
	return c.do(ctx, http.MethodPost, "/api/pos/register", "",
		registerRequest{Username: username, Email: email, Password: password}, nil)
}

// POSResendVerification reenvía el correo de verificación.
func (c *Client) POSResendVerification(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/api/pos/resend-verification", "",
		map[string]string{"email": email}, nil)
}

// resetPasswordRequest cuerpo de POST /api/pos/reset-password.
type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// POSResetPassword consume el token de restablecimiento y fija la nueva contraseña.
func (c *Client) POSResetPassword(ctx context.Context, resetToken, newPassword string) error {
	return c.do(ctx, http.MethodPost, "/api/pos/reset-password", "",
		resetPasswordRequest{Token: resetToken, Password: newPassword}, nil)
}

// POSForgotPassword solicita el correo de restablecimiento.
func (c *Client) POSForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/api/pos/forgot-password", "",
		map[string]string{"email": email}, nil)
}
