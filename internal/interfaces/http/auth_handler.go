package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appauth "github.com/jhoicas/tienda-gateway/internal/application/auth"
	"github.com/jhoicas/tienda-gateway/internal/application/dto"
	"github.com/jhoicas/tienda-gateway/pkg/token"
)

// AuthHandler maneja login/registro/verificación y la cookie de sesión.
type AuthHandler struct {
	uc         *appauth.UseCase
	cookieName string
	secret     string
	expMinutes int
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *appauth.UseCase, cookieName, secret string, expMinutes int) *AuthHandler {
	return &AuthHandler{uc: uc, cookieName: cookieName, secret: secret, expMinutes: expMinutes}
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Expires:  time.Now().Add(time.Duration(h.expMinutes) * time.Minute),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// LoginPOS autentica un cliente de la tienda.
func (h *AuthHandler) LoginPOS(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.LoginPOS(c.Context(), in.Email, in.Password)
	if err != nil {
		return errorJSON(c, err)
	}
	h.setSessionCookie(c, out.CookieValue)
	return c.JSON(dto.SessionResponse{User: *out.Session.User})
}

// LoginInventory autentica personal de inventario.
func (h *AuthHandler) LoginInventory(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.LoginInventory(c.Context(), in.Email, in.Password)
	if err != nil {
		return errorJSON(c, err)
	}
	h.setSessionCookie(c, out.CookieValue)
	return c.JSON(dto.SessionResponse{User: *out.Session.User})
}

// Logout limpia la sesión local y expira la cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if cookie := c.Cookies(h.cookieName); cookie != "" {
		if sessionID, _, err := token.Parse(h.secret, cookie); err == nil {
			if err := h.uc.Logout(c.Context(), sessionID); err != nil {
				return errorJSON(c, err)
			}
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// Register registro de cliente POS.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Register(c.Context(), in.Username, in.Email, in.Password); err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "cuenta creada, revisa tu correo para verificarla"})
}

// ResendVerification reenvía el correo de verificación.
func (h *AuthHandler) ResendVerification(c *fiber.Ctx) error {
	var in dto.ResendVerificationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ResendVerification(c.Context(), in.Email); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "correo de verificación reenviado"})
}

// ForgotPassword solicita el correo de restablecimiento.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ForgotPassword(c.Context(), in.Email); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "si la cuenta existe, se envió el correo de restablecimiento"})
}

// ResetPassword consume el token de restablecimiento.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ResetPassword(c.Context(), in.Token, in.Password); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada"})
}
