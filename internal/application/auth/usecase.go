// Package auth implementa los casos de uso de autenticación del gateway:
// login contra el backend, creación/limpieza de la sesión local y emisión de
// la cookie firmada que la referencia.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-gateway/internal/domain"
	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
	"github.com/jhoicas/tienda-gateway/pkg/logger"
	"github.com/jhoicas/tienda-gateway/pkg/token"
)

// CookieConfig configuración de la cookie de sesión del gateway.
type CookieConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// BackendAuthAPI puerto hacia los endpoints de autenticación del backend.
type BackendAuthAPI interface {
	POSLogin(ctx context.Context, email, password string) (string, *entity.User, error)
	InventoryLogin(ctx context.Context, email, password string) (string, *entity.User, error)
	POSRegister(ctx context.Context, username, email, password string) error
	POSResendVerification(ctx context.Context, email string) error
	POSForgotPassword(ctx context.Context, email string) error
	POSResetPassword(ctx context.Context, resetToken, newPassword string) error
}

// SessionStore puerto al almacenamiento local de sesiones.
type SessionStore interface {
	SaveSession(ctx context.Context, sess *entity.Session) error
	LoadSession(ctx context.Context, id string) (*entity.Session, error)
	ClearSession(ctx context.Context, id string) error
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	api    BackendAuthAPI
	store  SessionStore
	cookie CookieConfig
	log    *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(api BackendAuthAPI, store SessionStore, cookie CookieConfig, log *logger.Logger) *UseCase {
	return &UseCase{api: api, store: store, cookie: cookie, log: log.Component("auth")}
}

// LoginResult sesión creada + valor firmado para la cookie.
type LoginResult struct {
	Session     *entity.Session
	CookieValue string
}

// LoginPOS autentica un cliente POS contra el backend y crea la sesión local.
func (uc *UseCase) LoginPOS(ctx context.Context, email, password string) (*LoginResult, error) {
	tok, user, err := uc.api.POSLogin(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return uc.createSession(ctx, tok, user)
}

// LoginInventory autentica personal de inventario.
func (uc *UseCase) LoginInventory(ctx context.Context, email, password string) (*LoginResult, error) {
	tok, user, err := uc.api.InventoryLogin(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return uc.createSession(ctx, tok, user)
}

func (uc *UseCase) createSession(ctx context.Context, backendToken string, user *entity.User) (*LoginResult, error) {
	if backendToken == "" || user == nil || !entity.TipoValido(user.Tipo) {
		return nil, domain.ErrMalformedResponse
	}
	sess := &entity.Session{
		ID:        uuid.New().String(),
		Token:     backendToken,
		User:      user,
		CreatedAt: time.Now(),
	}
	if err := uc.store.SaveSession(ctx, sess); err != nil {
		return nil, err
	}
	cookie, err := token.Generate(uc.cookie.Secret, sess.ID, user.Tipo, uc.cookie.Issuer, uc.cookie.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("user_id", user.ID).Str("tipo", user.Tipo).Msg("sesión creada")
	return &LoginResult{Session: sess, CookieValue: cookie}, nil
}

// Logout limpia la sesión local. Limpiar una sesión inexistente no es error.
func (uc *UseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return uc.store.ClearSession(ctx, sessionID)
}

// Register registro de cliente POS; el backend envía la verificación por correo.
func (uc *UseCase) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return domain.ErrInvalidInput
	}
	return uc.api.POSRegister(ctx, username, email, password)
}

// ResendVerification reenvía el correo de verificación de cuenta.
func (uc *UseCase) ResendVerification(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrInvalidInput
	}
	return uc.api.POSResendVerification(ctx, email)
}

// ForgotPassword solicita el correo de restablecimiento.
func (uc *UseCase) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrInvalidInput
	}
	return uc.api.POSForgotPassword(ctx, email)
}

// ResetPassword consume el token de restablecimiento.
func (uc *UseCase) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if resetToken == "" || newPassword == "" {
		return domain.ErrInvalidInput
	}
	return uc.api.POSResetPassword(ctx, resetToken, newPassword)
}
