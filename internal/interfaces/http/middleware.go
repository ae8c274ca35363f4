package http

import (
	"github.com/gofiber/fiber/v2"

	appauth "github.com/jhoicas/tienda-gateway/internal/application/auth"
	"github.com/jhoicas/tienda-gateway/internal/application/dto"
	domauth "github.com/jhoicas/tienda-gateway/internal/domain/auth"
	"github.com/jhoicas/tienda-gateway/internal/domain/entity"
	"github.com/jhoicas/tienda-gateway/pkg/token"
)

// Locals keys para la sesión y el estado de la puerta en Fiber.
const (
	LocalSession    = "session"
	LocalGateStatus = "gate_status"
)

// Rutas de login a las que redirige la puerta según el rol requerido.
const (
	POSLoginPath       = "/pos/login"
	InventoryLoginPath = "/inventario/login"
)

// GuardConfig dependencias del guard de rutas.
type GuardConfig struct {
	Store      appauth.SessionStore
	CookieName string
	Secret     string
}

// Guard protege un grupo de rutas para un tipo de usuario.
//
// La puerta nace en Unknown y se evalúa con la sesión del store local. Tres
// salidas, las tres observables:
//   - Unknown (el store no pudo leerse): placeholder neutro 202, sin
//     contenido protegido y sin redirect.
//   - Unauthenticated (sin cookie, cookie inválida, sesión ausente o rol
//     equivocado): redirect 302 al login del rol. No es un error: es el
//     resultado normal de la puerta.
//   - Authenticated: la sesión queda en Locals y sigue la cadena.
//
// El rol es partición dura: una sesión POS jamás pasa la puerta de
// inventario ni al revés.
func Guard(requiredTipo string, cfg GuardConfig) fiber.Handler {
	loginPath := POSLoginPath
	if requiredTipo == entity.TipoInventario {
		loginPath = InventoryLoginPath
	}

	return func(c *fiber.Ctx) error {
		gate := domauth.NewGate(requiredTipo)

		var sess *entity.Session
		if cookie := c.Cookies(cfg.CookieName); cookie != "" {
			sessionID, _, err := token.Parse(cfg.Secret, cookie)
			if err == nil {
				loaded, loadErr := cfg.Store.LoadSession(c.Context(), sessionID)
				if loadErr != nil {
					// El store no respondió: la puerta queda en Unknown.
					// Placeholder neutro, nada de contenido ni redirect.
					c.Locals(LocalGateStatus, gate.Status())
					return c.Status(fiber.StatusAccepted).JSON(dto.MessageResponse{
						Message: "verificando sesión...",
					})
				}
				sess = loaded
			}
		}

		status := gate.Evaluate(sess)
		c.Locals(LocalGateStatus, status)
		if status != domauth.StatusAuthenticated {
			return c.Redirect(loginPath, fiber.StatusFound)
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después del guard).
func GetSession(c *fiber.Ctx) *entity.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return nil
	}
	s, _ := v.(*entity.Session)
	return s
}

// GetGateStatus devuelve el estado de la puerta registrado para la petición.
func GetGateStatus(c *fiber.Ctx) domauth.Status {
	v := c.Locals(LocalGateStatus)
	if v == nil {
		return domauth.StatusUnknown
	}
	s, _ := v.(domauth.Status)
	return s
}
