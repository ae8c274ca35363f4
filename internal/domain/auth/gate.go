// Package auth implementa la puerta de autenticación por rol.
//
// El estado es tri-variante explícito: Unknown es un estado real y observable
// (la verificación aún no corre o el store no pudo leerse), no un booleano
// nulo. Mientras la puerta esté en Unknown no se sirve contenido protegido
// ni se redirige.
package auth

import "github.com/jhoicas/tienda-gateway/internal/domain/entity"

// Status es el resultado de evaluar la puerta.
type Status int

const (
	// StatusUnknown: la verificación no ha corrido o no pudo resolverse.
	StatusUnknown Status = iota
	// StatusAuthenticated: sesión válida y rol correcto.
	StatusAuthenticated
	// StatusUnauthenticated: sin sesión, sesión inválida o rol equivocado.
	StatusUnauthenticated
)

// String para logs y mensajes.
func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Evaluate calcula el estado de autenticación para el rol requerido.
// Autenticado si y solo si: token no vacío, usuario presente y tipo igual al
// requerido. Cualquier desviación (incluido rol equivocado) es
// Unauthenticated. Función pura e idempotente: mismo insumo, mismo resultado.
func Evaluate(sess *entity.Session, requiredTipo string) Status {
	if !sess.Valida() {
		return StatusUnauthenticated
	}
	if sess.User.Tipo != requiredTipo {
		return StatusUnauthenticated
	}
	return StatusAuthenticated
}

// Gate mantiene el estado observable de una puerta para un rol.
// Nace en Unknown y solo cambia al evaluar.
type Gate struct {
	requiredTipo string
	status       Status
}

// NewGate crea una puerta para el rol requerido, en estado Unknown.
func NewGate(requiredTipo string) *Gate {
	return &Gate{requiredTipo: requiredTipo, status: StatusUnknown}
}

// RequiredTipo devuelve el rol que exige la puerta.
func (g *Gate) RequiredTipo() string { return g.requiredTipo }

// Status devuelve el estado actual (Unknown hasta la primera evaluación).
func (g *Gate) Status() Status { return g.status }

// Evaluate evalúa la sesión contra el rol y fija el estado de la puerta.
func (g *Gate) Evaluate(sess *entity.Session) Status {
	g.status = Evaluate(sess, g.requiredTipo)
	return g.status
}
