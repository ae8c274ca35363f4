package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrOutOfStock           = errors.New("stock insuficiente para la cantidad solicitada")
	ErrBackendUnavailable   = errors.New("el backend no respondió la petición")
	ErrMalformedResponse    = errors.New("respuesta del backend con formato inesperado")
	ErrCheckoutSession      = errors.New("no se pudo crear la sesión de pago")
	ErrDuplicateSubmission  = errors.New("la orden ya fue registrada para esta sesión de pago")
	ErrEmptyCart            = errors.New("el carrito está vacío")
	ErrSessionNotFound      = errors.New("sesión no encontrada")
)
