package dto

// CheckoutResponse salida de iniciar el checkout: el identificador de la
// sesión de pago alojada que consume el redirect externo.
type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
}

// ConfirmOrderRequest entrada del aterrizaje post-pago.
type ConfirmOrderRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

// ConfirmOrderResponse salida del registro de la orden.
type ConfirmOrderResponse struct {
	Registered bool   `json:"registered"`
	Message    string `json:"message"`
}
