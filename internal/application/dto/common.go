package dto

// ErrorResponse cuerpo de error para rutas de API (las rutas de página
// responden texto plano).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MensajeResponse confirmación de una operación de escritura.
type MensajeResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}
