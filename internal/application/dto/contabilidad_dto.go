package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// NuevaTransaccionRequest entrada para registrar una transacción.
// Monto es la magnitud sin signo; el signo lo aplica el caso de uso según Tipo.
type NuevaTransaccionRequest struct {
	Tipo        string           `json:"tipo" form:"tipo"`
	Descripcion string           `json:"descripcion" form:"descripcion"`
	Monto       *decimal.Decimal `json:"monto" form:"monto"`
	MetodoPago  string           `json:"metodo_pago" form:"metodo_pago"`
	Nota        string           `json:"nota" form:"nota"`
}

// TransaccionResponse salida de una entrada del libro (monto ya firmado).
type TransaccionResponse struct {
	ID          string          `json:"id"`
	Fecha       time.Time       `json:"fecha"`
	Descripcion string          `json:"descripcion"`
	Tipo        string          `json:"tipo"`
	Monto       decimal.Decimal `json:"monto"`
	MetodoPago  string          `json:"metodo_pago,omitempty"`
	Nota        string          `json:"nota,omitempty"`
}

// SaldoResponse saldo actual del usuario.
type SaldoResponse struct {
	Saldo decimal.Decimal `json:"saldo"`
}
