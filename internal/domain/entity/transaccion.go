package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaccion es una entrada del libro de contabilidad de un usuario.
// Monto se persiste ya firmado: positivo para ingresos, negativo para egresos.
type Transaccion struct {
	ID          string
	UsuarioID   string
	Fecha       time.Time
	Descripcion string
	Tipo        string // "ingreso" | "egreso"
	Monto       decimal.Decimal
	MetodoPago  string // opcional
	Nota        string // opcional
}

// Fondos es el saldo denormalizado de un usuario: exactamente una fila por
// tenant, sembrada en 0.00 al registrarse. Debe igualar la suma firmada de
// sus transacciones tras cada operación completada.
type Fondos struct {
	UsuarioID            string
	SaldoActual          decimal.Decimal
	UltimaActualizacion  time.Time
}
