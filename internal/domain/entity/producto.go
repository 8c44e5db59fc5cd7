package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto es un artículo del almacén de un usuario. No tiene invariantes
// cruzadas con otras entidades; solo el scoping por UsuarioID.
type Producto struct {
	ID             string
	UsuarioID      string
	CodigoProducto string // opcional
	Nombre         string
	Cantidad       int64
	Precio         decimal.Decimal
	Fecha          time.Time
}
