package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductoRequest entrada para crear o reemplazar un producto del almacén.
// Cantidad y Precio son punteros para distinguir "ausente" de cero.
type ProductoRequest struct {
	CodigoProducto string           `json:"codigo_producto" form:"codigo_producto"`
	Nombre         string           `json:"nombre" form:"nombre"`
	Cantidad       *int64           `json:"cantidad" form:"cantidad"`
	Precio         *decimal.Decimal `json:"precio" form:"precio"`
	Fecha          *time.Time       `json:"fecha,omitempty"`
}

// ProductoResponse salida de un producto del almacén.
type ProductoResponse struct {
	ID             string          `json:"id"`
	CodigoProducto string          `json:"codigo_producto,omitempty"`
	Nombre         string          `json:"nombre"`
	Cantidad       int64           `json:"cantidad"`
	Precio         decimal.Decimal `json:"precio"`
	Fecha          time.Time       `json:"fecha"`
}
