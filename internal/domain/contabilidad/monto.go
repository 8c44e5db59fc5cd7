package contabilidad

import "github.com/shopspring/decimal"

// Tipos válidos de transacción.
const (
	TipoIngreso = "ingreso"
	TipoEgreso  = "egreso"
)

// TipoValido indica si t es uno de los tipos reconocidos.
func TipoValido(t string) bool {
	return t == TipoIngreso || t == TipoEgreso
}

// MontoAlmacenado convierte la magnitud sin signo que envía el caller al valor
// que se persiste en el libro: +monto para ingresos, -monto para egresos.
func MontoAlmacenado(tipo string, monto decimal.Decimal) decimal.Decimal {
	if tipo == TipoEgreso {
		return monto.Neg()
	}
	return monto
}

// AjusteSaldo es el delta que una transacción nueva aplica al saldo,
// calculado desde la magnitud sin signo: +monto (ingreso), -monto (egreso).
func AjusteSaldo(tipo string, monto decimal.Decimal) decimal.Decimal {
	if tipo == TipoEgreso {
		return monto.Neg()
	}
	return monto
}

// ReversaSaldo es el delta que deshace una transacción ya persistida.
// Opera sobre el valor almacenado (firmado): basta con negarlo, de modo que
// eliminar un ingreso resta |monto| y eliminar un egreso lo suma de vuelta.
func ReversaSaldo(montoAlmacenado decimal.Decimal) decimal.Decimal {
	return montoAlmacenado.Neg()
}

// SumaFirmada calcula la suma de los montos almacenados (firmados) de un
// conjunto de transacciones. Es el valor que el saldo denormalizado debe
// igualar en todo momento.
func SumaFirmada(montos []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range montos {
		total = total.Add(m)
	}
	return total
}
