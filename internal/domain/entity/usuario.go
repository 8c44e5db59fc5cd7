package entity

import "time"

// Usuario representa una cuenta registrada. Es la raíz de un tenant:
// sus productos, transacciones y fondos existen solo mientras exista la cuenta.
type Usuario struct {
	ID          string
	Nombre      string
	Correo      string
	Contrasenia string // hash bcrypt, nunca en claro después de persistir
	CreatedAt   time.Time
}
