package auth

import (
	"context"
	"fmt"

	"github.com/acampos/gestorapp/internal/domain/repository"
)

// ProvisionError indica qué artefacto del tenant no pudo aprovisionarse.
type ProvisionError struct {
	Artefacto string // "usuario" | "fondos"
	Err       error
}

func (e *ProvisionError) Error() string {
	return fmt.Sprintf("aprovisionar %s: %v", e.Artefacto, e.Err)
}

func (e *ProvisionError) Unwrap() error { return e.Err }

// provisionarFondos siembra la fila de fondos del tenant en 0.00. El resto del
// esquema (almacén, contabilidad, fondos) es compartido y lo crean las
// migraciones al arranque; las operaciones del libro asumen que esta fila
// existe una vez el registro retorna éxito.
func provisionarFondos(ctx context.Context, fondos repository.FondosRepository, usuarioID string) error {
	if err := fondos.Crear(ctx, usuarioID); err != nil {
		return &ProvisionError{Artefacto: "fondos", Err: err}
	}
	return nil
}
