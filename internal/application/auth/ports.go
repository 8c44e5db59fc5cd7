package auth

import (
	"context"

	"github.com/acampos/gestorapp/internal/domain/repository"
)

// TxRunner ejecuta el alta de cuenta y su aprovisionamiento dentro de una
// transacción: si sembrar los fondos falla, la fila de usuario no queda
// huérfana.
type TxRunner interface {
	RunRegistro(ctx context.Context, fn func(
		usuarios repository.UsuarioRepository,
		fondos repository.FondosRepository,
	) error) error
}
