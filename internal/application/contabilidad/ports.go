package contabilidad

import (
	"context"

	"github.com/acampos/gestorapp/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una transacción de base de
// datos: Commit si fn retorna nil, Rollback en caso contrario. Toda mutación
// del libro viaja junto a su ajuste de saldo dentro del mismo fn.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		entradas repository.ContabilidadRepository,
		fondos repository.FondosRepository,
	) error) error
}
