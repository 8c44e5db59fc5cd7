package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acampos/gestorapp/internal/application/auth"
	"github.com/acampos/gestorapp/internal/application/contabilidad"
	"github.com/acampos/gestorapp/internal/domain/repository"
)

var _ contabilidad.TxRunner = (*TxRunner)(nil)
var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos del libro atados a la
// tx y hace Commit o Rollback. Es la frontera atómica del protocolo de
// consistencia libro/saldo.
func (r *TxRunner) Run(ctx context.Context, fn func(
	entradas repository.ContabilidadRepository,
	fondos repository.FondosRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewContabilidadRepository(tx), NewFondosRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRegistro inicia una transacción con los repos del alta de cuenta
// (usuario + siembra de fondos).
func (r *TxRunner) RunRegistro(ctx context.Context, fn func(
	usuarios repository.UsuarioRepository,
	fondos repository.FondosRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUsuarioRepository(tx), NewFondosRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
