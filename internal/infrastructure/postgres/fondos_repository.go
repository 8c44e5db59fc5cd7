package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/acampos/gestorapp/internal/domain/entity"
	"github.com/acampos/gestorapp/internal/domain/repository"
)

var _ repository.FondosRepository = (*FondosRepo)(nil)

// FondosRepo implementación del puerto FondosRepository sobre PostgreSQL
// (usable con pool o tx). Una fila por usuario (unique en usuario_id).
type FondosRepo struct {
	q Querier
}

// NewFondosRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFondosRepository(q Querier) *FondosRepo {
	return &FondosRepo{q: q}
}

// Crear siembra la fila de fondos del usuario con saldo 0.00.
func (r *FondosRepo) Crear(ctx context.Context, usuarioID string) error {
	query := `
		INSERT INTO fondos (usuario_id, saldo_actual, ultima_actualizacion)
		VALUES ($1, 0.00, now())`
	_, err := r.q.Exec(ctx, query, usuarioID)
	if err != nil {
		return fmt.Errorf("insert fondos: %w", err)
	}
	return nil
}

// Get obtiene los fondos del usuario; nil si no hay fila.
func (r *FondosRepo) Get(ctx context.Context, usuarioID string) (*entity.Fondos, error) {
	return r.get(ctx, usuarioID, false)
}

// GetForUpdate obtiene los fondos y bloquea la fila (SELECT FOR UPDATE) para
// serializar las mutaciones concurrentes del mismo usuario dentro de una tx.
func (r *FondosRepo) GetForUpdate(ctx context.Context, usuarioID string) (*entity.Fondos, error) {
	return r.get(ctx, usuarioID, true)
}

func (r *FondosRepo) get(ctx context.Context, usuarioID string, forUpdate bool) (*entity.Fondos, error) {
	query := `
		SELECT usuario_id, saldo_actual, ultima_actualizacion
		FROM fondos WHERE usuario_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var f entity.Fondos
	err := r.q.QueryRow(ctx, query, usuarioID).Scan(
		&f.UsuarioID, &f.SaldoActual, &f.UltimaActualizacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fondos: %w", err)
	}
	return &f, nil
}

// ActualizarSaldo escribe el nuevo saldo y la marca de tiempo.
func (r *FondosRepo) ActualizarSaldo(ctx context.Context, usuarioID string, saldo decimal.Decimal, cuando time.Time) error {
	query := `
		UPDATE fondos SET saldo_actual = $2, ultima_actualizacion = $3
		WHERE usuario_id = $1`
	_, err := r.q.Exec(ctx, query, usuarioID, saldo, cuando)
	if err != nil {
		return fmt.Errorf("update saldo: %w", err)
	}
	return nil
}
