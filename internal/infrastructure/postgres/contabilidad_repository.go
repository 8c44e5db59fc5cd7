package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acampos/gestorapp/internal/domain/entity"
	"github.com/acampos/gestorapp/internal/domain/repository"
)

var _ repository.ContabilidadRepository = (*ContabilidadRepo)(nil)

// ContabilidadRepo implementación del puerto ContabilidadRepository sobre
// PostgreSQL (usable con pool o tx).
type ContabilidadRepo struct {
	q Querier
}

// NewContabilidadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContabilidadRepository(q Querier) *ContabilidadRepo {
	return &ContabilidadRepo{q: q}
}

// Create persiste una transacción nueva (monto ya firmado).
func (r *ContabilidadRepo) Create(ctx context.Context, t *entity.Transaccion) error {
	query := `
		INSERT INTO contabilidad (id, usuario_id, fecha, descripcion, tipo, monto, metodo_pago, nota)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.UsuarioID, t.Fecha, t.Descripcion, t.Tipo, t.Monto, t.MetodoPago, t.Nota,
	)
	if err != nil {
		return fmt.Errorf("insert transaccion: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción del usuario; nil si no existe o es de otro tenant.
func (r *ContabilidadRepo) GetByID(ctx context.Context, usuarioID, id string) (*entity.Transaccion, error) {
	query := `
		SELECT id, usuario_id, fecha, descripcion, tipo, monto, metodo_pago, nota
		FROM contabilidad WHERE usuario_id = $1 AND id = $2`
	var t entity.Transaccion
	err := r.q.QueryRow(ctx, query, usuarioID, id).Scan(
		&t.ID, &t.UsuarioID, &t.Fecha, &t.Descripcion, &t.Tipo, &t.Monto, &t.MetodoPago, &t.Nota,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaccion: %w", err)
	}
	return &t, nil
}

// ListByUsuario lista las transacciones del usuario, más recientes primero.
func (r *ContabilidadRepo) ListByUsuario(ctx context.Context, usuarioID string) ([]*entity.Transaccion, error) {
	query := `
		SELECT id, usuario_id, fecha, descripcion, tipo, monto, metodo_pago, nota
		FROM contabilidad WHERE usuario_id = $1 ORDER BY fecha DESC`
	rows, err := r.q.Query(ctx, query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list transacciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaccion
	for rows.Next() {
		var t entity.Transaccion
		if err := rows.Scan(&t.ID, &t.UsuarioID, &t.Fecha, &t.Descripcion, &t.Tipo, &t.Monto, &t.MetodoPago, &t.Nota); err != nil {
			return nil, fmt.Errorf("scan transaccion: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina una transacción del usuario. Devuelve false si no existía.
func (r *ContabilidadRepo) Delete(ctx context.Context, usuarioID, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM contabilidad WHERE usuario_id = $1 AND id = $2`, usuarioID, id)
	if err != nil {
		return false, fmt.Errorf("delete transaccion: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
