package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acampos/gestorapp/internal/domain/entity"
	"github.com/acampos/gestorapp/internal/domain/repository"
)

var _ repository.AlmacenRepository = (*AlmacenRepo)(nil)

// AlmacenRepo implementación del puerto AlmacenRepository sobre PostgreSQL.
// Una sola tabla compartida con columna usuario_id; toda consulta filtra por
// el dueño.
type AlmacenRepo struct {
	q Querier
}

// NewAlmacenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlmacenRepository(q Querier) *AlmacenRepo {
	return &AlmacenRepo{q: q}
}

// Create persiste un producto nuevo.
func (r *AlmacenRepo) Create(ctx context.Context, producto *entity.Producto) error {
	query := `
		INSERT INTO almacen (id, usuario_id, codigo_producto, nombre, cantidad, precio, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		producto.ID, producto.UsuarioID, producto.CodigoProducto, producto.Nombre,
		producto.Cantidad, producto.Precio, producto.Fecha,
	)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto del usuario; nil si no existe o es de otro tenant.
func (r *AlmacenRepo) GetByID(ctx context.Context, usuarioID, id string) (*entity.Producto, error) {
	query := `
		SELECT id, usuario_id, codigo_producto, nombre, cantidad, precio, fecha
		FROM almacen WHERE usuario_id = $1 AND id = $2`
	var p entity.Producto
	err := r.q.QueryRow(ctx, query, usuarioID, id).Scan(
		&p.ID, &p.UsuarioID, &p.CodigoProducto, &p.Nombre, &p.Cantidad, &p.Precio, &p.Fecha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// ListByUsuario lista los productos del usuario, más recientes primero.
func (r *AlmacenRepo) ListByUsuario(ctx context.Context, usuarioID string) ([]*entity.Producto, error) {
	query := `
		SELECT id, usuario_id, codigo_producto, nombre, cantidad, precio, fecha
		FROM almacen WHERE usuario_id = $1 ORDER BY fecha DESC`
	rows, err := r.q.Query(ctx, query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.UsuarioID, &p.CodigoProducto, &p.Nombre, &p.Cantidad, &p.Precio, &p.Fecha); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update reemplaza la fila completa del producto. Devuelve false si el ID no
// existe para ese usuario.
func (r *AlmacenRepo) Update(ctx context.Context, producto *entity.Producto) (bool, error) {
	query := `
		UPDATE almacen
		SET codigo_producto = $3, nombre = $4, cantidad = $5, precio = $6, fecha = $7
		WHERE usuario_id = $1 AND id = $2`
	cmd, err := r.q.Exec(ctx, query,
		producto.UsuarioID, producto.ID, producto.CodigoProducto, producto.Nombre,
		producto.Cantidad, producto.Precio, producto.Fecha,
	)
	if err != nil {
		return false, fmt.Errorf("update producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un producto del usuario. Devuelve false si no existía.
func (r *AlmacenRepo) Delete(ctx context.Context, usuarioID, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM almacen WHERE usuario_id = $1 AND id = $2`, usuarioID, id)
	if err != nil {
		return false, fmt.Errorf("delete producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
