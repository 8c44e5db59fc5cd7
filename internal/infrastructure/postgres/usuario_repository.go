package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acampos/gestorapp/internal/domain"
	"github.com/acampos/gestorapp/internal/domain/entity"
	"github.com/acampos/gestorapp/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL
// (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un usuario nuevo. ErrEmailYaRegistrado ante correo duplicado.
func (r *UsuarioRepo) Create(ctx context.Context, usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nombre, correo, contrasenia, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		usuario.ID, usuario.Nombre, usuario.Correo, usuario.Contrasenia, usuario.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailYaRegistrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// FindByEmail obtiene un usuario por correo; nil si no existe.
func (r *UsuarioRepo) FindByEmail(ctx context.Context, correo string) (*entity.Usuario, error) {
	query := `
		SELECT id, nombre, correo, contrasenia, created_at
		FROM usuarios WHERE correo = $1`
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, correo).Scan(
		&u.ID, &u.Nombre, &u.Correo, &u.Contrasenia, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by email: %w", err)
	}
	return &u, nil
}
