package repository

import (
	"context"

	"github.com/acampos/gestorapp/internal/domain/entity"
)

// AlmacenRepository define el puerto de persistencia para Producto (DIP).
// Todas las operaciones están acotadas al usuario dueño del almacén.
type AlmacenRepository interface {
	Create(ctx context.Context, producto *entity.Producto) error
	GetByID(ctx context.Context, usuarioID, id string) (*entity.Producto, error)
	ListByUsuario(ctx context.Context, usuarioID string) ([]*entity.Producto, error)
	Update(ctx context.Context, producto *entity.Producto) (bool, error)
	Delete(ctx context.Context, usuarioID, id string) (bool, error)
}
