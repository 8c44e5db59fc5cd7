package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acampos/gestorapp/internal/domain/entity"
)

// ContabilidadRepository define el puerto de persistencia del libro de
// transacciones de un usuario (DIP).
type ContabilidadRepository interface {
	Create(ctx context.Context, transaccion *entity.Transaccion) error
	GetByID(ctx context.Context, usuarioID, id string) (*entity.Transaccion, error)
	ListByUsuario(ctx context.Context, usuarioID string) ([]*entity.Transaccion, error)
	Delete(ctx context.Context, usuarioID, id string) (bool, error)
}

// FondosRepository define el puerto de persistencia del saldo denormalizado.
// Hay exactamente una fila de fondos por usuario, creada al aprovisionar.
type FondosRepository interface {
	Crear(ctx context.Context, usuarioID string) error
	Get(ctx context.Context, usuarioID string) (*entity.Fondos, error)
	// GetForUpdate bloquea la fila de fondos (SELECT FOR UPDATE) para
	// serializar mutaciones concurrentes del mismo tenant.
	GetForUpdate(ctx context.Context, usuarioID string) (*entity.Fondos, error)
	ActualizarSaldo(ctx context.Context, usuarioID string, saldo decimal.Decimal, cuando time.Time) error
}
