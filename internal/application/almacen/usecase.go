package almacen

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/acampos/gestorapp/internal/application/dto"
	"github.com/acampos/gestorapp/internal/domain"
	"github.com/acampos/gestorapp/internal/domain/entity"
	"github.com/acampos/gestorapp/internal/domain/repository"
)

// UseCase CRUD del almacén de un usuario. Sin invariantes cruzadas: solo
// scoping por usuario.
type UseCase struct {
	repo repository.AlmacenRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.AlmacenRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create da de alta un producto. Nombre, cantidad y precio son obligatorios.
func (uc *UseCase) Create(ctx context.Context, usuarioID string, in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Cantidad == nil || in.Precio == nil {
		return nil, domain.ErrEntradaInvalida
	}
	fecha := time.Now()
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	producto := &entity.Producto{
		ID:             uuid.New().String(),
		UsuarioID:      usuarioID,
		CodigoProducto: in.CodigoProducto,
		Nombre:         in.Nombre,
		Cantidad:       *in.Cantidad,
		Precio:         *in.Precio,
		Fecha:          fecha,
	}
	if err := uc.repo.Create(ctx, producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto del usuario; nil si no existe o es de otro.
func (uc *UseCase) GetByID(ctx context.Context, usuarioID, id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(ctx, usuarioID, id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// List lista los productos del usuario, más recientes primero.
func (uc *UseCase) List(ctx context.Context, usuarioID string) ([]dto.ProductoResponse, error) {
	list, err := uc.repo.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return items, nil
}

// Update reemplaza la fila completa del producto. ErrNoEncontrado si el ID no
// existe para ese usuario.
func (uc *UseCase) Update(ctx context.Context, usuarioID, id string, in dto.ProductoRequest) error {
	if in.Nombre == "" || in.Cantidad == nil || in.Precio == nil {
		return domain.ErrEntradaInvalida
	}
	fecha := time.Now()
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	producto := &entity.Producto{
		ID:             id,
		UsuarioID:      usuarioID,
		CodigoProducto: in.CodigoProducto,
		Nombre:         in.Nombre,
		Cantidad:       *in.Cantidad,
		Precio:         *in.Precio,
		Fecha:          fecha,
	}
	actualizado, err := uc.repo.Update(ctx, producto)
	if err != nil {
		return err
	}
	if !actualizado {
		return domain.ErrNoEncontrado
	}
	return nil
}

// Delete elimina un producto del usuario. ErrNoEncontrado si no existe.
func (uc *UseCase) Delete(ctx context.Context, usuarioID, id string) error {
	eliminado, err := uc.repo.Delete(ctx, usuarioID, id)
	if err != nil {
		return err
	}
	if !eliminado {
		return domain.ErrNoEncontrado
	}
	return nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:             p.ID,
		CodigoProducto: p.CodigoProducto,
		Nombre:         p.Nombre,
		Cantidad:       p.Cantidad,
		Precio:         p.Precio,
		Fecha:          p.Fecha,
	}
}
