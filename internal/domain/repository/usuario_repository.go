package repository

import (
	"context"

	"github.com/acampos/gestorapp/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// El login busca por correo; la identidad del resto de requests viaja en el
// token de sesión, así que no hay lectura por ID.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entity.Usuario) error
	FindByEmail(ctx context.Context, correo string) (*entity.Usuario, error)
}
