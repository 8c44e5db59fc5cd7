package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/acampos/gestorapp/internal/application/dto"
	"github.com/acampos/gestorapp/internal/domain"
	"github.com/acampos/gestorapp/internal/domain/entity"
	"github.com/acampos/gestorapp/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: registro (con aprovisionamiento
// del tenant) y login.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	txRunner TxRunner
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(usuarios repository.UsuarioRepository, txRunner TxRunner) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, txRunner: txRunner}
}

// Registrar crea la cuenta y aprovisiona su tenant en una sola transacción:
// inserta el usuario (email único) y siembra la fila de fondos en 0.00.
// Devuelve ErrEmailYaRegistrado si el correo ya existe; un fallo del
// aprovisionamiento revierte también el alta del usuario.
func (uc *AuthUseCase) Registrar(ctx context.Context, in dto.RegistroRequest) (*dto.SesionResponse, error) {
	if in.User == "" || in.Email == "" || in.Pass == "" {
		return nil, domain.ErrEntradaInvalida
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Pass), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		ID:          uuid.New().String(),
		Nombre:      in.User,
		Correo:      in.Email,
		Contrasenia: string(hash),
		CreatedAt:   time.Now(),
	}

	err = uc.txRunner.RunRegistro(ctx, func(usuarios repository.UsuarioRepository, fondos repository.FondosRepository) error {
		if err := usuarios.Create(ctx, usuario); err != nil {
			if errors.Is(err, domain.ErrEmailYaRegistrado) {
				return err
			}
			return &ProvisionError{Artefacto: "usuario", Err: err}
		}
		return provisionarFondos(ctx, fondos, usuario.ID)
	})
	if err != nil {
		return nil, err
	}
	return &dto.SesionResponse{UsuarioID: usuario.ID, Nombre: usuario.Nombre}, nil
}

// Login verifica email y contraseña. Correo desconocido y contraseña errada
// devuelven el mismo ErrCredenciales para no permitir enumerar cuentas.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SesionResponse, error) {
	usuario, err := uc.usuarios.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Contrasenia), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredenciales
	}
	return &dto.SesionResponse{UsuarioID: usuario.ID, Nombre: usuario.Nombre}, nil
}
