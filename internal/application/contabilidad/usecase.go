package contabilidad

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acampos/gestorapp/internal/application/dto"
	"github.com/acampos/gestorapp/internal/domain"
	domcont "github.com/acampos/gestorapp/internal/domain/contabilidad"
	"github.com/acampos/gestorapp/internal/domain/entity"
	"github.com/acampos/gestorapp/internal/domain/repository"
)

// UseCase mantiene el invariante del libro: el saldo de fondos es igual a la
// suma firmada de las transacciones del usuario. Cada mutación del libro va
// acompañada de su ajuste de saldo dentro de una sola transacción SQL, con la
// fila de fondos bloqueada (SELECT FOR UPDATE) para serializar escrituras
// concurrentes del mismo tenant.
type UseCase struct {
	txRunner TxRunner
	entradas repository.ContabilidadRepository
	fondos   repository.FondosRepository
}

// NewUseCase construye el caso de uso. Los repos sueltos atienden lecturas;
// las escrituras pasan por el txRunner.
func NewUseCase(txRunner TxRunner, entradas repository.ContabilidadRepository, fondos repository.FondosRepository) *UseCase {
	return &UseCase{txRunner: txRunner, entradas: entradas, fondos: fondos}
}

// Append registra una transacción nueva y ajusta el saldo en la misma
// transacción SQL. Monto es la magnitud sin signo (cero incluido); el libro
// guarda egresos en negativo y el saldo se mueve con la magnitud y el
// operador del tipo. Devuelve el ID de la entrada creada.
func (uc *UseCase) Append(ctx context.Context, usuarioID string, in dto.NuevaTransaccionRequest) (string, error) {
	if !domcont.TipoValido(in.Tipo) {
		return "", domain.ErrEntradaInvalida
	}
	if strings.TrimSpace(in.Descripcion) == "" {
		return "", domain.ErrEntradaInvalida
	}
	if in.Monto == nil || in.Monto.IsNegative() {
		return "", domain.ErrEntradaInvalida
	}
	monto := *in.Monto

	now := time.Now()
	transaccion := &entity.Transaccion{
		ID:          uuid.New().String(),
		UsuarioID:   usuarioID,
		Fecha:       now,
		Descripcion: in.Descripcion,
		Tipo:        in.Tipo,
		Monto:       domcont.MontoAlmacenado(in.Tipo, monto),
		MetodoPago:  in.MetodoPago,
		Nota:        in.Nota,
	}

	err := uc.txRunner.Run(ctx, func(entradas repository.ContabilidadRepository, fondos repository.FondosRepository) error {
		f, err := fondos.GetForUpdate(ctx, usuarioID)
		if err != nil {
			return err
		}
		if f == nil {
			return fmt.Errorf("fondos del usuario %s no aprovisionados", usuarioID)
		}
		if err := entradas.Create(ctx, transaccion); err != nil {
			return err
		}
		saldo := f.SaldoActual.Add(domcont.AjusteSaldo(in.Tipo, monto))
		return fondos.ActualizarSaldo(ctx, usuarioID, saldo, now)
	})
	if err != nil {
		return "", err
	}
	return transaccion.ID, nil
}

// Retract elimina una transacción del usuario y revierte su efecto sobre el
// saldo: lee el monto firmado almacenado, borra la fila y aplica el delta
// inverso, todo en una transacción SQL. ErrNoEncontrado si el ID no existe o
// pertenece a otro usuario.
func (uc *UseCase) Retract(ctx context.Context, usuarioID, transaccionID string) error {
	return uc.txRunner.Run(ctx, func(entradas repository.ContabilidadRepository, fondos repository.FondosRepository) error {
		transaccion, err := entradas.GetByID(ctx, usuarioID, transaccionID)
		if err != nil {
			return err
		}
		if transaccion == nil {
			return domain.ErrNoEncontrado
		}
		f, err := fondos.GetForUpdate(ctx, usuarioID)
		if err != nil {
			return err
		}
		if f == nil {
			return fmt.Errorf("fondos del usuario %s no aprovisionados", usuarioID)
		}
		eliminada, err := entradas.Delete(ctx, usuarioID, transaccionID)
		if err != nil {
			return err
		}
		if !eliminada {
			return domain.ErrNoEncontrado
		}
		saldo := f.SaldoActual.Add(domcont.ReversaSaldo(transaccion.Monto))
		return fondos.ActualizarSaldo(ctx, usuarioID, saldo, time.Now())
	})
}

// Saldo devuelve el saldo actual del usuario, o cero si no hay fila de
// fondos (no debería ocurrir después del aprovisionamiento).
func (uc *UseCase) Saldo(ctx context.Context, usuarioID string) (decimal.Decimal, error) {
	f, err := uc.fondos.Get(ctx, usuarioID)
	if err != nil {
		return decimal.Zero, err
	}
	if f == nil {
		return decimal.Zero, nil
	}
	return f.SaldoActual, nil
}

// List devuelve las transacciones del usuario, más recientes primero.
func (uc *UseCase) List(ctx context.Context, usuarioID string) ([]dto.TransaccionResponse, error) {
	list, err := uc.entradas.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransaccionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, toTransaccionResponse(t))
	}
	return items, nil
}

func toTransaccionResponse(t *entity.Transaccion) dto.TransaccionResponse {
	return dto.TransaccionResponse{
		ID:          t.ID,
		Fecha:       t.Fecha,
		Descripcion: t.Descripcion,
		Tipo:        t.Tipo,
		Monto:       t.Monto,
		MetodoPago:  t.MetodoPago,
		Nota:        t.Nota,
	}
}
