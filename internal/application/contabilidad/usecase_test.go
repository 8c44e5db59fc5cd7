package contabilidad_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcont "github.com/acampos/gestorapp/internal/application/contabilidad"
	"github.com/acampos/gestorapp/internal/application/dto"
	"github.com/acampos/gestorapp/internal/domain"
	domcont "github.com/acampos/gestorapp/internal/domain/contabilidad"
	"github.com/acampos/gestorapp/internal/domain/entity"
	"github.com/acampos/gestorapp/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: un store compartido, repos sobre el store y un TxRunner
// que simula Commit/Rollback con snapshot del estado.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	entradas map[string]entity.Transaccion
	fondos   map[string]entity.Fondos

	// fallo inyectable para probar el rollback
	failActualizarSaldo bool
}

func newMemStore() *memStore {
	return &memStore{
		entradas: map[string]entity.Transaccion{},
		fondos:   map[string]entity.Fondos{},
	}
}

func (s *memStore) sembrarFondos(usuarioID string) {
	s.fondos[usuarioID] = entity.Fondos{
		UsuarioID:           usuarioID,
		SaldoActual:         decimal.Zero,
		UltimaActualizacion: time.Now(),
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for k, v := range s.entradas {
		cp.entradas[k] = v
	}
	for k, v := range s.fondos {
		cp.fondos[k] = v
	}
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.entradas = snap.entradas
	s.fondos = snap.fondos
}

type memEntradasRepo struct{ s *memStore }

func (r *memEntradasRepo) Create(_ context.Context, t *entity.Transaccion) error {
	r.s.entradas[t.ID] = *t
	return nil
}

func (r *memEntradasRepo) GetByID(_ context.Context, usuarioID, id string) (*entity.Transaccion, error) {
	t, ok := r.s.entradas[id]
	if !ok || t.UsuarioID != usuarioID {
		return nil, nil
	}
	cp := t
	return &cp, nil
}

func (r *memEntradasRepo) ListByUsuario(_ context.Context, usuarioID string) ([]*entity.Transaccion, error) {
	var list []*entity.Transaccion
	for _, t := range r.s.entradas {
		if t.UsuarioID == usuarioID {
			cp := t
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Fecha.After(list[j].Fecha) })
	return list, nil
}

func (r *memEntradasRepo) Delete(_ context.Context, usuarioID, id string) (bool, error) {
	t, ok := r.s.entradas[id]
	if !ok || t.UsuarioID != usuarioID {
		return false, nil
	}
	delete(r.s.entradas, id)
	return true, nil
}

type memFondosRepo struct{ s *memStore }

func (r *memFondosRepo) Crear(_ context.Context, usuarioID string) error {
	r.s.sembrarFondos(usuarioID)
	return nil
}

func (r *memFondosRepo) Get(_ context.Context, usuarioID string) (*entity.Fondos, error) {
	f, ok := r.s.fondos[usuarioID]
	if !ok {
		return nil, nil
	}
	cp := f
	return &cp, nil
}

func (r *memFondosRepo) GetForUpdate(ctx context.Context, usuarioID string) (*entity.Fondos, error) {
	return r.Get(ctx, usuarioID)
}

func (r *memFondosRepo) ActualizarSaldo(_ context.Context, usuarioID string, saldo decimal.Decimal, cuando time.Time) error {
	if r.s.failActualizarSaldo {
		return errors.New("update saldo: conexión perdida")
	}
	f := r.s.fondos[usuarioID]
	f.SaldoActual = saldo
	f.UltimaActualizacion = cuando
	r.s.fondos[usuarioID] = f
	return nil
}

type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	entradas repository.ContabilidadRepository,
	fondos repository.FondosRepository,
) error) error {
	snap := r.s.snapshot()
	if err := fn(&memEntradasRepo{s: r.s}, &memFondosRepo{s: r.s}); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

const usuarioTest = "00000000-0000-0000-0000-000000000001"

func newUseCase(t *testing.T) (*appcont.UseCase, *memStore) {
	t.Helper()
	s := newMemStore()
	s.sembrarFondos(usuarioTest)
	uc := appcont.NewUseCase(&memTxRunner{s: s}, &memEntradasRepo{s: s}, &memFondosRepo{s: s})
	return uc, s
}

func nueva(tipo, descripcion, monto string) dto.NuevaTransaccionRequest {
	m := decimal.RequireFromString(monto)
	return dto.NuevaTransaccionRequest{Tipo: tipo, Descripcion: descripcion, Monto: &m}
}

// invarianteSaldo verifica que el saldo denormalizado iguala la suma firmada
// de las transacciones presentes del usuario.
func invarianteSaldo(t *testing.T, uc *appcont.UseCase, s *memStore) {
	t.Helper()
	saldo, err := uc.Saldo(context.Background(), usuarioTest)
	require.NoError(t, err)
	var montos []decimal.Decimal
	for _, e := range s.entradas {
		if e.UsuarioID == usuarioTest {
			montos = append(montos, e.Monto)
		}
	}
	assert.True(t, domcont.SumaFirmada(montos).Equal(saldo),
		"el saldo (%s) debe igualar la suma firmada del libro (%s)", saldo, domcont.SumaFirmada(montos))
}

// ──────────────────────────────────────────────────────────────────────────────
// Append
// ──────────────────────────────────────────────────────────────────────────────

func TestAppend_IngresoSumaAlSaldo(t *testing.T) {
	uc, s := newUseCase(t)

	id, err := uc.Append(context.Background(), usuarioTest, nueva("ingreso", "venta", "100"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	saldo, err := uc.Saldo(context.Background(), usuarioTest)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(saldo))

	guardada := s.entradas[id]
	assert.True(t, decimal.NewFromInt(100).Equal(guardada.Monto), "un ingreso se guarda positivo")
	invarianteSaldo(t, uc, s)
}

func TestAppend_EgresoSeGuardaNegativo(t *testing.T) {
	uc, s := newUseCase(t)

	id, err := uc.Append(context.Background(), usuarioTest, nueva("egreso", "compra repuestos", "50"))
	require.NoError(t, err)

	guardada := s.entradas[id]
	assert.True(t, decimal.NewFromInt(-50).Equal(guardada.Monto),
		"un egreso de magnitud 50 se almacena como -50")

	saldo, _ := uc.Saldo(context.Background(), usuarioTest)
	assert.True(t, decimal.NewFromInt(-50).Equal(saldo), "el saldo baja por la magnitud")
	invarianteSaldo(t, uc, s)
}

func TestAppend_EgresoMontoCeroEsValido(t *testing.T) {
	uc, s := newUseCase(t)

	_, err := uc.Append(context.Background(), usuarioTest, nueva("egreso", "ajuste", "0"))
	require.NoError(t, err, "cero es una magnitud válida")

	saldo, _ := uc.Saldo(context.Background(), usuarioTest)
	assert.True(t, decimal.Zero.Equal(saldo), "monto cero no cambia el saldo")
	invarianteSaldo(t, uc, s)
}

func TestAppend_ValidacionSinEfectos(t *testing.T) {
	uc, s := newUseCase(t)
	ctx := context.Background()

	casos := []dto.NuevaTransaccionRequest{
		nueva("gasto", "tipo desconocido", "10"),
		nueva("", "tipo vacío", "10"),
		nueva("ingreso", "", "10"),
		nueva("ingreso", "   ", "10"),
		nueva("egreso", "monto negativo", "-5"),
		{Tipo: "ingreso", Descripcion: "sin monto", Monto: nil},
	}
	for _, in := range casos {
		_, err := uc.Append(ctx, usuarioTest, in)
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "caso %q/%q", in.Tipo, in.Descripcion)
	}

	assert.Empty(t, s.entradas, "una entrada rechazada no deja efectos")
	saldo, _ := uc.Saldo(ctx, usuarioTest)
	assert.True(t, decimal.Zero.Equal(saldo))
}

func TestAppend_FalloDeSaldoRevierteLaEntrada(t *testing.T) {
	uc, s := newUseCase(t)
	s.failActualizarSaldo = true

	_, err := uc.Append(context.Background(), usuarioTest, nueva("ingreso", "venta", "100"))
	require.Error(t, err)

	assert.Empty(t, s.entradas,
		"si el ajuste de saldo falla, la transacción del libro también se revierte")
	saldo, _ := uc.Saldo(context.Background(), usuarioTest)
	assert.True(t, decimal.Zero.Equal(saldo))
}

// ──────────────────────────────────────────────────────────────────────────────
// Retract
// ──────────────────────────────────────────────────────────────────────────────

func TestRetract_IdaYVueltaDeEgreso(t *testing.T) {
	uc, s := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Append(ctx, usuarioTest, nueva("ingreso", "base", "200"))
	require.NoError(t, err)
	id, err := uc.Append(ctx, usuarioTest, nueva("egreso", "compra", "50"))
	require.NoError(t, err)

	saldo, _ := uc.Saldo(ctx, usuarioTest)
	require.True(t, decimal.NewFromInt(150).Equal(saldo))

	require.NoError(t, uc.Retract(ctx, usuarioTest, id))

	saldo, _ = uc.Saldo(ctx, usuarioTest)
	assert.True(t, decimal.NewFromInt(200).Equal(saldo),
		"reversar el egreso restaura el saldo previo")

	list, err := uc.List(ctx, usuarioTest)
	require.NoError(t, err)
	assert.Len(t, list, 1, "la entrada reversada desaparece del libro")
	invarianteSaldo(t, uc, s)
}

func TestRetract_NoEncontrada(t *testing.T) {
	uc, _ := newUseCase(t)

	err := uc.Retract(context.Background(), usuarioTest, "11111111-1111-1111-1111-111111111111")
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestRetract_DeOtroUsuarioNoEncontrada(t *testing.T) {
	uc, s := newUseCase(t)
	ctx := context.Background()

	otro := "00000000-0000-0000-0000-000000000099"
	s.sembrarFondos(otro)
	id, err := uc.Append(ctx, usuarioTest, nueva("ingreso", "venta", "75"))
	require.NoError(t, err)

	err = uc.Retract(ctx, otro, id)
	assert.ErrorIs(t, err, domain.ErrNoEncontrado,
		"una transacción ajena se comporta como inexistente")

	saldo, _ := uc.Saldo(ctx, usuarioTest)
	assert.True(t, decimal.NewFromInt(75).Equal(saldo), "el dueño conserva su saldo")
}

// Escenario completo de libro y saldo:
// 0.00 → +100 → saldo 100 → -30 → saldo 70 → reversar egreso → 100 →
// reversar ingreso → 0.00 y libro vacío.
func TestEscenarioCompletoLibroYSaldo(t *testing.T) {
	uc, s := newUseCase(t)
	ctx := context.Background()

	saldo, err := uc.Saldo(ctx, usuarioTest)
	require.NoError(t, err)
	require.True(t, decimal.Zero.Equal(saldo), "el saldo aprovisionado inicia en 0.00")

	idIngreso, err := uc.Append(ctx, usuarioTest, nueva("ingreso", "venta inicial", "100"))
	require.NoError(t, err)
	saldo, _ = uc.Saldo(ctx, usuarioTest)
	assert.True(t, decimal.NewFromInt(100).Equal(saldo))

	idEgreso, err := uc.Append(ctx, usuarioTest, nueva("egreso", "insumos", "30"))
	require.NoError(t, err)
	saldo, _ = uc.Saldo(ctx, usuarioTest)
	assert.True(t, decimal.NewFromInt(70).Equal(saldo))
	assert.True(t, decimal.NewFromInt(-30).Equal(s.entradas[idEgreso].Monto))

	require.NoError(t, uc.Retract(ctx, usuarioTest, idEgreso))
	saldo, _ = uc.Saldo(ctx, usuarioTest)
	assert.True(t, decimal.NewFromInt(100).Equal(saldo))

	require.NoError(t, uc.Retract(ctx, usuarioTest, idIngreso))
	saldo, _ = uc.Saldo(ctx, usuarioTest)
	assert.True(t, decimal.Zero.Equal(saldo))

	list, err := uc.List(ctx, usuarioTest)
	require.NoError(t, err)
	assert.Empty(t, list)
	invarianteSaldo(t, uc, s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestSaldo_SinFilaDeFondosDevuelveCero(t *testing.T) {
	s := newMemStore() // sin sembrar fondos
	uc := appcont.NewUseCase(&memTxRunner{s: s}, &memEntradasRepo{s: s}, &memFondosRepo{s: s})

	saldo, err := uc.Saldo(context.Background(), usuarioTest)
	require.NoError(t, err)
	assert.True(t, decimal.Zero.Equal(saldo), "sin fondos aprovisionados el saldo por defecto es 0")
}

func TestList_OrdenYLecturaIdempotente(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Append(ctx, usuarioTest, nueva("ingreso", "primera", "10"))
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = uc.Append(ctx, usuarioTest, nueva("egreso", "segunda", "5"))
	require.NoError(t, err)

	primera, err := uc.List(ctx, usuarioTest)
	require.NoError(t, err)
	require.Len(t, primera, 2)
	assert.Equal(t, "segunda", primera[0].Descripcion, "la más reciente va primero")

	segunda, err := uc.List(ctx, usuarioTest)
	require.NoError(t, err)
	assert.Equal(t, primera, segunda, "listar no muta estado")
}
