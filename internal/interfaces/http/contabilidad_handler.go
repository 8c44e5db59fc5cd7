package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appcont "github.com/acampos/gestorapp/internal/application/contabilidad"
	"github.com/acampos/gestorapp/internal/application/dto"
	"github.com/acampos/gestorapp/internal/domain"
)

// ContabilidadHandler maneja el libro de transacciones y el saldo (protegido).
type ContabilidadHandler struct {
	uc *appcont.UseCase
}

// NewContabilidadHandler construye el handler.
func NewContabilidadHandler(uc *appcont.UseCase) *ContabilidadHandler {
	return &ContabilidadHandler{uc: uc}
}

// Saldo godoc
// @Summary      Saldo actual del usuario
// @Tags         contabilidad
// @Produce      json
// @Success      200  {object}  dto.SaldoResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/contabilidad/saldo [get]
func (h *ContabilidadHandler) Saldo(c *fiber.Ctx) error {
	usuarioID := GetUsuarioID(c)
	if usuarioID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: domain.ErrNoAutenticado.Error()})
	}
	saldo, err := h.uc.Saldo(c.Context(), usuarioID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al obtener el saldo"})
	}
	return c.JSON(dto.SaldoResponse{Saldo: saldo})
}

// List godoc
// @Summary      Listar transacciones (más recientes primero)
// @Tags         contabilidad
// @Produce      json
// @Success      200  {array}   dto.TransaccionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/contabilidad [get]
func (h *ContabilidadHandler) List(c *fiber.Ctx) error {
	usuarioID := GetUsuarioID(c)
	if usuarioID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: domain.ErrNoAutenticado.Error()})
	}
	items, err := h.uc.List(c.Context(), usuarioID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al obtener los datos de contabilidad"})
	}
	return c.JSON(items)
}

// Nueva godoc
// @Summary      Registrar transacción (ingreso o egreso)
// @Description  El monto es la magnitud sin signo; el libro guarda egresos en
//
//	negativo y el saldo se ajusta en la misma transacción SQL.
//
// @Tags         contabilidad
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NuevaTransaccionRequest  true  "tipo, descripcion, monto, metodo_pago?, nota?"
// @Success      201   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contabilidad/nueva [post]
func (h *ContabilidadHandler) Nueva(c *fiber.Ctx) error {
	usuarioID := GetUsuarioID(c)
	if usuarioID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: domain.ErrNoAutenticado.Error()})
	}
	var in dto.NuevaTransaccionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo (ingreso/egreso), descripción y monto numérico son requeridos"})
	}
	id, err := h.uc.Append(c.Context(), usuarioID, in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo (ingreso/egreso), descripción y monto numérico son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al guardar la transacción"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensajeResponse{Message: "Transacción añadida correctamente.", ID: id})
}

// Eliminar godoc
// @Summary      Eliminar transacción y revertir su efecto en el saldo
// @Tags         contabilidad
// @Produce      json
// @Param        id  path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contabilidad/{id} [delete]
func (h *ContabilidadHandler) Eliminar(c *fiber.Ctx) error {
	usuarioID := GetUsuarioID(c)
	if usuarioID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: domain.ErrNoAutenticado.Error()})
	}
	err := h.uc.Retract(c.Context(), usuarioID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "transacción no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al eliminar la transacción"})
	}
	return c.JSON(dto.MensajeResponse{Message: "Transacción eliminada correctamente."})
}
