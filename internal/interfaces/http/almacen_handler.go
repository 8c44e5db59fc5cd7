package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/acampos/gestorapp/internal/application/almacen"
	"github.com/acampos/gestorapp/internal/application/dto"
	"github.com/acampos/gestorapp/internal/domain"
)

// AlmacenHandler maneja el CRUD del almacén (protegido).
type AlmacenHandler struct {
	uc *almacen.UseCase
}

// NewAlmacenHandler construye el handler.
func NewAlmacenHandler(uc *almacen.UseCase) *AlmacenHandler {
	return &AlmacenHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos del almacén
// @Tags         almacen
// @Produce      json
// @Success      200  {array}   dto.ProductoResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/almacen [get]
func (h *AlmacenHandler) List(c *fiber.Ctx) error {
	usuarioID := GetUsuarioID(c)
	if usuarioID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: domain.ErrNoAutenticado.Error()})
	}
	items, err := h.uc.List(c.Context(), usuarioID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al obtener los datos del almacén"})
	}
	return c.JSON(items)
}

// Nuevo godoc
// @Summary      Añadir producto al almacén
// @Tags         almacen
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductoRequest  true  "codigo_producto?, nombre, cantidad, precio, fecha?"
// @Success      201   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/almacen/nuevo [post]
func (h *AlmacenHandler) Nuevo(c *fiber.Ctx) error {
	usuarioID := GetUsuarioID(c)
	if usuarioID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: domain.ErrNoAutenticado.Error()})
	}
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cantidad y precio deben ser números válidos"})
	}
	out, err := h.uc.Create(c.Context(), usuarioID, in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, cantidad y precio son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al guardar el nuevo producto"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensajeResponse{Message: "Producto añadido correctamente.", ID: out.ID})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         almacen
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacen/{id} [get]
func (h *AlmacenHandler) GetByID(c *fiber.Ctx) error {
	usuarioID := GetUsuarioID(c)
	if usuarioID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: domain.ErrNoAutenticado.Error()})
	}
	out, err := h.uc.GetByID(c.Context(), usuarioID, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al obtener el producto"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Reemplazar producto por ID
// @Tags         almacen
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del producto"
// @Param        body  body  dto.ProductoRequest  true  "Fila completa del producto"
// @Success      200   {object}  dto.MensajeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/almacen/{id} [put]
func (h *AlmacenHandler) Actualizar(c *fiber.Ctx) error {
	usuarioID := GetUsuarioID(c)
	if usuarioID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: domain.ErrNoAutenticado.Error()})
	}
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cantidad y precio deben ser números válidos"})
	}
	err := h.uc.Update(c.Context(), usuarioID, c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, cantidad y precio son requeridos"})
		}
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al actualizar el producto"})
	}
	return c.JSON(dto.MensajeResponse{Message: "Producto actualizado correctamente."})
}

// Eliminar godoc
// @Summary      Eliminar producto por ID
// @Tags         almacen
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.MensajeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacen/{id} [delete]
func (h *AlmacenHandler) Eliminar(c *fiber.Ctx) error {
	usuarioID := GetUsuarioID(c)
	if usuarioID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: domain.ErrNoAutenticado.Error()})
	}
	err := h.uc.Delete(c.Context(), usuarioID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error al eliminar el producto"})
	}
	return c.JSON(dto.MensajeResponse{Message: "Producto eliminado correctamente."})
}
