package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/acampos/gestorapp/internal/application/dto"
	"github.com/acampos/gestorapp/internal/domain"
	"github.com/acampos/gestorapp/pkg/logger"
	"github.com/acampos/gestorapp/pkg/token"
)

// Locals keys para la identidad de sesión en Fiber.
const (
	LocalUsuarioID = "usuario_id"
	LocalNombre    = "nombre"
)

// SesionCookie nombre de la cookie HttpOnly que lleva el token de sesión.
const SesionCookie = "sesion"

// Prefijos protegidos: cualquier request a uno de ellos con sesión anónima se
// rechaza antes de llegar al handler.
var protectedPrefixes = []string{
	"/index",
	"/api/almacen",
	"/api/contabilidad",
}

// SesionGate valida la cookie de sesión en cada request. Si el token es
// válido, carga usuario_id y nombre en c.Locals. Para rutas protegidas con
// sesión anónima: las rutas de API responden 401 JSON y las de página
// redirigen a la portada con el panel de login visible.
func SesionGate(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if raw := c.Cookies(SesionCookie); raw != "" {
			if usuarioID, nombre, err := token.Parse(secret, raw); err == nil {
				c.Locals(LocalUsuarioID, usuarioID)
				c.Locals(LocalNombre, nombre)
			}
		}
		if GetUsuarioID(c) == "" && isProtected(c.Path()) {
			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: domain.ErrNoAutenticado.Error()})
			}
			return c.Redirect("/?showLogin=true", fiber.StatusFound)
		}
		return c.Next()
	}
}

func isProtected(path string) bool {
	for _, prefix := range protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// GetUsuarioID devuelve el ID del usuario autenticado, o "" si la sesión es anónima.
func GetUsuarioID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsuarioID).(string)
	return s
}

// GetNombre devuelve el nombre para mostrar del usuario autenticado.
func GetNombre(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalNombre).(string)
	return s
}

// NoStore deshabilita el caché del navegador en toda respuesta, para que una
// página autenticada no se sirva desde caché después del logout.
func NoStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "private, no-cache, no-store, must-revalidate")
		c.Set("Expires", "-1")
		c.Set("Pragma", "no-cache")
		return c.Next()
	}
}

// RequestLogger registra método, ruta, estado y duración de cada request.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
