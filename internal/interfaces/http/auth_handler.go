package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/acampos/gestorapp/internal/application/auth"
	"github.com/acampos/gestorapp/internal/application/dto"
	"github.com/acampos/gestorapp/internal/domain"
	"github.com/acampos/gestorapp/pkg/config"
	"github.com/acampos/gestorapp/pkg/token"
)

// AuthHandler maneja registro, login y logout. Las rutas de página responden
// texto plano en los errores, como el resto de la superficie de páginas.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	sesion config.SesionConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, sesion config.SesionConfig) *AuthHandler {
	return &AuthHandler{uc: uc, sesion: sesion}
}

// Validar godoc
// @Summary      Registrar cuenta y aprovisionar tenant
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      plain
// @Param        user    formData  string  true  "Nombre para mostrar"
// @Param        email   formData  string  true  "Correo electrónico"
// @Param        pass    formData  string  true  "Contraseña (mínimo 6)"
// @Param        c_pass  formData  string  true  "Confirmación de contraseña"
// @Success      302
// @Failure      400  {string}  string
// @Failure      409  {string}  string
// @Router       /validar [post]
func (h *AuthHandler) Validar(c *fiber.Ctx) error {
	var in dto.RegistroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Todos los campos son requeridos.")
	}
	if in.User == "" || in.Email == "" || in.Pass == "" || in.CPass == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Todos los campos son requeridos.")
	}
	if in.Pass != in.CPass {
		return c.Status(fiber.StatusBadRequest).SendString("Las contraseñas no coinciden.")
	}
	if !strings.Contains(in.Email, "@") {
		return c.Status(fiber.StatusBadRequest).SendString("Por favor, introduce un correo electrónico válido.")
	}
	if len(in.Pass) < 6 {
		return c.Status(fiber.StatusBadRequest).SendString("La contraseña debe tener al menos 6 caracteres.")
	}

	sesion, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailYaRegistrado) {
			return c.Status(fiber.StatusConflict).SendString("El correo electrónico ya existe.")
		}
		var pErr *auth.ProvisionError
		if errors.As(err, &pErr) {
			return c.Status(fiber.StatusInternalServerError).
				SendString(fmt.Sprintf("Error al aprovisionar %s del usuario.", pErr.Artefacto))
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Error al registrar el usuario.")
	}
	// El registro inicia sesión automáticamente.
	if err := h.setSesion(c, sesion); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error interno al iniciar la sesión.")
	}
	return c.Redirect("/index", fiber.StatusFound)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      plain
// @Param        email     formData  string  true  "Correo electrónico"
// @Param        password  formData  string  true  "Contraseña"
// @Success      302
// @Failure      401  {string}  string
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Por favor, introduce correo y contraseña.")
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Por favor, introduce correo y contraseña.")
	}
	sesion, err := h.uc.Login(c.Context(), in)
	if err != nil {
		// Correo desconocido y contraseña errada responden lo mismo.
		if errors.Is(err, domain.ErrCredenciales) {
			return c.Status(fiber.StatusUnauthorized).SendString("Credenciales incorrectas.")
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Error al iniciar sesión.")
	}
	if err := h.setSesion(c, sesion); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error al iniciar sesión.")
	}
	return c.Redirect("/index", fiber.StatusFound)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SesionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.sesion.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/?showLogin=true", fiber.StatusFound)
}

func (h *AuthHandler) setSesion(c *fiber.Ctx, sesion *dto.SesionResponse) error {
	tok, err := token.Generate(h.sesion.Secret, sesion.UsuarioID, sesion.Nombre, h.sesion.Issuer, h.sesion.ExpMinutes)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     SesionCookie,
		Value:    tok,
		Expires:  time.Now().Add(time.Duration(h.sesion.ExpMinutes) * time.Minute),
		HTTPOnly: true,
		Secure:   h.sesion.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}
