package http

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	appcont "github.com/acampos/gestorapp/internal/application/contabilidad"
	"github.com/acampos/gestorapp/web"
)

// PagesHandler renderiza las dos páginas de la aplicación: la portada con
// registro/login y la página principal autenticada.
type PagesHandler struct {
	tpl          *template.Template
	contabilidad *appcont.UseCase
	printer      *message.Printer
}

// NewPagesHandler parsea las plantillas embebidas y construye el handler.
func NewPagesHandler(contabilidad *appcont.UseCase) (*PagesHandler, error) {
	tpl, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &PagesHandler{
		tpl:          tpl,
		contabilidad: contabilidad,
		printer:      message.NewPrinter(language.Spanish),
	}, nil
}

// Portada godoc
// @Summary      Página de entrada (registro/login)
// @Tags         pages
// @Produce      html
// @Param        showLogin  query  bool  false  "Mostrar el panel de login"
// @Success      200
// @Router       / [get]
func (h *PagesHandler) Portada(c *fiber.Ctx) error {
	return h.render(c, "registro.html", fiber.Map{
		"ShowLogin": c.Query("showLogin") == "true",
	})
}

// Index godoc
// @Summary      Página principal autenticada
// @Tags         pages
// @Produce      html
// @Success      200
// @Failure      302  "Redirige a / si la sesión es anónima"
// @Router       /index [get]
func (h *PagesHandler) Index(c *fiber.Ctx) error {
	usuarioID := GetUsuarioID(c)
	if usuarioID == "" {
		return c.Redirect("/?showLogin=true", fiber.StatusFound)
	}
	saldo, err := h.contabilidad.Saldo(c.Context(), usuarioID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error al obtener el saldo.")
	}
	return h.render(c, "index.html", fiber.Map{
		"Nombre": GetNombre(c),
		"Saldo": h.printer.Sprintf("$ %v",
			number.Decimal(saldo.InexactFloat64(), number.MinFractionDigits(2), number.MaxFractionDigits(2))),
	})
}

func (h *PagesHandler) render(c *fiber.Ctx, name string, data any) error {
	var buf bytes.Buffer
	if err := h.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Error al renderizar la página.")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
