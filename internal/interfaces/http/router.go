package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/acampos/gestorapp/internal/application/almacen"
	"github.com/acampos/gestorapp/internal/application/auth"
	appcont "github.com/acampos/gestorapp/internal/application/contabilidad"
	"github.com/acampos/gestorapp/pkg/config"
	"github.com/acampos/gestorapp/pkg/logger"
	"github.com/acampos/gestorapp/web"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	AlmacenUC      *almacen.UseCase
	ContabilidadUC *appcont.UseCase
	Sesion         config.SesionConfig
	Log            *logger.Logger
}

// Router registra middlewares y rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) error {
	app.Use(RequestLogger(deps.Log))
	app.Use(NoStore())
	app.Use(SesionGate(deps.Sesion.Secret))

	// Scripts de cliente embebidos
	app.Use("/js", filesystem.New(filesystem.Config{
		Root:       nethttp.FS(web.Static),
		PathPrefix: "static/js",
	}))

	pages, err := NewPagesHandler(deps.ContabilidadUC)
	if err != nil {
		return err
	}
	app.Get("/", pages.Portada)
	app.Get("/index", pages.Index)

	authHandler := NewAuthHandler(deps.AuthUC, deps.Sesion)
	app.Post("/validar", authHandler.Validar)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	api := app.Group("/api")

	almacenHandler := NewAlmacenHandler(deps.AlmacenUC)
	almacenGroup := api.Group("/almacen")
	almacenGroup.Get("/", almacenHandler.List)
	almacenGroup.Post("/nuevo", almacenHandler.Nuevo)
	almacenGroup.Get("/:id", almacenHandler.GetByID)
	almacenGroup.Put("/:id", almacenHandler.Actualizar)
	almacenGroup.Delete("/:id", almacenHandler.Eliminar)

	contabilidadHandler := NewContabilidadHandler(deps.ContabilidadUC)
	contabilidadGroup := api.Group("/contabilidad")
	contabilidadGroup.Get("/", contabilidadHandler.List)
	contabilidadGroup.Get("/saldo", contabilidadHandler.Saldo)
	contabilidadGroup.Post("/nueva", contabilidadHandler.Nueva)
	contabilidadGroup.Delete("/:id", contabilidadHandler.Eliminar)

	return nil
}
