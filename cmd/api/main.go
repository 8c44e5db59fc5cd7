package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/acampos/gestorapp/internal/application/almacen"
	"github.com/acampos/gestorapp/internal/application/auth"
	appcont "github.com/acampos/gestorapp/internal/application/contabilidad"
	"github.com/acampos/gestorapp/internal/infrastructure/postgres"
	httpRouter "github.com/acampos/gestorapp/internal/interfaces/http"
	"github.com/acampos/gestorapp/pkg/config"
	"github.com/acampos/gestorapp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// montos y saldos como números JSON, no strings
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	almacenRepo := postgres.NewAlmacenRepository(pool)
	contabilidadRepo := postgres.NewContabilidadRepository(pool)
	fondosRepo := postgres.NewFondosRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, txRunner)
	almacenUC := almacen.NewUseCase(almacenRepo)
	contabilidadUC := appcont.NewUseCase(txRunner, contabilidadRepo, fondosRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestor API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if err := httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		AlmacenUC:      almacenUC,
		ContabilidadUC: contabilidadUC,
		Sesion:         cfg.Sesion,
		Log:            log,
	}); err != nil {
		log.Fatal().Err(err).Msg("registrar rutas")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
