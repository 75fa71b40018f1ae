// El stubserver levanta el backend simulado de la biblioteca: API REST en
// memoria con datos sembrados, contra el que se desarrolla y prueba la
// consola sin un backend real.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/biblioteca-admin/internal/infrastructure/memory"
	apphttp "github.com/tu-usuario/biblioteca-admin/internal/interfaces/http"
	"github.com/tu-usuario/biblioteca-admin/pkg/config"
	"github.com/tu-usuario/biblioteca-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("addr", cfg.HTTP.Addr()).
		Msg("iniciando stub de backend")

	repos := memory.NewRepos()
	if err := repos.SeedDemo(); err != nil {
		log.Fatal().Err(err).Msg("sembrar datos de demostración")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + "-stub",
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
		Title:    "Biblioteca Stub API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name + "-stub"})
	})

	if err := apphttp.Router(app, apphttp.RouterDeps{
		Users:      repos.Users,
		Books:      repos.Books,
		Categories: repos.Categories,
		Borrows:    repos.Borrows,
		UploadDir:  "./uploads",
		Log:        log,
	}); err != nil {
		log.Fatal().Err(err).Msg("registrar rutas")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando stub")
	_ = app.ShutdownWithTimeout(5 * time.Second)
}
