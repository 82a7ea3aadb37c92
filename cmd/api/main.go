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

	"github.com/jhoicas/consulta-coberturas/internal/application/billing"
	"github.com/jhoicas/consulta-coberturas/internal/infrastructure/csvexport"
	"github.com/jhoicas/consulta-coberturas/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/consulta-coberturas/internal/interfaces/http"
	"github.com/jhoicas/consulta-coberturas/pkg/config"
	"github.com/jhoicas/consulta-coberturas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("obra_social", cfg.Export.ObraSocialID).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	coverageRepo := postgres.NewCoverageInvoiceRepository(pool)
	coverageUC := billing.NewCoverageUseCase(coverageRepo, csvexport.NewCoverageCSVEncoder(), billing.CoverageConfig{
		ObraSocialID: cfg.Export.ObraSocialID,
		FilePrefix:   cfg.Export.FilePrefix,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs (solo si existe el archivo)
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Consulta de coberturas",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		CoverageUC: coverageUC,
		DB:         pool,
		AppName:    cfg.App.Name,
		PublicDir:  cfg.HTTP.PublicDir,
		Log:        log,
	})

	go func() {
		log.Info().Msgf("Servidor corriendo en http://localhost:%d", cfg.HTTP.Port)
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
