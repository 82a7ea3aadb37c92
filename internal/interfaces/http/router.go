package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/consulta-coberturas/internal/application/billing"
	"github.com/jhoicas/consulta-coberturas/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CoverageUC *billing.CoverageUseCase
	DB         Pinger // opcional; sin él /health no verifica la base
	AppName    string
	PublicDir  string // vacío = sin archivos estáticos
	Log        *logger.Logger
}

// Router registra middlewares y rutas. Los estáticos van al final para no tapar la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(RequestLogger(deps.Log))

	healthHandler := NewHealthHandler(deps.AppName, deps.DB)
	app.Get("/health", healthHandler.Check)

	// Consulta de facturas de la obra social (público, solo lectura)
	consulta := app.Group("/consulta")
	coverageHandler := NewCoverageHandler(deps.CoverageUC, deps.Log)
	consulta.Get("/", coverageHandler.List)
	consulta.Get("/csv", coverageHandler.ExportCSV)

	if deps.PublicDir != "" {
		app.Static("/", deps.PublicDir)
	}
}
