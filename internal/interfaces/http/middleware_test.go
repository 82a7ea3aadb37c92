package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/consulta-coberturas/internal/interfaces/http"
	"github.com/jhoicas/consulta-coberturas/pkg/logger"
)

func TestRequestLogger_RegistraStatusYRuta(t *testing.T) {
	var out bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &out})

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusTeapot) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/ping", entry["path"])
	assert.Equal(t, float64(fiber.StatusTeapot), entry["status"])
	assert.Equal(t, "info", entry["level"])
}

func TestErrorHandler_NoExponeErroresInternos(t *testing.T) {
	log := logger.Nop()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	app.Use(apphttp.RequestLogger(log))
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("pq: password authentication failed") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Error interno", body["error"])
	assert.Equal(t, "INTERNAL", body["code"])
}

func TestErrorHandler_RutaInexistente404(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nada", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
