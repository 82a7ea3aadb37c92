package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consulta-coberturas/internal/application/billing"
	"github.com/jhoicas/consulta-coberturas/internal/application/dto"
	"github.com/jhoicas/consulta-coberturas/internal/domain"
	"github.com/jhoicas/consulta-coberturas/pkg/logger"
)

const msgMesInvalido = "Parámetro 'mes' inválido (formato YYYY-MM)"

// CoverageHandler expone la consulta de facturas de la obra social en JSON y CSV.
type CoverageHandler struct {
	uc  *billing.CoverageUseCase
	log *logger.Logger
}

// NewCoverageHandler construye el handler.
func NewCoverageHandler(uc *billing.CoverageUseCase, log *logger.Logger) *CoverageHandler {
	return &CoverageHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Facturas de la obra social en un mes
// @Tags         consulta
// @Produce      json
// @Param        mes  query  string  true  "Mes a consultar (YYYY-MM)"
// @Success      200  {array}   entity.CoverageInvoice
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /consulta [get]
func (h *CoverageHandler) List(c *fiber.Ctx) error {
	var q dto.CoverageQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgMesInvalido, Code: "INVALID_PARAMS"})
	}

	invoices, err := h.uc.ListByMonth(c.Context(), q.Mes)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgMesInvalido, Code: "INVALID_MONTH"})
		}
		h.log.Error().Err(err).Str("ruta", "/consulta").Str("mes", q.Mes).Msg("error en la consulta")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error en la consulta", Code: "INTERNAL"})
	}
	return c.JSON(invoices)
}

// ExportCSV godoc
// @Summary      Descarga CSV de las facturas de la obra social en un mes
// @Description  Separador ';', coma decimal y BOM UTF-8 para abrir directo en Excel.
// @Tags         consulta
// @Produce      text/csv
// @Param        mes  query  string  true  "Mes a exportar (YYYY-MM)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /consulta/csv [get]
func (h *CoverageHandler) ExportCSV(c *fiber.Ctx) error {
	var q dto.CoverageQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgMesInvalido, Code: "INVALID_PARAMS"})
	}

	data, filename, err := h.uc.ExportCSV(c.Context(), q.Mes)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgMesInvalido, Code: "INVALID_MONTH"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "No hay datos para ese mes", Code: "NOT_FOUND"})
		}
		h.log.Error().Err(err).Str("ruta", "/consulta/csv").Str("mes", q.Mes).Msg("error al generar CSV")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al generar CSV", Code: "INTERNAL"})
	}

	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Send(data)
}
