package repository

import (
	"context"
	"time"

	"github.com/jhoicas/consulta-coberturas/internal/domain/entity"
)

// CoverageInvoiceRepository define las consultas de solo lectura sobre facturas cubiertas por una obra social.
type CoverageInvoiceRepository interface {
	// ListByPeriod devuelve las facturas de la obra social con Emision en [start, end).
	// Si no hay filas devuelve un slice vacío (no nil) y error nil.
	ListByPeriod(
		ctx context.Context,
		obraSocialID string,
		start, end time.Time,
	) ([]entity.CoverageInvoice, error)
}
