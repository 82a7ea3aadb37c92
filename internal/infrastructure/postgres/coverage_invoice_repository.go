package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/consulta-coberturas/internal/domain/entity"
	"github.com/jhoicas/consulta-coberturas/internal/domain/repository"
)

var _ repository.CoverageInvoiceRepository = (*CoverageInvoiceRepo)(nil)

// listCoverageInvoicesQuery une cabecera y coberturas; el rango es semiabierto [$2, $3).
const listCoverageInvoicesQuery = `
	SELECT
	    fc.IDComprobante,
	    fc.Sucursal,
	    fc.Emision,
	    fc.Tipo,
	    fc.Letra,
	    fc.PuntoVta,
	    fc.Numero,
	    fc.TotalCobertura,
	    fc.TotalComprobante,
	    fco.IDObSoc
	FROM factcabecera fc
	JOIN factcoberturas fco ON fc.IDComprobante = fco.IDComprobante
	WHERE fco.IDObSoc = $1
	  AND fc.Emision >= $2
	  AND fc.Emision <  $3
	ORDER BY fc.Emision, fc.IDComprobante`

// CoverageInvoiceRepo implementación de CoverageInvoiceRepository (usable con pool o tx).
type CoverageInvoiceRepo struct {
	q Querier
}

// NewCoverageInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCoverageInvoiceRepository(q Querier) *CoverageInvoiceRepo {
	return &CoverageInvoiceRepo{q: q}
}

// ListByPeriod ejecuta la consulta parametrizada de facturas de la obra social en el período.
func (r *CoverageInvoiceRepo) ListByPeriod(
	ctx context.Context,
	obraSocialID string,
	start, end time.Time,
) ([]entity.CoverageInvoice, error) {
	rows, err := r.q.Query(ctx, listCoverageInvoicesQuery, obraSocialID, start, end)
	if err != nil {
		return nil, fmt.Errorf("coverage.ListByPeriod: %w", err)
	}

	invoices, err := pgx.CollectRows(rows, scanCoverageInvoice)
	if err != nil {
		return nil, fmt.Errorf("coverage.ListByPeriod scan: %w", err)
	}
	if invoices == nil {
		invoices = []entity.CoverageInvoice{}
	}
	return invoices, nil
}

func scanCoverageInvoice(row pgx.CollectableRow) (entity.CoverageInvoice, error) {
	var inv entity.CoverageInvoice
	err := row.Scan(
		&inv.IDComprobante,
		&inv.Sucursal,
		&inv.Emision,
		&inv.Tipo,
		&inv.Letra,
		&inv.PuntoVta,
		&inv.Numero,
		&inv.TotalCobertura,
		&inv.TotalComprobante,
		&inv.IDObSoc,
	)
	return inv, err
}
