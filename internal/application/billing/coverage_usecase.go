package billing

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/consulta-coberturas/internal/application/dto"
	"github.com/jhoicas/consulta-coberturas/internal/domain"
	"github.com/jhoicas/consulta-coberturas/internal/domain/entity"
	"github.com/jhoicas/consulta-coberturas/internal/domain/period"
	"github.com/jhoicas/consulta-coberturas/internal/domain/repository"
)

const csvDateLayout = "02/01/2006"

// CoverageConfig valores fijos de la consulta.
type CoverageConfig struct {
	ObraSocialID string // IDObSoc al que se limita toda consulta
	FilePrefix   string // prefijo del archivo descargado; se completa con _YYYY-MM.csv
}

// CoverageUseCase consulta las facturas de la obra social de un mes y arma el CSV de exportación.
type CoverageUseCase struct {
	repo    repository.CoverageInvoiceRepository
	encoder CoverageCSVEncoder
	cfg     CoverageConfig
}

// NewCoverageUseCase construye el caso de uso.
func NewCoverageUseCase(
	repo repository.CoverageInvoiceRepository,
	encoder CoverageCSVEncoder,
	cfg CoverageConfig,
) *CoverageUseCase {
	return &CoverageUseCase{repo: repo, encoder: encoder, cfg: cfg}
}

// ListByMonth devuelve las facturas del mes "YYYY-MM".
//
// Retorna:
//   - domain.ErrInvalidInput si el mes no es válido.
//   - slice vacío (no nil) si no hay facturas.
//   - error si el repositorio devuelve una fila de otra obra social o fuera del mes.
func (uc *CoverageUseCase) ListByMonth(ctx context.Context, mes string) ([]entity.CoverageInvoice, error) {
	m, err := period.ParseMonth(mes)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.repo.ListByPeriod(ctx, uc.cfg.ObraSocialID, m.Start, m.End)
	if err != nil {
		return nil, fmt.Errorf("coberturas: listar %s: %w", m.Label, err)
	}
	if invoices == nil {
		invoices = []entity.CoverageInvoice{}
	}
	for _, inv := range invoices {
		if !m.Contains(inv.Emision) || strings.TrimSpace(inv.IDObSoc) != uc.cfg.ObraSocialID {
			return nil, fmt.Errorf("coberturas: comprobante %d (obra social %q, emisión %s) fuera de %s",
				inv.IDComprobante, inv.IDObSoc, inv.Emision.Format(time.RFC3339), m.Label)
		}
	}
	return invoices, nil
}

// ExportCSV genera el CSV del mes y el nombre de archivo sugerido.
//
// Retorna:
//   - domain.ErrInvalidInput si el mes no es válido.
//   - domain.ErrNotFound si el mes no tiene facturas.
func (uc *CoverageUseCase) ExportCSV(ctx context.Context, mes string) (csvBytes []byte, filename string, err error) {
	invoices, err := uc.ListByMonth(ctx, mes)
	if err != nil {
		return nil, "", err
	}
	if len(invoices) == 0 {
		return nil, "", fmt.Errorf("%w: no hay facturas para %s", domain.ErrNotFound, mes)
	}

	rows := lo.Map(invoices, func(inv entity.CoverageInvoice, _ int) dto.CoverageCSVRow {
		return toCSVRow(inv)
	})

	var buf bytes.Buffer
	if err := uc.encoder.Encode(&buf, rows); err != nil {
		return nil, "", fmt.Errorf("coberturas: generar CSV %s: %w", mes, err)
	}
	return buf.Bytes(), uc.Filename(mes), nil
}

// Filename nombre del adjunto para el mes, ej. Facturas_OS_Nueva_Villa_2024-03.csv.
func (uc *CoverageUseCase) Filename(mes string) string {
	return fmt.Sprintf("%s_%s.csv", uc.cfg.FilePrefix, mes)
}

func toCSVRow(inv entity.CoverageInvoice) dto.CoverageCSVRow {
	return dto.CoverageCSVRow{
		IDComprobante:    strconv.FormatInt(inv.IDComprobante, 10),
		Sucursal:         strconv.Itoa(inv.Sucursal),
		Emision:          inv.Emision.Format(csvDateLayout),
		Tipo:             inv.Tipo,
		Letra:            inv.Letra,
		PuntoVta:         strconv.Itoa(inv.PuntoVta),
		Numero:           strconv.FormatInt(inv.Numero, 10),
		TotalCobertura:   FormatAmount(inv.TotalCobertura),
		TotalComprobante: FormatAmount(inv.TotalComprobante),
		IDObSoc:          inv.IDObSoc,
	}
}

// FormatAmount formatea un importe con dos decimales y coma decimal, sin separador de miles: 1234.5 -> "1234,50".
func FormatAmount(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}
