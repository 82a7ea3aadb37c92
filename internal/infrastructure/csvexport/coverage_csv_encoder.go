// Package csvexport genera el CSV de coberturas en el formato que abre Excel
// con configuración regional es-AR sin pasos de importación: punto y coma como
// separador y BOM UTF-8 al inicio para que los acentos se lean bien.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	appbilling "github.com/jhoicas/consulta-coberturas/internal/application/billing"
	"github.com/jhoicas/consulta-coberturas/internal/application/dto"
)

const delimiter = ';'

var _ appbilling.CoverageCSVEncoder = (*CoverageCSVEncoder)(nil)

// CoverageCSVEncoder implementa appbilling.CoverageCSVEncoder con gocsv.
type CoverageCSVEncoder struct {
	delimiter rune
}

// NewCoverageCSVEncoder construye el encoder con ";" como separador.
func NewCoverageCSVEncoder() *CoverageCSVEncoder {
	return &CoverageCSVEncoder{delimiter: delimiter}
}

// Encode escribe BOM + encabezados + filas en w.
func (e *CoverageCSVEncoder) Encode(w io.Writer, rows []dto.CoverageCSVRow) error {
	bom := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())

	cw := csv.NewWriter(bom)
	cw.Comma = e.delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return fmt.Errorf("csv: serializar filas: %w", err)
	}
	if err := bom.Close(); err != nil {
		return fmt.Errorf("csv: escribir salida: %w", err)
	}
	return nil
}
