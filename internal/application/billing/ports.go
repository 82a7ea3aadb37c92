package billing

import (
	"io"

	"github.com/jhoicas/consulta-coberturas/internal/application/dto"
)

// CoverageCSVEncoder serializa las filas ya formateadas del reporte de coberturas.
// La implementación decide delimitador, BOM y codificación.
type CoverageCSVEncoder interface {
	Encode(w io.Writer, rows []dto.CoverageCSVRow) error
}
