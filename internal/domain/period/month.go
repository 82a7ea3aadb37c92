// Package period construye el rango de fechas de un mes calendario a partir
// del parámetro "mes" (YYYY-MM) que reciben los endpoints de consulta.
package period

import (
	"fmt"
	"regexp"
	"time"

	"github.com/jhoicas/consulta-coberturas/internal/domain"
)

const monthLayout = "2006-01"

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Month es el intervalo semiabierto [Start, End) de un mes calendario en UTC.
type Month struct {
	Label string // "YYYY-MM" tal como llegó en la petición
	Start time.Time
	End   time.Time
}

// ParseMonth valida el formato YYYY-MM y que el mes exista (01..12).
// Cualquier error envuelve domain.ErrInvalidInput.
func ParseMonth(mes string) (Month, error) {
	if !monthPattern.MatchString(mes) {
		return Month{}, fmt.Errorf("%w: mes %q no respeta el formato YYYY-MM", domain.ErrInvalidInput, mes)
	}
	start, err := time.ParseInLocation(monthLayout, mes, time.UTC)
	if err != nil {
		return Month{}, fmt.Errorf("%w: mes %q fuera de rango", domain.ErrInvalidInput, mes)
	}
	return Month{
		Label: mes,
		Start: start,
		End:   start.AddDate(0, 1, 0),
	}, nil
}

// Contains indica si t cae dentro del mes.
func (m Month) Contains(t time.Time) bool {
	return !t.Before(m.Start) && t.Before(m.End)
}
