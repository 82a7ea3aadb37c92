package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consulta-coberturas/internal/domain/entity"
)

var _ Querier = (*fakeQuerier)(nil)

// fakeQuerier registra los argumentos y devuelve filas en memoria.
type fakeQuerier struct {
	sql  string
	args []any
	rows []entity.CoverageInvoice
	err  error
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.sql = sql
	f.args = args
	if f.err != nil {
		return nil, f.err
	}
	return &fakeRows{data: f.rows, idx: -1}, nil
}

type fakeRows struct {
	data   []entity.CoverageInvoice
	idx    int
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.closed {
		return false
	}
	r.idx++
	return r.idx < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	if len(dest) != 10 {
		return errors.New("se esperaban 10 columnas")
	}
	inv := r.data[r.idx]
	*dest[0].(*int64) = inv.IDComprobante
	*dest[1].(*int) = inv.Sucursal
	*dest[2].(*time.Time) = inv.Emision
	*dest[3].(*string) = inv.Tipo
	*dest[4].(*string) = inv.Letra
	*dest[5].(*int) = inv.PuntoVta
	*dest[6].(*int64) = inv.Numero
	*dest[7].(*decimal.Decimal) = inv.TotalCobertura
	*dest[8].(*decimal.Decimal) = inv.TotalComprobante
	*dest[9].(*string) = inv.IDObSoc
	return nil
}

func TestListByPeriod_PasaParametrosYEscanea(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	want := []entity.CoverageInvoice{
		{IDComprobante: 10, Sucursal: 1, Emision: start.Add(48 * time.Hour), Tipo: "FC", Letra: "B", PuntoVta: 3, Numero: 1501,
			TotalCobertura: decimal.RequireFromString("1234.5"), TotalComprobante: decimal.RequireFromString("2000"), IDObSoc: "2099"},
		{IDComprobante: 11, Sucursal: 1, Emision: start.Add(72 * time.Hour), Tipo: "FC", Letra: "B", PuntoVta: 3, Numero: 1502,
			TotalCobertura: decimal.RequireFromString("10"), TotalComprobante: decimal.RequireFromString("10"), IDObSoc: "2099"},
	}
	q := &fakeQuerier{rows: want}

	got, err := NewCoverageInvoiceRepository(q).ListByPeriod(context.Background(), "2099", start, end)
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Equal(t, []any{"2099", start, end}, q.args)
	assert.Contains(t, q.sql, "fco.IDObSoc = $1")
	assert.Contains(t, q.sql, "fc.Emision <  $3")
}

func TestListByPeriod_SinFilasDevuelveSliceVacio(t *testing.T) {
	got, err := NewCoverageInvoiceRepository(&fakeQuerier{}).
		ListByPeriod(context.Background(), "2099", time.Now(), time.Now())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListByPeriod_ErrorDeConsulta(t *testing.T) {
	dbErr := errors.New("connection refused")
	_, err := NewCoverageInvoiceRepository(&fakeQuerier{err: dbErr}).
		ListByPeriod(context.Background(), "2099", time.Now(), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}
