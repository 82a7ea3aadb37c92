package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier lo implementan *pgxpool.Pool, *pgx.Conn y pgx.Tx; permite usar los repos con pool o tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
