package sqlstore

import (
	"context"
	"database/sql"
)

// Queryer is satisfied by *sql.Conn, *sql.DB and *sql.Tx.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}
