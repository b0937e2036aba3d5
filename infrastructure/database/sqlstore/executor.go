package sqlstore

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/vfg2006/brand-spend-api/internal/domain"
	"github.com/vfg2006/brand-spend-api/pkg/log"
	"github.com/vfg2006/brand-spend-api/pkg/utils"
)

// Statement is a SQL template plus the values bound to its placeholders.
type Statement struct {
	Name string
	SQL  string
	Args []any
}

type Executor struct {
	conn Conn
}

func NewExecutor(conn Conn) *Executor {
	return &Executor{conn: conn}
}

// Execute runs the statements in order on a single connection and returns one
// result per statement. The connection is released on every return path and
// the first failure aborts the remaining statements.
func (e *Executor) Execute(ctx context.Context, stmts ...Statement) ([]domain.QueryResult, error) {
	logger := log.ForContext(ctx)

	conn, err := e.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.WithError(err).Warn("sqlstore: failed to release connection")
		}
	}()

	results := make([]domain.QueryResult, 0, len(stmts))
	for _, stmt := range stmts {
		result, err := e.run(ctx, conn, stmt)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (e *Executor) run(ctx context.Context, q Queryer, stmt Statement) (domain.QueryResult, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"statement_id": utils.NewShortID(),
		"statement":    stmt.Name,
	})
	logger.WithField("args", len(stmt.Args)).Debug("sqlstore: executing statement")

	rows, err := q.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, e.queryFailure(stmt, errors.Wrap(err, "executing statement"))
	}
	defer rows.Close()

	result, err := scanRecords(rows)
	if err != nil {
		return nil, e.queryFailure(stmt, err)
	}

	logger.WithField("rows", len(result)).Debug("sqlstore: statement completed")
	return result, nil
}

func (e *Executor) queryFailure(stmt Statement, err error) error {
	if errors.Is(err, sql.ErrConnDone) {
		return &Failure{Kind: ErrConnection, Statement: stmt.Name, Err: err}
	}
	return &Failure{Kind: ErrQuery, Statement: stmt.Name, Err: err}
}
