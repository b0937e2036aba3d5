package sqlstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brand-spend-api/infrastructure/database/sqlstore"
	"github.com/vfg2006/brand-spend-api/infrastructure/database/sqlstore/sqlstoretest"
	"github.com/vfg2006/brand-spend-api/internal/config"
	"github.com/vfg2006/brand-spend-api/internal/domain"
)

func TestExecutor_Execute(t *testing.T) {
	conn := sqlstoretest.Acme(t)
	executor := sqlstore.NewExecutor(conn)

	tests := []struct {
		name     string
		stmts    []sqlstore.Statement
		validate func(t *testing.T, results []domain.QueryResult)
	}{
		{
			name: "keeps store row and column order",
			stmts: []sqlstore.Statement{{
				Name: "transactions",
				SQL:  "SELECT TRANSACTION_ID, SPEND_AMOUNT, STATE_ABBR FROM brand_transactions ORDER BY SPEND_AMOUNT DESC",
			}},
			validate: func(t *testing.T, results []domain.QueryResult) {
				require.Len(t, results, 1)
				require.Len(t, results[0], 2)
				assert.Equal(t, []string{"TRANSACTION_ID", "SPEND_AMOUNT", "STATE_ABBR"}, results[0][0].Keys())

				state, _ := results[0][0].Get("STATE_ABBR")
				assert.Equal(t, "NY", state)
				spend, _ := results[0][1].Get("SPEND_AMOUNT")
				assert.Equal(t, 100.0, spend)
			},
		},
		{
			name: "binds positional parameters",
			stmts: []sqlstore.Statement{{
				Name: "limited",
				SQL:  "SELECT * FROM brand_transactions ORDER BY TRANSACTION_ID LIMIT ?",
				Args: []any{1},
			}},
			validate: func(t *testing.T, results []domain.QueryResult) {
				require.Len(t, results[0], 1)
			},
		},
		{
			name: "empty result set is an empty, non-nil result",
			stmts: []sqlstore.Statement{{
				Name: "none",
				SQL:  "SELECT * FROM brand_details WHERE BRAND_ID = ?",
				Args: []any{42},
			}},
			validate: func(t *testing.T, results []domain.QueryResult) {
				require.Len(t, results, 1)
				assert.NotNil(t, results[0])
				assert.Empty(t, results[0])
			},
		},
		{
			name: "runs several statements in order",
			stmts: []sqlstore.Statement{
				{Name: "count", SQL: "SELECT COUNT(*) AS n FROM brand_transactions"},
				{Name: "brands", SQL: "SELECT BRAND_NAME FROM brand_details"},
			},
			validate: func(t *testing.T, results []domain.QueryResult) {
				require.Len(t, results, 2)
				n, _ := results[0][0].Get("n")
				assert.Equal(t, int64(2), n)
				name, _ := results[1][0].Get("BRAND_NAME")
				assert.Equal(t, "Acme", name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := executor.Execute(context.Background(), tt.stmts...)
			require.NoError(t, err)
			tt.validate(t, results)
			assert.Equal(t, 0, conn.Stats().OpenConnections)
		})
	}
}

func TestExecutor_BoundParametersDoNotChangeStatement(t *testing.T) {
	conn := sqlstoretest.Acme(t)
	executor := sqlstore.NewExecutor(conn)

	results, err := executor.Execute(context.Background(), sqlstore.Statement{
		Name: "lookup",
		SQL:  "SELECT * FROM brand_details WHERE BRAND_NAME = ?",
		Args: []any{"Acme' OR '1'='1"},
	})
	require.NoError(t, err)
	assert.Empty(t, results[0])

	results, err = executor.Execute(context.Background(), sqlstore.Statement{
		Name: "count",
		SQL:  "SELECT COUNT(*) AS n FROM brand_details",
	})
	require.NoError(t, err)
	n, _ := results[0][0].Get("n")
	assert.Equal(t, int64(1), n)
}

func TestExecutor_QueryFailure(t *testing.T) {
	conn := sqlstoretest.Acme(t)
	executor := sqlstore.NewExecutor(conn)

	results, err := executor.Execute(context.Background(),
		sqlstore.Statement{Name: "ok", SQL: "SELECT * FROM brand_details"},
		sqlstore.Statement{Name: "broken", SQL: "SELECT * FROM missing_table"},
		sqlstore.Statement{Name: "never", SQL: "SELECT * FROM brand_transactions"},
	)

	require.Error(t, err)
	assert.Nil(t, results)
	assert.True(t, sqlstore.IsQueryFailure(err))
	assert.False(t, sqlstore.IsConnectionFailure(err))

	var failure *sqlstore.Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, "broken", failure.Statement)
	assert.Equal(t, 0, conn.Stats().OpenConnections)
}

func TestExecutor_ConnectionFailure(t *testing.T) {
	db := config.Database{
		Driver:         config.DriverPostgres,
		Host:           "127.0.0.1:1",
		Name:           "brands",
		User:           "reader",
		Password:       "secret",
		SSLMode:        "disable",
		ConnectTimeout: time.Second,
	}
	dsn, err := config.BuildDSN(db)
	require.NoError(t, err)
	db.DSN = dsn

	conn, err := sqlstore.NewConnection(db)
	require.NoError(t, err)
	defer conn.Close()

	executor := sqlstore.NewExecutor(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	results, err := executor.Execute(ctx, sqlstore.Statement{Name: "brands", SQL: "SELECT 1"})

	require.Error(t, err)
	assert.Nil(t, results)
	assert.True(t, sqlstore.IsConnectionFailure(err))
	assert.Equal(t, 0, conn.Stats().OpenConnections)
}

func TestConnection_Placeholder(t *testing.T) {
	sqlite, err := sqlstore.NewConnection(config.Database{Driver: config.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	defer sqlite.Close()

	pg, err := sqlstore.NewConnection(config.Database{Driver: config.DriverPostgres, DSN: "postgres://localhost/brands"})
	require.NoError(t, err)
	defer pg.Close()

	sql, err := sqlite.Placeholder().ReplacePlaceholders("LIMIT ?")
	require.NoError(t, err)
	assert.Equal(t, "LIMIT ?", sql)

	sql, err = pg.Placeholder().ReplacePlaceholders("LIMIT ?")
	require.NoError(t, err)
	assert.Equal(t, "LIMIT $1", sql)
}
