// Package sqlstoretest provides a throwaway sqlite store seeded with brand and
// transaction rows for tests.
package sqlstoretest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/brand-spend-api/infrastructure/database/sqlstore"
	"github.com/vfg2006/brand-spend-api/internal/config"
)

const (
	BrandsTable       = "brand_details"
	TransactionsTable = "brand_transactions"
)

const schema = `
CREATE TABLE brand_details (
	BRAND_ID      INTEGER PRIMARY KEY,
	BRAND_NAME    TEXT NOT NULL,
	INDUSTRY_NAME TEXT NOT NULL,
	BRAND_URL     TEXT
);

CREATE TABLE brand_transactions (
	TRANSACTION_ID   INTEGER PRIMARY KEY,
	BRAND_ID         INTEGER NOT NULL REFERENCES brand_details (BRAND_ID),
	SPEND_AMOUNT     REAL NOT NULL,
	STATE_ABBR       TEXT NOT NULL,
	TRANSACTION_DATE TEXT NOT NULL
);`

type Brand struct {
	ID       int
	Name     string
	Industry string
}

type Transaction struct {
	ID      int
	BrandID int
	Spend   float64
	State   string
	Date    string
}

// Database returns the store configuration of a new empty sqlite file.
func Database(t testing.TB) config.Database {
	t.Helper()

	path := filepath.Join(t.TempDir(), "store.db")
	return config.Database{Driver: config.DriverSQLite, Name: path, DSN: path}
}

// New creates the schema, inserts the given rows and returns an open connection.
func New(t testing.TB, brands []Brand, transactions []Transaction) *sqlstore.Connection {
	t.Helper()

	conn, err := sqlstore.NewConnection(Database(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = conn.Exec(schema)
	require.NoError(t, err)

	for _, b := range brands {
		_, err := conn.Exec(
			`INSERT INTO brand_details (BRAND_ID, BRAND_NAME, INDUSTRY_NAME, BRAND_URL) VALUES (?, ?, ?, ?)`,
			b.ID, b.Name, b.Industry, nil,
		)
		require.NoError(t, err)
	}

	for _, tx := range transactions {
		date := tx.Date
		if date == "" {
			date = "2024-01-15"
		}
		_, err := conn.Exec(
			`INSERT INTO brand_transactions (TRANSACTION_ID, BRAND_ID, SPEND_AMOUNT, STATE_ABBR, TRANSACTION_DATE) VALUES (?, ?, ?, ?, ?)`,
			tx.ID, tx.BrandID, tx.Spend, tx.State, date,
		)
		require.NoError(t, err)
	}

	return conn
}

// Acme is the single-brand fixture: one Retail brand with spends of 100 and 300.
func Acme(t testing.TB) *sqlstore.Connection {
	t.Helper()

	return New(t,
		[]Brand{{ID: 1, Name: "Acme", Industry: "Retail"}},
		[]Transaction{
			{ID: 1, BrandID: 1, Spend: 100, State: "CA"},
			{ID: 2, BrandID: 1, Spend: 300, State: "NY"},
		},
	)
}
