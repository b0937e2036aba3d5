package sqlstore

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/brand-spend-api/internal/config"
	_ "modernc.org/sqlite"
)

type Conn interface {
	Acquire(context.Context) (*sql.Conn, error)
	Placeholder() squirrel.PlaceholderFormat
	Ping(context.Context) error
	Close() error
}

// Connection guarda o handle do driver. Conexões ociosas não são mantidas:
// cada requisição abre a sua e a fecha ao liberar.
type Connection struct {
	*sql.DB
	driver string
}

func NewConnection(cfg config.Database) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s store", cfg.Driver)
	}

	db.SetMaxIdleConns(0)
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	return &Connection{DB: db, driver: cfg.Driver}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Acquire establishes a dedicated connection. The caller must Close it.
func (c *Connection) Acquire(ctx context.Context) (*sql.Conn, error) {
	conn, err := c.DB.Conn(ctx)
	if err != nil {
		return nil, &Failure{Kind: ErrConnection, Err: errors.Wrapf(err, "connecting to %s store", c.driver)}
	}
	return conn, nil
}

// Placeholder devolve o formato de parâmetro posicional do driver
func (c *Connection) Placeholder() squirrel.PlaceholderFormat {
	if c.driver == config.DriverPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

func (c *Connection) Driver() string {
	return c.driver
}
