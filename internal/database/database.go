package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// DBTX is satisfied by both *sql.DB and *sql.Tx, so a store can run its
// queries against the pool or against an ambient transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxRunner runs a function inside a database transaction. Services depend
// on this interface rather than on *DB directly.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Querier resolves the connection a store should run a query on. *DB
// implements it with transaction awareness; Static gives tests a fixed one.
type Querier interface {
	Conn(ctx context.Context) DBTX
}

type static struct{ db DBTX }

func (s static) Conn(context.Context) DBTX { return s.db }

// Static wraps a bare connection in a Querier for callers that never join
// an ambient transaction, such as sqlmock-backed store tests.
func Static(db DBTX) Querier { return static{db: db} }

type DB struct {
	pool *sql.DB
}

func New(connStr string) (*DB, error) {
	pool, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := pool.Ping(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	pool.SetMaxOpenConns(25)
	pool.SetMaxIdleConns(5)
	pool.SetConnMaxLifetime(5 * time.Minute)

	if err := runMigrations(pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &DB{pool: pool}, nil
}

func runMigrations(pool *sql.DB) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.Up(pool, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

func (d *DB) Close() error {
	return d.pool.Close()
}

type txKey struct{}

// Conn returns the transaction bound to ctx by WithinTx, or the pool when
// there is none.
func (d *DB) Conn(ctx context.Context) DBTX {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}

	return d.pool
}

// WithinTx begins a transaction, binds it to the context passed to fn and
// commits when fn returns nil. Any error rolls everything back. A nested
// call joins the ambient transaction instead of opening a second one, so a
// composed flow (vote -> approve -> reward) stays atomic end to end.
func (d *DB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := d.pool.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
