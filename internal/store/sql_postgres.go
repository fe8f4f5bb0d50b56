package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type (
	sessionCtxKey struct{}
	txCtxKey      struct{}
)

// querier is the subset shared by *sql.DB, *sql.Conn and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB is the shared PostgreSQL connection pool. Besides plain queries it
// provides per-request sessions ([DB.Session]) and context-carried
// transactions ([DB.WithinTransaction]).
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens the pool described by cfg and verifies it with a
// ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return NewDB(conn, log), nil
}

// NewDB wraps an already opened pool.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

// Session takes a dedicated connection from the pool. Queries issued with a
// context carrying it (see [WithSession]) all run on that connection.
func (db *DB) Session(ctx context.Context) (*sql.Conn, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*DB.Session").Msg("failed to acquire connection")
		return nil, db.wrapError(err, ErrAcquiringSession)
	}

	return conn, nil
}

// WithSession returns a copy of ctx that carries conn.
func WithSession(ctx context.Context, conn *sql.Conn) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, conn)
}

func sessionFromContext(ctx context.Context) (*sql.Conn, bool) {
	conn, ok := ctx.Value(sessionCtxKey{}).(*sql.Conn)
	return conn, ok && conn != nil
}

func txFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx)
	return tx, ok && tx != nil
}

// querier picks the open transaction, then the request session, then the
// pool.
func (db *DB) querier(ctx context.Context) querier {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	if conn, ok := sessionFromContext(ctx); ok {
		return conn
	}

	return db.DB
}

// WithinTransaction runs fn in a transaction that is committed when fn
// returns nil and rolled back otherwise. A nested call joins the outer
// transaction.
func (db *DB) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	log := logger.FromContext(ctx)

	var (
		tx  *sql.Tx
		err error
	)
	if conn, ok := sessionFromContext(ctx); ok {
		tx, err = conn.BeginTx(ctx, nil)
	} else {
		tx, err = db.BeginTx(ctx, nil)
	}
	if err != nil {
		log.Err(err).Str("func", "*DB.WithinTransaction").Msg("failed to begin transaction")
		return db.wrapError(err, ErrBeginningTransaction)
	}
	defer tx.Rollback()

	if err = fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*DB.WithinTransaction").Msg("failed to commit transaction")
		return db.wrapError(err, ErrCommitingTransaction)
	}

	return nil
}

// wrapError attaches ErrStoreUnavailable to transient failures and fallback
// to everything else.
func (db *DB) wrapError(err, fallback error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, fallback, err)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
