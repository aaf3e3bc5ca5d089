package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tallerkeeper/internal/common"
	"github.com/dmitrijs2005/tallerkeeper/internal/logging"
)

// DefaultMaxConns bounds the pool when no explicit limit is configured.
const DefaultMaxConns = 10

// PoolOptions configures a Pool.
//
// AcquireTimeout of zero means Acquire waits for as long as the caller's
// context allows.
type PoolOptions struct {
	MaxConns       int
	AcquireTimeout time.Duration
}

// Pool is a bounded set of reusable connections. Each acquired connection is
// owned by exactly one caller until released.
type Pool struct {
	db             *sql.DB
	acquireTimeout time.Duration
	logger         logging.Logger
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

// Open creates a Pool for the given driver and DSN and pings the store once.
// An unreachable store is logged, not returned: requests will fail later on
// their own.
func Open(ctx context.Context, driver, dsn string, opts PoolOptions, logger logging.Logger) (*Pool, error) {
	db, err := sqlOpen(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	p := NewPool(db, opts, logger)

	if err := p.Ping(ctx); err != nil {
		p.logger.Error(ctx, "database unreachable", "error", err.Error())
	} else {
		p.logger.Info(ctx, "database connection established", "max_conns", db.Stats().MaxOpenConnections)
	}

	return p, nil
}

// NewPool wraps an already opened *sql.DB.
func NewPool(db *sql.DB, opts PoolOptions, logger logging.Logger) *Pool {
	maxConns := opts.MaxConns
	if maxConns <= 0 {
		maxConns = DefaultMaxConns
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)

	return &Pool{
		db:             db,
		acquireTimeout: opts.AcquireTimeout,
		logger:         logger.With("module", "pool"),
	}
}

func (p *Pool) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Acquire takes a connection out of the pool, waiting while all of them are
// busy. When an acquire timeout is configured and elapses first,
// common.ErrorPoolExhausted is returned.
func (p *Pool) Acquire(ctx context.Context) (*sql.Conn, error) {
	acquireCtx := ctx
	if p.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, p.acquireTimeout)
		defer cancel()
	}

	conn, err := p.db.Conn(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, common.ErrorPoolExhausted
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return conn, nil
}

// Release hands conn back to the pool. Releasing twice is harmless.
func (p *Pool) Release(conn *sql.Conn) {
	if conn == nil {
		return
	}
	if err := conn.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		p.logger.Warn(context.Background(), "release connection", "error", err.Error())
	}
}

// WithConn runs fn on an exclusively held connection and releases it on
// every exit path.
func (p *Pool) WithConn(ctx context.Context, fn func(ctx context.Context, conn *sql.Conn) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer p.Release(conn)

	return fn(ctx, conn)
}

// DB exposes the underlying handle for schema bootstrap.
func (p *Pool) DB() *sql.DB {
	return p.db
}

func (p *Pool) Stats() sql.DBStats {
	return p.db.Stats()
}

func (p *Pool) Close() error {
	return p.db.Close()
}
