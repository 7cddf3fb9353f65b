package database

import (
	"context"

	"github.com/uptrace/bun"
)

type txContextKey struct{}

// Transactor runs functions inside a database transaction
type Transactor struct {
	db *bun.DB
}

// NewTransactor creates a new transaction runner for db
func NewTransactor(db *bun.DB) *Transactor {
	return &Transactor{db: db}
}

// RunInTx calls fn with a context carrying a transaction. Repositories that
// resolve their connection with Conn join it. A nested call reuses the
// outer transaction.
func (t *Transactor) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := TxFromContext(ctx); ok {
		return fn(ctx)
	}

	return t.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// TxFromContext returns the transaction stored by RunInTx
func TxFromContext(ctx context.Context) (bun.Tx, bool) {
	tx, ok := ctx.Value(txContextKey{}).(bun.Tx)
	return tx, ok
}

// Conn returns the transaction in ctx, or db when there is none
func Conn(ctx context.Context, db bun.IDB) bun.IDB {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return db
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageSize clamps a requested page length to (0, MaxPageSize], using
// DefaultPageSize when none was asked for
func PageSize(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPageSize
	case limit > MaxPageSize:
		return MaxPageSize
	default:
		return limit
	}
}
