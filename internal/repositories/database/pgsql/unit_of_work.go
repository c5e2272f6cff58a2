package pgsql

import (
	"context"
	"log/slog"

	portsrepo "github.com/SscSPs/banking_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/banking_ledger/internal/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUnitOfWork runs ledger operations inside one database transaction.
type PgxUnitOfWork struct {
	BaseRepository
}

func newPgxUnitOfWork(pool *pgxpool.Pool) *PgxUnitOfWork {
	return &PgxUnitOfWork{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionManager = (*PgxUnitOfWork)(nil)

// WithinTx begins a transaction, hands fn a store bound to it and commits when fn
// returns nil. Any error from fn rolls back every write made through the store.
func (u *PgxUnitOfWork) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := u.Rollback(ctx, tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Rollback failed", slog.String("error", rbErr.Error()))
		}
	}()

	if err := fn(ctx, &pgxTxStore{tx: tx}); err != nil {
		return err
	}
	return u.Commit(ctx, tx)
}
