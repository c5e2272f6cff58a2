package repositories

import (
	"context"
)

// TxFunc is the body of a unit of work. It receives a store bound to the open transaction.
type TxFunc func(ctx context.Context, store LedgerTxStore) error

// TransactionManager runs a unit of work inside a single database transaction.
// fn's error rolls everything back; a nil return commits.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// LedgerTxStore groups the operations available inside a unit of work. Reads that
// precede a balance change lock the row until the transaction ends.
type LedgerTxStore interface {
	AccountTxStore
	TransactionWriter
	ClientChecker
}
