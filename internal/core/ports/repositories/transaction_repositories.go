package repositories

import (
	"context"

	"github.com/SscSPs/banking_ledger/internal/core/domain"
)

// TransactionReader defines read operations for transaction records.
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction record.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccount returns every record where the account is origin or
	// destination, newest first.
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)
}

// TransactionWriter appends transaction records. There is no update or delete.
type TransactionWriter interface {
	// InsertTransaction persists txn and returns it with its server-assigned timestamp.
	InsertTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines the pool-scoped transaction interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
}
