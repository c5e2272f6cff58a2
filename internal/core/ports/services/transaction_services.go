package services

import (
	"context"

	"github.com/SscSPs/banking_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MovementSvc defines the balance-changing operations.
type MovementSvc interface {
	// Deposit credits an account and records a DEPOSIT.
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal, description *string) (*domain.Transaction, error)

	// Withdraw debits an account and records a WITHDRAWAL.
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, description *string) (*domain.Transaction, error)

	// Transfer moves funds between two accounts as one atomic unit.
	Transfer(ctx context.Context, originID, destinationID string, amount decimal.Decimal, description *string) (*domain.TransferResult, error)
}

// HistorySvc defines read operations over transaction records.
type HistorySvc interface {
	// GetAccountHistory lists every record touching the account, newest first.
	GetAccountHistory(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// GetTransactionByID retrieves a single record.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	MovementSvc
	HistorySvc
}
