package repositories

import (
	"context"

	"github.com/SscSPs/banking_ledger/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByNumber retrieves an account by its public account number.
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// ListAccountsByClient retrieves all accounts owned by a client.
	ListAccountsByClient(ctx context.Context, clientID string) ([]domain.Account, error)
}

// AccountTxStore defines the account operations that must run inside a transaction.
type AccountTxStore interface {
	// FindAccountByIDForUpdate loads an account and locks its row.
	FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error)

	// LockAccountType serializes account-number allocation for one type until commit.
	LockAccountType(ctx context.Context, accountType domain.AccountType) error

	// MaxAccountNumberForType returns the highest allocated number for the type, or nil.
	MaxAccountNumberForType(ctx context.Context, accountType domain.AccountType) (*string, error)

	// InsertAccount persists a new account. A taken account number yields apperrors.ErrDuplicate.
	InsertAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount persists balance and status of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account permanently.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
}
