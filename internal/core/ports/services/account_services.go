package services

import (
	"context"

	"github.com/SscSPs/banking_ledger/internal/core/domain"
	"github.com/SscSPs/banking_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountByNumber retrieves an account by its public account number.
	GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// ListAccountsByClient retrieves all accounts of a client.
	ListAccountsByClient(ctx context.Context, clientID string) ([]domain.Account, error)
}

// AccountNumberAllocatorSvc derives account numbers.
type AccountNumberAllocatorSvc interface {
	// AllocateAccountNumber returns the next unused number for the type.
	AllocateAccountNumber(ctx context.Context, accountType domain.AccountType) (string, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount opens a new account for an existing client.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// SetAccountStatus moves an account to a new status.
	SetAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus) (*domain.Account, error)

	// CancelAccount cancels an account with zero balance.
	CancelAccount(ctx context.Context, accountID string) (*domain.Account, error)

	// DeleteAccount removes a cancelled account with zero balance.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountNumberAllocatorSvc
	AccountWriterSvc
}
