package services_test

import (
	"context"

	"github.com/SscSPs/banking_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_ledger/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// MockLedgerTxStore is a mock type for the LedgerTxStore interface
type MockLedgerTxStore struct {
	mock.Mock
}

func (m *MockLedgerTxStore) FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerTxStore) LockAccountType(ctx context.Context, accountType domain.AccountType) error {
	args := m.Called(ctx, accountType)
	return args.Error(0)
}

func (m *MockLedgerTxStore) MaxAccountNumberForType(ctx context.Context, accountType domain.AccountType) (*string, error) {
	args := m.Called(ctx, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockLedgerTxStore) InsertAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockLedgerTxStore) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockLedgerTxStore) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockLedgerTxStore) InsertTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	if fn, ok := args.Get(0).(func(context.Context, domain.Transaction) *domain.Transaction); ok {
		return fn(ctx, txn), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerTxStore) ClientExists(ctx context.Context, clientID string) (bool, error) {
	args := m.Called(ctx, clientID)
	return args.Bool(0), args.Error(1)
}

// stubTxManager runs every unit of work against the same mock store.
type stubTxManager struct {
	store *MockLedgerTxStore
	calls int
}

func (s *stubTxManager) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	s.calls++
	return fn(ctx, s.store)
}

// MockAccountReader is a mock type for the AccountRepositoryFacade interface
type MockAccountReader struct {
	mock.Mock
}

func (m *MockAccountReader) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountReader) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountReader) ListAccountsByClient(ctx context.Context, clientID string) ([]domain.Account, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockClientChecker is a mock type for the ClientChecker interface
type MockClientChecker struct {
	mock.Mock
}

func (m *MockClientChecker) ClientExists(ctx context.Context, clientID string) (bool, error) {
	args := m.Called(ctx, clientID)
	return args.Bool(0), args.Error(1)
}

func strPtr(s string) *string { return &s }
