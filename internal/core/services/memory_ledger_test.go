package services_test

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/banking_ledger/internal/apperrors"
	"github.com/SscSPs/banking_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// memoryLedger is an in-memory store with all-or-nothing units of work.
// WithinTx holds a single mutex, which stands in for row and advisory locks.
type memoryLedger struct {
	mu       sync.Mutex
	accounts map[string]domain.Account
	txns     []domain.Transaction
	clients  map[string]bool
	clock    time.Time

	failInsertTransaction error
	txCount               int
}

func newMemoryLedger(clientIDs ...string) *memoryLedger {
	m := &memoryLedger{
		accounts: make(map[string]domain.Account),
		clients:  make(map[string]bool),
		clock:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	for _, id := range clientIDs {
		m.clients[id] = true
	}
	return m
}

func (m *memoryLedger) seed(id, number string, balance string, status domain.AccountStatus) domain.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc := domain.Account{
		AccountID:     id,
		AccountNumber: number,
		AccountType:   domain.Checking,
		Status:        status,
		Balance:       decimal.RequireFromString(balance),
		ClientID:      "client-1",
	}
	m.accounts[id] = acc
	return acc
}

func (m *memoryLedger) balance(id string) decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accounts[id].Balance
}

func (m *memoryLedger) transactions() []domain.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Transaction(nil), m.txns...)
}

func (m *memoryLedger) tick() time.Time {
	m.clock = m.clock.Add(time.Millisecond)
	return m.clock
}

func (m *memoryLedger) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txCount++

	accounts := maps.Clone(m.accounts)
	txnCount := len(m.txns)
	if err := fn(ctx, &memoryTx{m: m}); err != nil {
		m.accounts = accounts
		m.txns = m.txns[:txnCount]
		return err
	}
	return nil
}

// Pool-scoped readers.

func (m *memoryLedger) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return &acc, nil
}

func (m *memoryLedger) FindAccountByNumber(_ context.Context, accountNumber string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, acc := range m.accounts {
		if acc.AccountNumber == accountNumber {
			return &acc, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (m *memoryLedger) ListAccountsByClient(_ context.Context, clientID string) ([]domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Account
	for _, acc := range m.accounts {
		if acc.ClientID == clientID {
			out = append(out, acc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountNumber < out[j].AccountNumber })
	return out, nil
}

func (m *memoryLedger) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, txn := range m.txns {
		if txn.TransactionID == transactionID {
			return &txn, nil
		}
	}
	return nil, apperrors.ErrTransactionNotFound
}

func (m *memoryLedger) ListTransactionsByAccount(_ context.Context, accountID string) ([]domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Transaction
	for i := len(m.txns) - 1; i >= 0; i-- {
		txn := m.txns[i]
		if txn.OriginAccountID == accountID || (txn.DestinationAccountID != nil && *txn.DestinationAccountID == accountID) {
			out = append(out, txn)
		}
	}
	return out, nil
}

func (m *memoryLedger) ClientExists(_ context.Context, clientID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clients[clientID], nil
}

// memoryTx runs with memoryLedger.mu already held.
type memoryTx struct {
	m *memoryLedger
}

var _ portsrepo.LedgerTxStore = (*memoryTx)(nil)

func (t *memoryTx) FindAccountByIDForUpdate(_ context.Context, accountID string) (*domain.Account, error) {
	acc, ok := t.m.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return &acc, nil
}

func (t *memoryTx) LockAccountType(context.Context, domain.AccountType) error {
	return nil
}

func (t *memoryTx) MaxAccountNumberForType(_ context.Context, accountType domain.AccountType) (*string, error) {
	var highest *string
	for _, acc := range t.m.accounts {
		if acc.AccountType != accountType {
			continue
		}
		if highest == nil || acc.AccountNumber > *highest {
			number := acc.AccountNumber
			highest = &number
		}
	}
	return highest, nil
}

func (t *memoryTx) InsertAccount(_ context.Context, account domain.Account) error {
	for _, acc := range t.m.accounts {
		if acc.AccountNumber == account.AccountNumber {
			return apperrors.ErrDuplicate
		}
	}
	t.m.accounts[account.AccountID] = account
	return nil
}

func (t *memoryTx) UpdateAccount(_ context.Context, account domain.Account) error {
	if _, ok := t.m.accounts[account.AccountID]; !ok {
		return apperrors.ErrAccountNotFound
	}
	t.m.accounts[account.AccountID] = account
	return nil
}

func (t *memoryTx) DeleteAccount(_ context.Context, accountID string) error {
	if _, ok := t.m.accounts[accountID]; !ok {
		return apperrors.ErrAccountNotFound
	}
	delete(t.m.accounts, accountID)
	return nil
}

func (t *memoryTx) InsertTransaction(_ context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	if t.m.failInsertTransaction != nil {
		return nil, t.m.failInsertTransaction
	}
	txn.CreatedAt = t.m.tick()
	t.m.txns = append(t.m.txns, txn)
	return &txn, nil
}

func (t *memoryTx) ClientExists(_ context.Context, clientID string) (bool, error) {
	return t.m.clients[clientID], nil
}
