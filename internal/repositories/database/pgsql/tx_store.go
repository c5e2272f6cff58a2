package pgsql

import (
	"context"

	"github.com/SscSPs/banking_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// pgxTxStore exposes the ledger writes bound to one open transaction.
type pgxTxStore struct {
	tx pgx.Tx
}

var _ portsrepo.LedgerTxStore = (*pgxTxStore)(nil)

func (s *pgxTxStore) FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	return findAccountForUpdate(ctx, s.tx, accountID)
}

func (s *pgxTxStore) LockAccountType(ctx context.Context, accountType domain.AccountType) error {
	return lockAccountType(ctx, s.tx, accountType)
}

func (s *pgxTxStore) MaxAccountNumberForType(ctx context.Context, accountType domain.AccountType) (*string, error) {
	return maxAccountNumberForType(ctx, s.tx, accountType)
}

func (s *pgxTxStore) InsertAccount(ctx context.Context, account domain.Account) error {
	return insertAccount(ctx, s.tx, account)
}

func (s *pgxTxStore) UpdateAccount(ctx context.Context, account domain.Account) error {
	return updateAccount(ctx, s.tx, account)
}

func (s *pgxTxStore) DeleteAccount(ctx context.Context, accountID string) error {
	return deleteAccount(ctx, s.tx, accountID)
}

func (s *pgxTxStore) InsertTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	return insertTransaction(ctx, s.tx, txn)
}

func (s *pgxTxStore) ClientExists(ctx context.Context, clientID string) (bool, error) {
	return clientExists(ctx, s.tx, clientID)
}
