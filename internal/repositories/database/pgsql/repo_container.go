package pgsql

import (
	portsrepo "github.com/SscSPs/banking_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ClientRepo:      newPgxClientRepository(dbPool),
		TxManager:       newPgxUnitOfWork(dbPool),
	}
}
