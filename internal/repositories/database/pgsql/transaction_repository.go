package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/banking_ledger/internal/apperrors"
	"github.com/SscSPs/banking_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/banking_ledger/internal/models"
	"github.com/SscSPs/banking_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, entry_seq, transaction_type, amount, description, origin_account_id, destination_account_id, resulting_balance, created_at`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.EntrySeq,
		&m.TransactionType,
		&m.Amount,
		&m.Description,
		&m.OriginAccountID,
		&m.DestinationAccountID,
		&m.ResultingBalance,
		&m.CreatedAt,
	)
	return m, err
}

// FindTransactionByID retrieves a single transaction record.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrTransactionNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactionsByAccount returns records where the account is origin or destination, newest first.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE origin_account_id = $1 OR destination_account_id = $1
		ORDER BY created_at DESC, entry_seq DESC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// insertTransaction appends a record. created_at and entry_seq come from the database.
func insertTransaction(ctx context.Context, q querier, txn domain.Transaction) (*domain.Transaction, error) {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, transaction_type, amount, description, origin_account_id, destination_account_id, resulting_balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING entry_seq, created_at;
	`
	err := q.QueryRow(ctx, query,
		m.TransactionID,
		m.TransactionType,
		m.Amount,
		m.Description,
		m.OriginAccountID,
		m.DestinationAccountID,
		m.ResultingBalance,
	).Scan(&m.EntrySeq, &m.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, m.TransactionID)
		}
		return nil, fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	saved := mapping.ToDomainTransaction(m)
	return &saved, nil
}
