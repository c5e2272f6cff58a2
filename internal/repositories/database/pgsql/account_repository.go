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

const accountColumns = `account_id, account_number, account_type, status, balance, fee_exempt, client_id, created_at, last_updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.AccountNumber,
		&m.AccountType,
		&m.Status,
		&m.Balance,
		&m.FeeExempt,
		&m.ClientID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func findAccount(ctx context.Context, q querier, query string, arg any) (*domain.Account, error) {
	acc, err := scanAccount(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrAccountNotFound, arg)
		}
		if conflict := asConflict(err); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("failed to query account %v: %w", arg, err)
	}
	return acc, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	return findAccount(ctx, r.Pool, query, accountID)
}

// FindAccountByNumber retrieves an account by its public number.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1;`
	return findAccount(ctx, r.Pool, query, accountNumber)
}

// ListAccountsByClient lists a client's accounts ordered by account number.
func (r *PgxAccountRepository) ListAccountsByClient(ctx context.Context, clientID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE client_id = $1 ORDER BY account_number;`

	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for client %s: %w", clientID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

func findAccountForUpdate(ctx context.Context, q querier, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1 FOR UPDATE;`
	return findAccount(ctx, q, query, accountID)
}

// lockAccountType takes a transaction-scoped advisory lock keyed by the account type.
func lockAccountType(ctx context.Context, q querier, accountType domain.AccountType) error {
	_, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('account_number:' || $1));`, string(accountType))
	if err != nil {
		return fmt.Errorf("failed to acquire account number lock for %s: %w", accountType, err)
	}
	return nil
}

// maxAccountNumberForType relies on every number of a type sharing prefix and width,
// so the lexical maximum is the numeric maximum.
func maxAccountNumberForType(ctx context.Context, q querier, accountType domain.AccountType) (*string, error) {
	var last *string
	err := q.QueryRow(ctx,
		`SELECT MAX(account_number) FROM accounts WHERE account_type = $1;`,
		string(accountType),
	).Scan(&last)
	if err != nil {
		return nil, fmt.Errorf("failed to read max account number for %s: %w", accountType, err)
	}
	return last, nil
}

func insertAccount(ctx context.Context, q querier, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := q.Exec(ctx, query,
		m.AccountID,
		m.AccountNumber,
		m.AccountType,
		m.Status,
		m.Balance,
		m.FeeExempt,
		m.ClientID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return fmt.Errorf("%w: account number %s is taken", apperrors.ErrDuplicate, m.AccountNumber)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrClientNotFound, m.ClientID)
		case pgCheckViolation:
			return fmt.Errorf("%w: account %s", apperrors.ErrNegativeBalance, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

func updateAccount(ctx context.Context, q querier, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET status = $2, balance = $3, fee_exempt = $4, last_updated_at = $5
		WHERE account_id = $1;
	`
	tag, err := q.Exec(ctx, query, m.AccountID, m.Status, m.Balance, m.FeeExempt, m.LastUpdatedAt)
	if err != nil {
		if pgErrorCode(err) == pgCheckViolation {
			return fmt.Errorf("%w: account %s", apperrors.ErrNegativeBalance, m.AccountID)
		}
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, m.AccountID)
	}
	return nil
}

func deleteAccount(ctx context.Context, q querier, accountID string) error {
	tag, err := q.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, accountID)
	}
	return nil
}
