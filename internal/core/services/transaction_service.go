package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/banking_ledger/internal/apperrors"
	"github.com/SscSPs/banking_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banking_ledger/internal/core/ports/services"
	"github.com/SscSPs/banking_ledger/internal/platform/metrics"
	"github.com/SscSPs/banking_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Default descriptions used when the caller supplies none.
const (
	DefaultDepositDescription    = "Deposit"
	DefaultWithdrawalDescription = "Withdrawal"
	transferOutDescriptionFormat = "Transfer to account %s"
	transferInDescriptionFormat  = "Transfer from account %s"
)

// transactionService moves money between balances and records every movement.
type transactionService struct {
	BaseService
	accountRepo     portsrepo.AccountReader
	transactionRepo portsrepo.TransactionRepositoryFacade
	txManager       portsrepo.TransactionManager
	now             func() time.Time
	newID           func() string
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionClock overrides the time source used for account audit fields.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// WithTransactionIDGenerator overrides transaction id generation.
func WithTransactionIDGenerator(gen func() string) TransactionServiceOption {
	return func(s *transactionService) {
		s.newID = gen
	}
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(accountRepo portsrepo.AccountReader, transactionRepo portsrepo.TransactionRepositoryFacade, txManager portsrepo.TransactionManager, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		now:             time.Now,
		newID:           uuid.NewString,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

func describe(description *string, fallback string) string {
	if description != nil {
		if trimmed := strings.TrimSpace(*description); trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

func requireActive(account *domain.Account, side string) error {
	if account.IsActive() {
		return nil
	}
	if side != "" {
		return fmt.Errorf("%w: %s account %s is %s", apperrors.ErrAccountNotActive, side, account.AccountNumber, account.Status)
	}
	return fmt.Errorf("%w: account %s is %s", apperrors.ErrAccountNotActive, account.AccountNumber, account.Status)
}

// persistBalance writes the mutated account back. It must precede record.
func (s *transactionService) persistBalance(ctx context.Context, store portsrepo.LedgerTxStore, account *domain.Account) error {
	account.LastUpdatedAt = s.now()
	if err := store.UpdateAccount(ctx, *account); err != nil {
		return fmt.Errorf("failed to update balance of account %s: %w", account.AccountID, err)
	}
	return nil
}

// record appends an immutable row snapshotting account's post-movement balance.
func (s *transactionService) record(ctx context.Context, store portsrepo.LedgerTxStore, account *domain.Account, txnType domain.TransactionType, amount decimal.Decimal, description string, counterpartID *string) (*domain.Transaction, error) {
	txn := domain.Transaction{
		TransactionID:        s.newID(),
		TransactionType:      txnType,
		Amount:               amount,
		Description:          description,
		OriginAccountID:      account.AccountID,
		DestinationAccountID: counterpartID,
		ResultingBalance:     account.Balance,
	}
	saved, err := store.InsertTransaction(ctx, txn)
	if err != nil {
		return nil, fmt.Errorf("failed to record %s for account %s: %w", txnType, account.AccountID, err)
	}
	return saved, nil
}

func (s *transactionService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, description *string) (txn *domain.Transaction, err error) {
	defer func() { metrics.ObserveOperation(metrics.OpDeposit, err) }()

	normalized, err := domain.ValidateAmount(amount)
	if err != nil {
		return nil, err
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
		account, err := lockAccount(ctx, store, accountID, "")
		if err != nil {
			return err
		}
		if err := requireActive(account, ""); err != nil {
			return err
		}
		if err := account.Credit(normalized); err != nil {
			return err
		}
		if err := s.persistBalance(ctx, store, account); err != nil {
			return err
		}
		txn, err = s.record(ctx, store, account, domain.Deposit, normalized, describe(description, DefaultDepositDescription), nil)
		return err
	})
	if err != nil {
		s.LogOutcome(ctx, err, "Deposit failed",
			slog.String("account_id", accountID),
			slog.String("amount", normalized.StringFixed(domain.MoneyScale)))
		return nil, err
	}

	s.LogInfo(ctx, "Deposit completed",
		slog.String("account_id", accountID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("resulting_balance", txn.ResultingBalance.StringFixed(domain.MoneyScale)))
	return txn, nil
}

func (s *transactionService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, description *string) (txn *domain.Transaction, err error) {
	defer func() { metrics.ObserveOperation(metrics.OpWithdraw, err) }()

	normalized, err := domain.ValidateAmount(amount)
	if err != nil {
		return nil, err
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
		account, err := lockAccount(ctx, store, accountID, "")
		if err != nil {
			return err
		}
		if err := requireActive(account, ""); err != nil {
			return err
		}
		if err := account.Debit(normalized); err != nil {
			return err
		}
		if err := s.persistBalance(ctx, store, account); err != nil {
			return err
		}
		txn, err = s.record(ctx, store, account, domain.Withdrawal, normalized, describe(description, DefaultWithdrawalDescription), nil)
		return err
	})
	if err != nil {
		s.LogOutcome(ctx, err, "Withdrawal failed",
			slog.String("account_id", accountID),
			slog.String("amount", normalized.StringFixed(domain.MoneyScale)))
		return nil, err
	}

	s.LogInfo(ctx, "Withdrawal completed",
		slog.String("account_id", accountID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("resulting_balance", txn.ResultingBalance.StringFixed(domain.MoneyScale)))
	return txn, nil
}

// Transfer runs validate, debit, credit and record as one unit of work. Both rows are
// locked in ascending id order so opposing transfers cannot deadlock.
func (s *transactionService) Transfer(ctx context.Context, originID, destinationID string, amount decimal.Decimal, description *string) (result *domain.TransferResult, err error) {
	defer func() { metrics.ObserveOperation(metrics.OpTransfer, err) }()

	normalized, err := domain.ValidateAmount(amount)
	if err != nil {
		return nil, err
	}
	if originID == destinationID {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrSameAccount, originID)
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
		origin, destination, err := lockPair(ctx, store, originID, destinationID)
		if err != nil {
			return err
		}
		if err := requireActive(origin, "origin"); err != nil {
			return err
		}
		if err := requireActive(destination, "destination"); err != nil {
			return err
		}

		if err := origin.Debit(normalized); err != nil {
			return err
		}
		if err := s.persistBalance(ctx, store, origin); err != nil {
			return err
		}

		if err := destination.Credit(normalized); err != nil {
			return err
		}
		if err := s.persistBalance(ctx, store, destination); err != nil {
			return err
		}

		outgoing, err := s.record(ctx, store, origin, domain.TransferOut, normalized,
			describe(description, fmt.Sprintf(transferOutDescriptionFormat, destination.AccountNumber)), &destination.AccountID)
		if err != nil {
			return err
		}
		incoming, err := s.record(ctx, store, destination, domain.TransferIn, normalized,
			describe(description, fmt.Sprintf(transferInDescriptionFormat, origin.AccountNumber)), &origin.AccountID)
		if err != nil {
			return err
		}

		pair := domain.TransferResult{Outgoing: *outgoing, Incoming: *incoming}
		if err := accounting.ValidateTransferLegs(pair); err != nil {
			return err
		}
		result = &pair
		return nil
	})
	if err != nil {
		s.LogOutcome(ctx, err, "Transfer failed",
			slog.String("origin_account_id", originID),
			slog.String("destination_account_id", destinationID),
			slog.String("amount", normalized.StringFixed(domain.MoneyScale)))
		return nil, err
	}

	s.LogInfo(ctx, "Transfer completed",
		slog.String("origin_account_id", originID),
		slog.String("destination_account_id", destinationID),
		slog.String("amount", normalized.StringFixed(domain.MoneyScale)))
	return result, nil
}

// lockPair locks both accounts, lowest id first, and returns them as (origin, destination).
func lockPair(ctx context.Context, store portsrepo.AccountTxStore, originID, destinationID string) (*domain.Account, *domain.Account, error) {
	type side struct {
		id   string
		name string
	}
	first, second := side{originID, "origin"}, side{destinationID, "destination"}
	if first.id > second.id {
		first, second = second, first
	}

	locked := make(map[string]*domain.Account, 2)
	for _, sd := range []side{first, second} {
		account, err := lockAccount(ctx, store, sd.id, sd.name)
		if err != nil {
			return nil, nil, err
		}
		locked[sd.name] = account
	}
	return locked["origin"], locked["destination"], nil
}

func (s *transactionService) GetAccountHistory(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for history", slog.String("account_id", accountID))
		}
		return nil, err
	}

	txns, err := s.transactionRepo.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}

	s.LogDebug(ctx, "Account history retrieved", slog.String("account_id", accountID), slog.Int("count", len(txns)))
	return txns, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}
