package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/banking_ledger/internal/apperrors"
	"github.com/SscSPs/banking_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banking_ledger/internal/core/ports/services"
	"github.com/SscSPs/banking_ledger/internal/dto"
	"github.com/SscSPs/banking_ledger/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultAccountNumberMaxRetries bounds account creation attempts after a number collision.
const DefaultAccountNumberMaxRetries = 3

// accountService allocates account numbers and drives the account lifecycle.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	clientRepo  portsrepo.ClientChecker
	txManager   portsrepo.TransactionManager
	maxRetries  int
	now         func() time.Time
	newID       func() string
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountNumberMaxRetries sets how many times creation is attempted when the
// allocated number was taken concurrently.
func WithAccountNumberMaxRetries(n int) AccountServiceOption {
	return func(s *accountService) {
		if n > 0 {
			s.maxRetries = n
		}
	}
}

// WithAccountClock overrides the time source.
func WithAccountClock(now func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.now = now
	}
}

// WithAccountIDGenerator overrides account id generation.
func WithAccountIDGenerator(gen func() string) AccountServiceOption {
	return func(s *accountService) {
		s.newID = gen
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, clientRepo portsrepo.ClientChecker, txManager portsrepo.TransactionManager, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: accountRepo,
		clientRepo:  clientRepo,
		txManager:   txManager,
		maxRetries:  DefaultAccountNumberMaxRetries,
		now:         time.Now,
		newID:       uuid.NewString,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// allocateNumber must run inside a unit of work. The per-type lock is held until commit,
// so a concurrent allocation for the same type waits for the insert to become visible.
func (s *accountService) allocateNumber(ctx context.Context, store portsrepo.LedgerTxStore, accountType domain.AccountType) (string, error) {
	if err := store.LockAccountType(ctx, accountType); err != nil {
		return "", fmt.Errorf("failed to lock account numbers for %s: %w", accountType, err)
	}
	last, err := store.MaxAccountNumberForType(ctx, accountType)
	if err != nil {
		return "", fmt.Errorf("failed to read last account number for %s: %w", accountType, err)
	}
	return domain.NextAccountNumber(accountType, last)
}

func (s *accountService) AllocateAccountNumber(ctx context.Context, accountType domain.AccountType) (string, error) {
	if !accountType.Valid() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidAccountType, accountType)
	}

	var number string
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
		var err error
		number, err = s.allocateNumber(ctx, store, accountType)
		return err
	})
	if err != nil {
		s.LogOutcome(ctx, err, "Failed to allocate account number", slog.String("account_type", string(accountType)))
		return "", err
	}

	s.LogDebug(ctx, "Account number allocated", slog.String("account_number", number))
	return number, nil
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (account *domain.Account, err error) {
	defer func() { metrics.ObserveOperation(metrics.OpCreateAccount, err) }()

	if !req.AccountType.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidAccountType, req.AccountType)
	}
	initial := domain.NormalizeAmount(req.InitialBalance)
	if initial.IsNegative() {
		return nil, fmt.Errorf("%w (got %s)", apperrors.ErrNegativeBalance, req.InitialBalance.String())
	}

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		account, err = s.tryCreateAccount(ctx, req, initial)
		if err == nil {
			s.LogInfo(ctx, "Account created successfully",
				slog.String("account_id", account.AccountID),
				slog.String("account_number", account.AccountNumber),
				slog.String("client_id", account.ClientID))
			return account, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogOutcome(ctx, err, "Failed to create account",
				slog.String("client_id", req.ClientID),
				slog.String("account_type", string(req.AccountType)))
			return nil, err
		}

		metrics.ObserveAccountNumberRetry(string(req.AccountType))
		s.GetLogger(ctx).Warn("Account number collision, recomputing",
			slog.String("account_type", string(req.AccountType)),
			slog.Int("attempt", attempt))
	}

	err = fmt.Errorf("%w: could not allocate a %s account number after %d attempts", apperrors.ErrConflict, req.AccountType, s.maxRetries)
	s.LogError(ctx, err, "Account number allocation exhausted")
	return nil, err
}

func (s *accountService) tryCreateAccount(ctx context.Context, req dto.CreateAccountRequest, initial decimal.Decimal) (*domain.Account, error) {
	var created *domain.Account
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
		exists, err := store.ClientExists(ctx, req.ClientID)
		if err != nil {
			return fmt.Errorf("failed to check client %s: %w", req.ClientID, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", apperrors.ErrClientNotFound, req.ClientID)
		}

		number, err := s.allocateNumber(ctx, store, req.AccountType)
		if err != nil {
			return err
		}

		now := s.now()
		account := domain.Account{
			AccountID:     s.newID(),
			AccountNumber: number,
			AccountType:   req.AccountType,
			Status:        domain.Active,
			Balance:       initial,
			FeeExempt:     req.FeeExempt,
			ClientID:      req.ClientID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
		if err := store.InsertAccount(ctx, account); err != nil {
			return err
		}
		created = &account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by number", slog.String("account_number", accountNumber))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccountsByClient(ctx context.Context, clientID string) ([]domain.Account, error) {
	exists, err := s.clientRepo.ClientExists(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check client", slog.String("client_id", clientID))
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrClientNotFound, clientID)
	}

	accounts, err := s.accountRepo.ListAccountsByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}

	s.LogDebug(ctx, "Accounts listed successfully", slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountService) SetAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus) (account *domain.Account, err error) {
	defer func() { metrics.ObserveOperation(metrics.OpSetAccountStatus, err) }()

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
		locked, err := lockAccount(ctx, store, accountID, "")
		if err != nil {
			return err
		}

		previous := locked.Status
		if err := locked.SetStatus(status); err != nil {
			return err
		}
		if locked.Status != previous {
			locked.LastUpdatedAt = s.now()
			if err := store.UpdateAccount(ctx, *locked); err != nil {
				return fmt.Errorf("failed to update account %s: %w", accountID, err)
			}
		}
		account = locked
		return nil
	})
	if err != nil {
		s.LogOutcome(ctx, err, "Failed to change account status",
			slog.String("account_id", accountID),
			slog.String("status", string(status)))
		return nil, err
	}

	s.LogInfo(ctx, "Account status updated",
		slog.String("account_id", accountID),
		slog.String("status", string(account.Status)))
	return account, nil
}

func (s *accountService) CancelAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.SetAccountStatus(ctx, accountID, domain.Cancelled)
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string) (err error) {
	defer func() { metrics.ObserveOperation(metrics.OpDeleteAccount, err) }()

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
		locked, err := lockAccount(ctx, store, accountID, "")
		if err != nil {
			return err
		}
		if !locked.CanDelete() {
			return fmt.Errorf("%w: account %s is %s with balance %s", apperrors.ErrAccountNotDeletable,
				locked.AccountNumber, locked.Status, locked.Balance.StringFixed(domain.MoneyScale))
		}
		if err := store.DeleteAccount(ctx, accountID); err != nil {
			return fmt.Errorf("failed to delete account %s: %w", accountID, err)
		}
		return nil
	})
	if err != nil {
		s.LogOutcome(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}

// lockAccount loads and row-locks an account. side names the account in
// not-found messages for transfers ("origin", "destination").
func lockAccount(ctx context.Context, store portsrepo.AccountTxStore, accountID, side string) (*domain.Account, error) {
	account, err := store.FindAccountByIDForUpdate(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if side != "" {
				return nil, fmt.Errorf("%w: %s account %s", apperrors.ErrAccountNotFound, side, accountID)
			}
			return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to lock account %s: %w", accountID, err)
	}
	return account, nil
}
