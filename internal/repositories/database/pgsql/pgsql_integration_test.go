//go:build integration

package pgsql

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/banking_ledger/internal/apperrors"
	"github.com/SscSPs/banking_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/banking_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/banking_ledger/internal/core/ports/services"
	"github.com/SscSPs/banking_ledger/internal/core/services"
	"github.com/SscSPs/banking_ledger/internal/dto"
	"github.com/SscSPs/banking_ledger/internal/platform/config"
	"github.com/SscSPs/banking_ledger/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type LedgerIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	repos     portsrepo.RepositoryProvider
	svc       *portssvc.ServiceContainer
}

func (s *LedgerIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcpostgres.Run(s.ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("ledger"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	migrationsDir, err := filepath.Abs("../../../../migrations")
	s.Require().NoError(err)
	s.Require().NoError(database.RunMigrations(dsn, "file://"+migrationsDir, slog.Default()))

	s.pool, err = database.NewPgxPool(s.ctx, dsn, 10*time.Second)
	s.Require().NoError(err)

	s.repos = NewRepositoryProvider(s.pool)
	s.svc = services.NewServiceContainer(&config.Config{AccountNumberMaxRetries: 3}, s.repos)
}

func (s *LedgerIntegrationSuite) TearDownSuite() {
	database.ClosePgxPool(s.pool)
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(s.ctx))
	}
}

func (s *LedgerIntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE transactions, accounts, clients;`)
	s.Require().NoError(err)

	now := time.Now().UTC()
	for i := 1; i <= 2; i++ {
		err := s.repos.ClientRepo.SaveClient(s.ctx, domain.Client{
			ClientID:             fmt.Sprintf("client-%d", i),
			IdentificationType:   "CC",
			IdentificationNumber: fmt.Sprintf("10000%d", i),
			FirstName:            "Ana",
			LastName:             "Ruiz",
			Email:                fmt.Sprintf("ana%d@example.com", i),
			AuditFields:          domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		})
		s.Require().NoError(err)
	}
}

func (s *LedgerIntegrationSuite) open(accountType domain.AccountType, initial string) *domain.Account {
	acc, err := s.svc.Account.CreateAccount(s.ctx, dto.CreateAccountRequest{
		AccountType:    accountType,
		InitialBalance: decimal.RequireFromString(initial),
		ClientID:       "client-1",
	})
	s.Require().NoError(err)
	return acc
}

func (s *LedgerIntegrationSuite) balanceOf(accountID string) decimal.Decimal {
	acc, err := s.repos.AccountRepo.FindAccountByID(s.ctx, accountID)
	s.Require().NoError(err)
	return acc.Balance
}

func (s *LedgerIntegrationSuite) TestAccountNumbersAreSequentialPerType() {
	s.Equal("3300000001", s.open(domain.Checking, "0").AccountNumber)
	s.Equal("3300000002", s.open(domain.Checking, "0").AccountNumber)
	s.Equal("5300000001", s.open(domain.Savings, "0").AccountNumber)

	byNumber, err := s.repos.AccountRepo.FindAccountByNumber(s.ctx, "3300000002")
	s.Require().NoError(err)
	s.Equal(domain.Checking, byNumber.AccountType)
}

func (s *LedgerIntegrationSuite) TestConcurrentCreatesNeverCollide() {
	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.svc.Account.CreateAccount(s.ctx, dto.CreateAccountRequest{
				AccountType: domain.Savings,
				ClientID:    "client-2",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.NoError(err)
	}

	accounts, err := s.repos.AccountRepo.ListAccountsByClient(s.ctx, "client-2")
	s.Require().NoError(err)
	s.Require().Len(accounts, workers)
	for i, acc := range accounts {
		s.Equal(fmt.Sprintf("53%08d", i+1), acc.AccountNumber)
	}
}

func (s *LedgerIntegrationSuite) TestCreateAccount_UnknownClient() {
	_, err := s.svc.Account.CreateAccount(s.ctx, dto.CreateAccountRequest{AccountType: domain.Checking, ClientID: "ghost"})
	s.ErrorIs(err, apperrors.ErrClientNotFound)
}

func (s *LedgerIntegrationSuite) TestDepositWithdrawAndHistory() {
	acc := s.open(domain.Checking, "1000")

	dep, err := s.svc.Transaction.Deposit(s.ctx, acc.AccountID, decimal.RequireFromString("250"), nil)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("1250").Equal(dep.ResultingBalance))
	s.False(dep.CreatedAt.IsZero())

	_, err = s.svc.Transaction.Withdraw(s.ctx, acc.AccountID, decimal.RequireFromString("1000000"), nil)
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)

	wd, err := s.svc.Transaction.Withdraw(s.ctx, acc.AccountID, decimal.RequireFromString("0.25"), nil)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("1249.75").Equal(wd.ResultingBalance))
	s.True(decimal.RequireFromString("1249.75").Equal(s.balanceOf(acc.AccountID)))

	history, err := s.svc.Transaction.GetAccountHistory(s.ctx, acc.AccountID)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal(domain.Withdrawal, history[0].TransactionType)
	s.Equal(domain.Deposit, history[1].TransactionType)

	found, err := s.repos.TransactionRepo.FindTransactionByID(s.ctx, dep.TransactionID)
	s.Require().NoError(err)
	s.Equal("Deposit", found.Description)
}

func (s *LedgerIntegrationSuite) TestTransferScenario() {
	a := s.open(domain.Checking, "100000")
	b := s.open(domain.Savings, "50000")

	result, err := s.svc.Transaction.Transfer(s.ctx, a.AccountID, b.AccountID, decimal.RequireFromString("50.00"), nil)
	s.Require().NoError(err)

	s.True(decimal.RequireFromString("99950.00").Equal(s.balanceOf(a.AccountID)))
	s.True(decimal.RequireFromString("50050.00").Equal(s.balanceOf(b.AccountID)))
	s.True(decimal.RequireFromString("99950").Equal(result.Outgoing.ResultingBalance))
	s.True(decimal.RequireFromString("50050").Equal(result.Incoming.ResultingBalance))

	historyB, err := s.svc.Transaction.GetAccountHistory(s.ctx, b.AccountID)
	s.Require().NoError(err)
	s.Len(historyB, 2)
	s.Equal(domain.TransferIn, historyB[0].TransactionType)
}

func (s *LedgerIntegrationSuite) TestConcurrentOpposingTransfersConserveMoney() {
	a := s.open(domain.Checking, "1000")
	b := s.open(domain.Checking, "1000")

	const workers = 40
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			from, to := a.AccountID, b.AccountID
			if i%2 == 1 {
				from, to = to, from
			}
			_, err := s.svc.Transaction.Transfer(s.ctx, from, to, decimal.RequireFromString("5"), nil)
			s.NoError(err)
		}(i)
	}
	wg.Wait()

	total := s.balanceOf(a.AccountID).Add(s.balanceOf(b.AccountID))
	s.True(decimal.RequireFromString("2000").Equal(total))
}

func (s *LedgerIntegrationSuite) TestCancelAndDelete() {
	acc := s.open(domain.Savings, "10")

	_, err := s.svc.Account.CancelAccount(s.ctx, acc.AccountID)
	s.ErrorIs(err, apperrors.ErrAccountNotCancellable)

	_, err = s.svc.Transaction.Withdraw(s.ctx, acc.AccountID, decimal.RequireFromString("10"), nil)
	s.Require().NoError(err)
	_, err = s.svc.Account.CancelAccount(s.ctx, acc.AccountID)
	s.Require().NoError(err)
	s.Require().NoError(s.svc.Account.DeleteAccount(s.ctx, acc.AccountID))

	_, err = s.repos.AccountRepo.FindAccountByID(s.ctx, acc.AccountID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerIntegrationSuite) TestBalanceCheckConstraintBacksTheLedger() {
	acc := s.open(domain.Checking, "1")

	err := s.repos.TxManager.WithinTx(s.ctx, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
		locked, err := store.FindAccountByIDForUpdate(ctx, acc.AccountID)
		if err != nil {
			return err
		}
		locked.Balance = decimal.RequireFromString("-1")
		return store.UpdateAccount(ctx, *locked)
	})
	s.ErrorIs(err, apperrors.ErrNegativeBalance)
	s.True(decimal.RequireFromString("1").Equal(s.balanceOf(acc.AccountID)))
}

func TestLedgerIntegrationSuite(t *testing.T) {
	suite.Run(t, new(LedgerIntegrationSuite))
}
