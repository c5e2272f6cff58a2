package domain

import (
	"fmt"

	"github.com/SscSPs/banking_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places kept for balances and amounts.
const MoneyScale int32 = 2

// AccountType defines the product type of an account.
type AccountType string

const (
	Checking AccountType = "CHECKING"
	Savings  AccountType = "SAVINGS"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	return t == Checking || t == Savings
}

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	Active    AccountStatus = "ACTIVE"
	Inactive  AccountStatus = "INACTIVE"
	Cancelled AccountStatus = "CANCELLED"
)

// Valid reports whether s is a known status.
func (s AccountStatus) Valid() bool {
	return s == Active || s == Inactive || s == Cancelled
}

// Account represents a client's bank account within the core domain.
// Balance is never negative.
type Account struct {
	AccountID     string          `json:"accountID"`
	AccountNumber string          `json:"accountNumber"`
	AccountType   AccountType     `json:"accountType"`
	Status        AccountStatus   `json:"status"`
	Balance       decimal.Decimal `json:"balance"`
	FeeExempt     bool            `json:"feeExempt"`
	ClientID      string          `json:"clientID"` // FK -> clients.client_id
	AuditFields
}

// NormalizeAmount rounds an amount to the ledger scale.
func NormalizeAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyScale)
}

// ValidateAmount rejects amounts that are not strictly positive once normalized.
func ValidateAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	normalized := NormalizeAmount(amount)
	if !normalized.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w (got %s)", apperrors.ErrInvalidAmount, amount.String())
	}
	return normalized, nil
}

// IsActive reports whether the account accepts movements.
func (a *Account) IsActive() bool {
	return a.Status == Active
}

// Credit adds amount to the balance. There is no upper bound.
func (a *Account) Credit(amount decimal.Decimal) error {
	normalized, err := ValidateAmount(amount)
	if err != nil {
		return err
	}
	a.Balance = a.Balance.Add(normalized)
	return nil
}

// Debit subtracts amount from the balance. The check runs on every debit and for
// every account type; on failure the balance is left untouched.
func (a *Account) Debit(amount decimal.Decimal) error {
	normalized, err := ValidateAmount(amount)
	if err != nil {
		return err
	}
	candidate := a.Balance.Sub(normalized)
	if candidate.IsNegative() {
		return fmt.Errorf("%w: available %s, requested %s",
			apperrors.ErrInsufficientFunds, a.Balance.StringFixed(MoneyScale), normalized.StringFixed(MoneyScale))
	}
	a.Balance = candidate
	return nil
}

// CanCancel reports whether the balance is exactly zero.
func (a *Account) CanCancel() bool {
	return a.Balance.IsZero()
}

// CanDelete reports whether the account may be removed from the store.
func (a *Account) CanDelete() bool {
	return a.Status == Cancelled && a.Balance.IsZero()
}

// SetStatus applies a status transition.
// ACTIVE and INACTIVE switch freely, CANCELLED needs a zero balance and is terminal.
func (a *Account) SetStatus(next AccountStatus) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidStatusChange, next)
	}
	if a.Status == Cancelled {
		if next == Cancelled {
			return nil
		}
		return fmt.Errorf("%w: account %s is cancelled", apperrors.ErrInvalidStatusChange, a.AccountNumber)
	}
	if next == Cancelled && !a.CanCancel() {
		return fmt.Errorf("%w: current balance %s", apperrors.ErrAccountNotCancellable, a.Balance.StringFixed(MoneyScale))
	}
	a.Status = next
	return nil
}
