package dto

import (
	"time"

	"github.com/SscSPs/banking_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	AccountType    domain.AccountType `json:"accountType" binding:"required,oneof=CHECKING SAVINGS"`
	InitialBalance decimal.Decimal    `json:"initialBalance" binding:"money"`
	FeeExempt      bool               `json:"feeExempt"`
	ClientID       string             `json:"clientID" binding:"required"`
}

// UpdateAccountStatusRequest defines the payload for a status change.
type UpdateAccountStatusRequest struct {
	Status domain.AccountStatus `json:"status" binding:"required,oneof=ACTIVE INACTIVE CANCELLED"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID     string               `json:"accountID"`
	AccountNumber string               `json:"accountNumber"`
	AccountType   domain.AccountType   `json:"accountType"`
	Status        domain.AccountStatus `json:"status"`
	Balance       string               `json:"balance"`
	FeeExempt     bool                 `json:"feeExempt"`
	ClientID      string               `json:"clientID"`
	CreatedAt     time.Time            `json:"createdAt"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
}

// AccountNumberResponse is returned when only a number is allocated.
type AccountNumberResponse struct {
	AccountType   domain.AccountType `json:"accountType"`
	AccountNumber string             `json:"accountNumber"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		AccountNumber: acc.AccountNumber,
		AccountType:   acc.AccountType,
		Status:        acc.Status,
		Balance:       acc.Balance.StringFixed(domain.MoneyScale),
		FeeExempt:     acc.FeeExempt,
		ClientID:      acc.ClientID,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
