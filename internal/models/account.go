package models

import (
	"github.com/shopspring/decimal"
)

// AccountType is the product type stored in accounts.account_type.
type AccountType string

const (
	Checking AccountType = "CHECKING"
	Savings  AccountType = "SAVINGS"
)

// AccountStatus is stored in accounts.status.
type AccountStatus string

const (
	Active    AccountStatus = "ACTIVE"
	Inactive  AccountStatus = "INACTIVE"
	Cancelled AccountStatus = "CANCELLED"
)

// Account is a row of the accounts table.
type Account struct {
	AccountID     string          `db:"account_id"`
	AccountNumber string          `db:"account_number"` // unique
	AccountType   AccountType     `db:"account_type"`
	Status        AccountStatus   `db:"status"`
	Balance       decimal.Decimal `db:"balance"` // numeric(15,2), CHECK >= 0
	FeeExempt     bool            `db:"fee_exempt"`
	ClientID      string          `db:"client_id"` // FK -> clients.client_id
	AuditFields
}
