package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind of balance movement a transaction records.
type TransactionType string

const (
	Deposit     TransactionType = "DEPOSIT"
	Withdrawal  TransactionType = "WITHDRAWAL"
	TransferOut TransactionType = "TRANSFER_OUT"
	TransferIn  TransactionType = "TRANSFER_IN"
)

// Transaction is an immutable record of one movement against its origin account.
// It is written once and never updated or deleted.
type Transaction struct {
	TransactionID        string          `json:"transactionID"`
	TransactionType      TransactionType `json:"transactionType"`
	Amount               decimal.Decimal `json:"amount"`
	Description          string          `json:"description"`
	OriginAccountID      string          `json:"originAccountID"`                // always set
	DestinationAccountID *string         `json:"destinationAccountID,omitempty"` // transfer legs only
	ResultingBalance     decimal.Decimal `json:"resultingBalance"`               // origin balance right after this movement
	CreatedAt            time.Time       `json:"createdAt"`
}

// IsTransferLeg reports whether the record is one side of a transfer.
func (t Transaction) IsTransferLeg() bool {
	return t.TransactionType == TransferOut || t.TransactionType == TransferIn
}

// TransferResult holds both legs of a transfer, debit side first.
type TransferResult struct {
	Outgoing Transaction `json:"outgoing"`
	Incoming Transaction `json:"incoming"`
}
