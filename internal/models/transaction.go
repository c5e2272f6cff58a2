package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is stored in transactions.transaction_type.
type TransactionType string

const (
	Deposit     TransactionType = "DEPOSIT"
	Withdrawal  TransactionType = "WITHDRAWAL"
	TransferOut TransactionType = "TRANSFER_OUT"
	TransferIn  TransactionType = "TRANSFER_IN"
)

// Transaction is a row of the append-only transactions table.
type Transaction struct {
	TransactionID        string          `db:"transaction_id"`
	EntrySeq             int64           `db:"entry_seq"` // insertion order, breaks created_at ties
	TransactionType      TransactionType `db:"transaction_type"`
	Amount               decimal.Decimal `db:"amount"`
	Description          string          `db:"description"`
	OriginAccountID      string          `db:"origin_account_id"`
	DestinationAccountID *string         `db:"destination_account_id"` // Nullable
	ResultingBalance     decimal.Decimal `db:"resulting_balance"`
	CreatedAt            time.Time       `db:"created_at"`
}
