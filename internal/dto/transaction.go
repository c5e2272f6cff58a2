package dto

import (
	"time"

	"github.com/SscSPs/banking_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DepositRequest is the payload for deposits. Withdrawals use the same shape.
type DepositRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required,money"`
	Description *string         `json:"description" binding:"omitempty,max=200"`
}

// WithdrawalRequest is the payload for withdrawals.
type WithdrawalRequest = DepositRequest

// TransferRequest is the payload for a transfer between two accounts.
type TransferRequest struct {
	OriginAccountID      string          `json:"originAccountID" binding:"required"`
	DestinationAccountID string          `json:"destinationAccountID" binding:"required"`
	Amount               decimal.Decimal `json:"amount" binding:"required,money"`
	Description          *string         `json:"description" binding:"omitempty,max=200"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID        string                 `json:"transactionID"`
	TransactionType      domain.TransactionType `json:"transactionType"`
	Amount               string                 `json:"amount"`
	Description          string                 `json:"description"`
	OriginAccountID      string                 `json:"originAccountID"`
	DestinationAccountID *string                `json:"destinationAccountID,omitempty"`
	ResultingBalance     string                 `json:"resultingBalance"`
	CreatedAt            time.Time              `json:"createdAt"`
}

// TransferResponse lists both legs, debit side first.
type TransferResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        txn.TransactionID,
		TransactionType:      txn.TransactionType,
		Amount:               txn.Amount.StringFixed(domain.MoneyScale),
		Description:          txn.Description,
		OriginAccountID:      txn.OriginAccountID,
		DestinationAccountID: txn.DestinationAccountID,
		ResultingBalance:     txn.ResultingBalance.StringFixed(domain.MoneyScale),
		CreatedAt:            txn.CreatedAt,
	}
}

// ToTransactionResponseSlice converts transaction records for list endpoints.
func ToTransactionResponseSlice(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ToTransferResponse converts both legs of a transfer.
func ToTransferResponse(result *domain.TransferResult) TransferResponse {
	return TransferResponse{
		Transactions: []TransactionResponse{
			ToTransactionResponse(&result.Outgoing),
			ToTransactionResponse(&result.Incoming),
		},
	}
}
