package mapping

import (
	"github.com/SscSPs/banking_ledger/internal/core/domain"
	"github.com/SscSPs/banking_ledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// EntrySeq is assigned by the database.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:        d.TransactionID,
		TransactionType:      models.TransactionType(d.TransactionType),
		Amount:               d.Amount,
		Description:          d.Description,
		OriginAccountID:      d.OriginAccountID,
		DestinationAccountID: d.DestinationAccountID,
		ResultingBalance:     d.ResultingBalance,
		CreatedAt:            d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:        m.TransactionID,
		TransactionType:      domain.TransactionType(m.TransactionType),
		Amount:               m.Amount,
		Description:          m.Description,
		OriginAccountID:      m.OriginAccountID,
		DestinationAccountID: m.DestinationAccountID,
		ResultingBalance:     m.ResultingBalance,
		CreatedAt:            m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
