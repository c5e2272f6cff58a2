package accounting

import (
	"fmt"

	"github.com/SscSPs/banking_ledger/internal/apperrors"
	"github.com/SscSPs/banking_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount returns the effect a record had on the balance of its origin account.
// Deposits and incoming transfer legs add, withdrawals and outgoing legs subtract.
func SignedAmount(txn domain.Transaction) (decimal.Decimal, error) {
	switch txn.TransactionType {
	case domain.Deposit, domain.TransferIn:
		return txn.Amount, nil
	case domain.Withdrawal, domain.TransferOut:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type '%s' for transaction %s", txn.TransactionType, txn.TransactionID)
	}
}

// ValidateTransferLegs checks that both legs of a transfer mirror each other and net to zero.
func ValidateTransferLegs(result domain.TransferResult) error {
	out, in := result.Outgoing, result.Incoming
	if out.TransactionType != domain.TransferOut || in.TransactionType != domain.TransferIn {
		return fmt.Errorf("%w: transfer legs have types %s and %s", apperrors.ErrInternal, out.TransactionType, in.TransactionType)
	}
	if out.DestinationAccountID == nil || in.DestinationAccountID == nil ||
		*out.DestinationAccountID != in.OriginAccountID || *in.DestinationAccountID != out.OriginAccountID {
		return fmt.Errorf("%w: transfer legs %s and %s do not reference each other", apperrors.ErrInternal, out.TransactionID, in.TransactionID)
	}

	outSigned, err := SignedAmount(out)
	if err != nil {
		return err
	}
	inSigned, err := SignedAmount(in)
	if err != nil {
		return err
	}
	if sum := outSigned.Add(inSigned); !sum.IsZero() {
		return fmt.Errorf("%w: transfer legs do not balance to zero: sum is %s", apperrors.ErrInternal, sum.String())
	}
	return nil
}

// ReplayBalance rebuilds the balance of accountID from opening by applying its own records
// (those it originated) oldest first. Each record's resulting balance must match the replay.
func ReplayBalance(accountID string, opening decimal.Decimal, oldestFirst []domain.Transaction) (decimal.Decimal, error) {
	balance := opening
	for _, txn := range oldestFirst {
		if txn.OriginAccountID != accountID {
			continue
		}
		signed, err := SignedAmount(txn)
		if err != nil {
			return decimal.Zero, err
		}
		balance = balance.Add(signed)
		if balance.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w after transaction %s", apperrors.ErrNegativeBalance, txn.TransactionID)
		}
		if !balance.Equal(txn.ResultingBalance) {
			return decimal.Zero, fmt.Errorf("%w: transaction %s records balance %s, replay gives %s",
				apperrors.ErrInternal, txn.TransactionID, txn.ResultingBalance.String(), balance.String())
		}
	}
	return balance, nil
}
