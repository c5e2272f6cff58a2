package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/banking_ledger/internal/apperrors"
)

// AccountNumberSuffixWidth is the fixed width of the sequential part of an account number.
const AccountNumberSuffixWidth = 8

var accountNumberPrefixes = map[AccountType]string{
	Checking: "33",
	Savings:  "53",
}

// AccountNumberPrefix returns the fixed prefix for an account type.
func AccountNumberPrefix(t AccountType) (string, error) {
	prefix, ok := accountNumberPrefixes[t]
	if !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidAccountType, t)
	}
	return prefix, nil
}

// FormatAccountNumber renders prefix + zero padded sequence.
func FormatAccountNumber(t AccountType, sequence int64) (string, error) {
	prefix, err := AccountNumberPrefix(t)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%0*d", prefix, AccountNumberSuffixWidth, sequence), nil
}

// NextAccountNumber derives the number following last for type t. A nil last means
// no account of that type exists yet and the sequence starts at 1.
// A stored number that does not parse is a data integrity failure.
func NextAccountNumber(t AccountType, last *string) (string, error) {
	prefix, err := AccountNumberPrefix(t)
	if err != nil {
		return "", err
	}
	if last == nil || *last == "" {
		return FormatAccountNumber(t, 1)
	}

	suffix, found := strings.CutPrefix(*last, prefix)
	if !found || len(suffix) != AccountNumberSuffixWidth {
		return "", fmt.Errorf("%w: %q", apperrors.ErrAccountNumberIntegrity, *last)
	}
	sequence, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || sequence < 0 {
		return "", fmt.Errorf("%w: %q", apperrors.ErrAccountNumberIntegrity, *last)
	}
	return FormatAccountNumber(t, sequence+1)
}
