package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/SscSPs/banking_ledger/internal/apperrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ledger operation names used as the "operation" label.
const (
	OpCreateAccount    = "create_account"
	OpSetAccountStatus = "set_account_status"
	OpDeleteAccount    = "delete_account"
	OpDeposit          = "deposit"
	OpWithdraw         = "withdraw"
	OpTransfer         = "transfer"
)

// Outcome label values.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeNotFound = "not_found"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

var (
	ledgerOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_operations_total",
		Help: "Ledger operations processed, labeled by outcome",
	}, []string{"operation", "outcome"})

	accountNumberRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_account_number_retries_total",
		Help: "Account creations retried after an account number collision",
	}, []string{"account_type"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_http_requests_total",
		Help: "Total HTTP requests processed, labeled by status code",
	}, []string{"method", "endpoint", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ledger_http_request_duration_seconds",
		Help:    "Latency distribution of HTTP requests",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "endpoint"})
)

// Outcome classifies an operation result for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, apperrors.ErrInternal):
		return OutcomeError
	case errors.Is(err, apperrors.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, apperrors.ErrValidation):
		return OutcomeRejected
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		return OutcomeConflict
	default:
		return OutcomeError
	}
}

// ObserveOperation counts one ledger operation.
func ObserveOperation(operation string, err error) {
	ledgerOperationsTotal.WithLabelValues(operation, Outcome(err)).Inc()
}

// ObserveAccountNumberRetry counts a collision retry during account creation.
func ObserveAccountNumberRetry(accountType string) {
	accountNumberRetriesTotal.WithLabelValues(accountType).Inc()
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, endpoint string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}
