package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/banking_ledger/internal/apperrors"
	"github.com/SscSPs/banking_ledger/internal/core/domain"
	"github.com/SscSPs/banking_ledger/internal/dto"
	"github.com/SscSPs/banking_ledger/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTransactionRouter(svc *MockTransactionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handlers.RegisterValidators()
	r := gin.New()
	handlers.RegisterTransactionRoutes(r.Group("/api/v1"), svc)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDeposit_Success(t *testing.T) {
	svc := new(MockTransactionService)
	r := newTransactionRouter(svc)
	txn := &domain.Transaction{
		TransactionID:    "txn-1",
		TransactionType:  domain.Deposit,
		Amount:           decimal.RequireFromString("100.5"),
		Description:      "Salary",
		OriginAccountID:  "acc-1",
		ResultingBalance: decimal.RequireFromString("150.5"),
		CreatedAt:        time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	svc.On("Deposit", mock.Anything, "acc-1", amountEq("100.50"), mock.MatchedBy(func(d *string) bool {
		return d != nil && *d == "Salary"
	})).Return(txn, nil).Once()

	w := postJSON(r, "/api/v1/transactions/deposit", `{"accountID":"acc-1","amount":"100.50","description":"Salary"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "100.50", resp.Amount)
	assert.Equal(t, "150.50", resp.ResultingBalance)
	assert.Equal(t, domain.Deposit, resp.TransactionType)
	svc.AssertExpectations(t)
}

func TestDeposit_NumericAmountWithoutDescription(t *testing.T) {
	svc := new(MockTransactionService)
	r := newTransactionRouter(svc)
	svc.On("Deposit", mock.Anything, "acc-1", amountEq("20"), (*string)(nil)).
		Return(&domain.Transaction{TransactionID: "txn-1", TransactionType: domain.Deposit, Description: "Deposit"}, nil).Once()

	w := postJSON(r, "/api/v1/transactions/deposit", `{"accountID":"acc-1","amount":20}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestMovement_RejectsInvalidAmountsBeforeService(t *testing.T) {
	svc := new(MockTransactionService)
	r := newTransactionRouter(svc)

	bodies := []string{
		`{"accountID":"acc-1"}`,
		`{"accountID":"acc-1","amount":"0"}`,
		`{"accountID":"acc-1","amount":"-10"}`,
		`{"accountID":"acc-1","amount":"10.001"}`,
		`{"amount":"10"}`,
		`not json`,
	}
	for _, body := range bodies {
		for _, path := range []string{"/api/v1/transactions/deposit", "/api/v1/transactions/withdrawal"} {
			w := postJSON(r, path, body)
			assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", path, body)
		}
	}

	longDescription := strings.Repeat("x", 201)
	w := postJSON(r, "/api/v1/transactions/deposit", `{"accountID":"acc-1","amount":"1","description":"`+longDescription+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.AssertNotCalled(t, "Deposit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "Withdraw", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdraw_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"insufficient funds", fmt.Errorf("%w: available 10.00, requested 50.00", apperrors.ErrInsufficientFunds), http.StatusBadRequest},
		{"not active", fmt.Errorf("%w: account 3300000001 is INACTIVE", apperrors.ErrAccountNotActive), http.StatusBadRequest},
		{"not found", apperrors.ErrAccountNotFound, http.StatusNotFound},
		{"storage", errors.New("failed to update balance"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockTransactionService)
			r := newTransactionRouter(svc)
			svc.On("Withdraw", mock.Anything, "acc-1", amountEq("50"), (*string)(nil)).Return(nil, tc.err).Once()

			w := postJSON(r, "/api/v1/transactions/withdrawal", `{"accountID":"acc-1","amount":"50"}`)

			assert.Equal(t, tc.status, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tc.status == http.StatusInternalServerError {
				assert.Equal(t, "Failed to withdraw", body["error"])
			} else {
				assert.Equal(t, tc.err.Error(), body["error"])
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestTransfer_Success(t *testing.T) {
	svc := new(MockTransactionService)
	r := newTransactionRouter(svc)
	origin, destination := "acc-1", "acc-2"
	result := &domain.TransferResult{
		Outgoing: domain.Transaction{
			TransactionID:        "txn-out",
			TransactionType:      domain.TransferOut,
			Amount:               decimal.RequireFromString("25"),
			OriginAccountID:      origin,
			DestinationAccountID: &destination,
			ResultingBalance:     decimal.RequireFromString("75"),
		},
		Incoming: domain.Transaction{
			TransactionID:        "txn-in",
			TransactionType:      domain.TransferIn,
			Amount:               decimal.RequireFromString("25"),
			OriginAccountID:      destination,
			DestinationAccountID: &origin,
			ResultingBalance:     decimal.RequireFromString("25"),
		},
	}
	svc.On("Transfer", mock.Anything, origin, destination, amountEq("25"), (*string)(nil)).Return(result, nil).Once()

	w := postJSON(r, "/api/v1/transactions/transfer", `{"originAccountID":"acc-1","destinationAccountID":"acc-2","amount":"25.00"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.TransferResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Transactions, 2)
	assert.Equal(t, domain.TransferOut, resp.Transactions[0].TransactionType)
	assert.Equal(t, domain.TransferIn, resp.Transactions[1].TransactionType)
	assert.Equal(t, "75.00", resp.Transactions[0].ResultingBalance)
	svc.AssertExpectations(t)
}

func TestTransfer_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"same account", fmt.Errorf("%w: acc-1", apperrors.ErrSameAccount), http.StatusBadRequest},
		{"destination missing", fmt.Errorf("%w: destination acc-2", apperrors.ErrAccountNotFound), http.StatusNotFound},
		{"serialization", fmt.Errorf("%w: could not serialize access", apperrors.ErrConflict), http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockTransactionService)
			r := newTransactionRouter(svc)
			svc.On("Transfer", mock.Anything, "acc-1", "acc-2", amountEq("5"), mock.Anything).Return(nil, tc.err).Once()

			w := postJSON(r, "/api/v1/transactions/transfer", `{"originAccountID":"acc-1","destinationAccountID":"acc-2","amount":"5"}`)

			assert.Equal(t, tc.status, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestGetTransaction(t *testing.T) {
	svc := new(MockTransactionService)
	r := newTransactionRouter(svc)
	svc.On("GetTransactionByID", mock.Anything, "txn-1").
		Return(&domain.Transaction{TransactionID: "txn-1", TransactionType: domain.Withdrawal, Amount: decimal.NewFromInt(3)}, nil).Once()
	svc.On("GetTransactionByID", mock.Anything, "nope").Return(nil, apperrors.ErrTransactionNotFound).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/transactions/txn-1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "3.00", resp.Amount)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/transactions/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertExpectations(t)
}
