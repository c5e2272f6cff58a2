package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/banking_ledger/internal/core/ports/services"
	"github.com/SscSPs/banking_ledger/internal/dto"
	"github.com/SscSPs/banking_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles deposits, withdrawals and transfers.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// RegisterTransactionRoutes registers routes that move money.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("/deposit", h.deposit)
		transactions.POST("/withdrawal", h.withdraw)
		transactions.POST("/transfer", h.transfer)
		transactions.GET("/:id", h.getTransaction)
	}
}

// deposit godoc
// @Summary Deposit into an account
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   deposit body dto.DepositRequest true "Deposit details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid amount or inactive account"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to deposit"
// @Router /transactions/deposit [post]
func (h *transactionHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	logger = logger.With(slog.String("account_id", req.AccountID), slog.String("amount", req.Amount.String()))
	txn, err := h.transactionService.Deposit(c.Request.Context(), req.AccountID, req.Amount, req.Description)
	if err != nil {
		respondWithError(c, logger, err, "Failed to deposit")
		return
	}

	logger.Info("Deposit recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// withdraw godoc
// @Summary Withdraw from an account
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   withdrawal body dto.WithdrawalRequest true "Withdrawal details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid amount, insufficient funds or inactive account"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to withdraw"
// @Router /transactions/withdrawal [post]
func (h *transactionHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	logger = logger.With(slog.String("account_id", req.AccountID), slog.String("amount", req.Amount.String()))
	txn, err := h.transactionService.Withdraw(c.Request.Context(), req.AccountID, req.Amount, req.Description)
	if err != nil {
		respondWithError(c, logger, err, "Failed to withdraw")
		return
	}

	logger.Info("Withdrawal recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// transfer godoc
// @Summary Transfer between two accounts
// @Description Debits the origin and credits the destination in one unit of work. Both legs are returned, debit first.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid amount, same account, insufficient funds or inactive account"
// @Failure 404 {object} map[string]string "Origin or destination not found"
// @Failure 409 {object} map[string]string "Concurrent update, retry"
// @Failure 500 {object} map[string]string "Failed to transfer"
// @Router /transactions/transfer [post]
func (h *transactionHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	logger = logger.With(
		slog.String("origin_account_id", req.OriginAccountID),
		slog.String("destination_account_id", req.DestinationAccountID),
		slog.String("amount", req.Amount.String()),
	)
	result, err := h.transactionService.Transfer(c.Request.Context(), req.OriginAccountID, req.DestinationAccountID, req.Amount, req.Description)
	if err != nil {
		respondWithError(c, logger, err, "Failed to transfer")
		return
	}

	logger.Info("Transfer recorded",
		slog.String("outgoing_transaction_id", result.Outgoing.TransactionID),
		slog.String("incoming_transaction_id", result.Incoming.TransactionID),
	)
	c.JSON(http.StatusCreated, dto.ToTransferResponse(result))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("transaction_id", transactionID)), err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
