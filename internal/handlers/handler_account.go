package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/banking_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/banking_ledger/internal/core/ports/services"
	"github.com/SscSPs/banking_ledger/internal/dto"
	"github.com/SscSPs/banking_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService     portssvc.AccountSvcFacade
	transactionService portssvc.HistorySvc
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, hs portssvc.HistorySvc) *accountHandler {
	return &accountHandler{
		accountService:     as,
		transactionService: hs,
	}
}

// RegisterAccountRoutes registers routes related to accounts and their clients.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, historyService portssvc.HistorySvc) {
	h := newAccountHandler(accountService, historyService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("/numbers/next", h.allocateAccountNumber)
		accounts.GET("/by-number/:number", h.getAccountByNumber)
		accounts.GET("/:id", h.getAccount)
		accounts.PATCH("/:id/status", h.updateAccountStatus)
		accounts.POST("/:id/cancel", h.cancelAccount)
		accounts.DELETE("/:id", h.deleteAccount)
		accounts.GET("/:id/transactions", h.getAccountHistory)
	}

	rg.GET("/clients/:clientID/accounts", h.listAccountsByClient)
}

// createAccount godoc
// @Summary Open a new account
// @Description Opens an account of the given type for an existing client. The account number is allocated by the ledger.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 409 {object} map[string]string "Account number could not be allocated"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	logger = logger.With(slog.String("client_id", req.ClientID), slog.String("account_type", string(req.AccountType)))
	logger.Info("Received request to create account")

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", account.AccountID), slog.String("account_number", account.AccountNumber))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// allocateAccountNumber godoc
// @Summary Preview the next account number
// @Description Returns the next number the ledger would assign for an account type. Nothing is reserved.
// @Tags accounts
// @Produce  json
// @Param   type query string true "Account type" Enums(CHECKING, SAVINGS)
// @Success 200 {object} dto.AccountNumberResponse
// @Failure 400 {object} map[string]string "Unknown account type"
// @Failure 500 {object} map[string]string "Failed to allocate account number"
// @Router /accounts/numbers/next [get]
func (h *accountHandler) allocateAccountNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountType := domain.AccountType(c.Query("type"))

	number, err := h.accountService.AllocateAccountNumber(c.Request.Context(), accountType)
	if err != nil {
		respondWithError(c, logger, err, "Failed to allocate account number")
		return
	}

	c.JSON(http.StatusOK, dto.AccountNumberResponse{AccountType: accountType, AccountNumber: number})
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves details for a specific account by its ID
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")
	logger = logger.With(slog.String("target_account_id", accountID))

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getAccountByNumber godoc
// @Summary Get an account by number
// @Tags accounts
// @Produce  json
// @Param   number path string true "Account number"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Router /accounts/by-number/{number} [get]
func (h *accountHandler) getAccountByNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number := c.Param("number")

	account, err := h.accountService.GetAccountByNumber(c.Request.Context(), number)
	if err != nil {
		respondWithError(c, logger.With(slog.String("account_number", number)), err, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccountsByClient godoc
// @Summary List the accounts of a client
// @Tags accounts
// @Produce  json
// @Param   clientID path string true "Client ID"
// @Success 200 {array} dto.AccountResponse
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /clients/{clientID}/accounts [get]
func (h *accountHandler) listAccountsByClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")
	logger = logger.With(slog.String("client_id", clientID))

	accounts, err := h.accountService.ListAccountsByClient(c.Request.Context(), clientID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list accounts")
		return
	}

	logger.Info("Accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// updateAccountStatus godoc
// @Summary Change the status of an account
// @Description ACTIVE and INACTIVE switch freely. CANCELLED requires a zero balance and is final.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   status body dto.UpdateAccountStatusRequest true "New status"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid transition"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to update account status"
// @Router /accounts/{id}/status [patch]
func (h *accountHandler) updateAccountStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")
	logger = logger.With(slog.String("target_account_id", accountID))

	var req dto.UpdateAccountStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	account, err := h.accountService.SetAccountStatus(c.Request.Context(), accountID, req.Status)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update account status")
		return
	}

	logger.Info("Account status updated", slog.String("status", string(account.Status)))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// cancelAccount godoc
// @Summary Cancel an account
// @Description Cancels an account whose balance is zero.
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Balance is not zero"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to cancel account"
// @Router /accounts/{id}/cancel [post]
func (h *accountHandler) cancelAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")
	logger = logger.With(slog.String("target_account_id", accountID))

	account, err := h.accountService.CancelAccount(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to cancel account")
		return
	}

	logger.Info("Account cancelled")
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Removes a cancelled account with zero balance. Its transaction history is kept.
// @Tags accounts
// @Param   id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Account cannot be deleted"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to delete account"
// @Router /accounts/{id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")
	logger = logger.With(slog.String("target_account_id", accountID))

	if err := h.accountService.DeleteAccount(c.Request.Context(), accountID); err != nil {
		respondWithError(c, logger, err, "Failed to delete account")
		return
	}

	logger.Info("Account deleted")
	c.Status(http.StatusNoContent)
}

// getAccountHistory godoc
// @Summary List the transactions of an account
// @Description Returns every record where the account is origin or destination, newest first.
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve history"
// @Router /accounts/{id}/transactions [get]
func (h *accountHandler) getAccountHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")
	logger = logger.With(slog.String("target_account_id", accountID))

	history, err := h.transactionService.GetAccountHistory(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve history")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponseSlice(history))
}
