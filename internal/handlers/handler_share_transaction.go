package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/share_register/internal/core/ports/services"
	"github.com/SscSPs/share_register/internal/dto"
	"github.com/SscSPs/share_register/internal/middleware"
	"github.com/gin-gonic/gin"
)

// shareTransactionHandler handles HTTP requests for the share ledger of a tenant.
type shareTransactionHandler struct {
	transactionService portssvc.ShareTransactionSvcFacade
}

func newShareTransactionHandler(svc portssvc.ShareTransactionSvcFacade) *shareTransactionHandler {
	return &shareTransactionHandler{transactionService: svc}
}

// RegisterShareTransactionRoutes registers ledger routes on a tenant-scoped group.
func RegisterShareTransactionRoutes(tenantGroup *gin.RouterGroup, svc portssvc.ShareTransactionSvcFacade) {
	h := newShareTransactionHandler(svc)

	txns := tenantGroup.Group("/share-transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/:transaction_id", h.getTransaction)
	}
}

// createTransaction godoc
// @Summary Register a share transaction
// @Description Validates an issuance, transfer, redemption or split and applies it to the ledger
// @Description and the position store in one step. Requires the MEMBER role.
// @Tags share-transactions
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   transaction body dto.CreateShareTransactionRequest true "Transaction"
// @Success 201 {object} dto.CreateShareTransactionResponse
// @Failure 400 {object} map[string]string "Transaction rejected by validation"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Shareholder or share class not found"
// @Failure 409 {object} map[string]string "Register changed concurrently, retry"
// @Failure 500 {object} map[string]string "Failed to register transaction"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/share-transactions [post]
func (h *shareTransactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var req dto.CreateShareTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err, "CreateShareTransaction")
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("tenant_id", tenantID), slog.String("type", string(req.Type)))
	logger.Info("Received share transaction",
		slog.Int64("share_number_from", req.ShareNumberFrom),
		slog.Int64("share_number_to", req.ShareNumberTo))

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondWithError(c, err, "Register share transaction")
		return
	}

	logger.Info("Share transaction registered", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToCreateShareTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List the share ledger
// @Description Lists ledger entries newest first. Pass nextToken from a previous page to continue.
// @Tags share-transactions
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListShareTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/share-transactions [get]
func (h *shareTransactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListShareTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindingError(c, err, "ListShareTransactions query")
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txns, nextToken, err := h.transactionService.ListTransactions(c.Request.Context(), c.Param("tenant_id"), userID, params)
	if err != nil {
		respondWithError(c, err, "List share transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ListShareTransactionsResponse{Transactions: txns, NextToken: nextToken})
}

// getTransaction godoc
// @Summary Get a ledger entry
// @Tags share-transactions
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   transaction_id path string true "Transaction ID"
// @Success 200 {object} domain.ShareTransaction
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/share-transactions/{transaction_id} [get]
func (h *shareTransactionHandler) getTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), c.Param("tenant_id"), c.Param("transaction_id"), userID)
	if err != nil {
		respondWithError(c, err, "Get share transaction")
		return
	}
	c.JSON(http.StatusOK, txn)
}
