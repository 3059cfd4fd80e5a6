package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"lifeos-finance/internal/dto"
	apierrors "lifeos-finance/internal/errors"
	"lifeos-finance/internal/models"
	"lifeos-finance/internal/repositories"
	"lifeos-finance/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction records a new transaction
//
// Method: POST /api/v1/transactions
//
// Success Response: 201 Created with the stored transaction
// Error Responses:
//   - 400: Malformed payload or validation failure
//   - 404: Referenced account or card not found
//   - 422: Business rule violation
//   - 500: Internal server error
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionService.CreateTransaction(services.CreateTransactionInput{
		Description:      req.Description,
		Amount:           decimal.NewFromFloat(req.Amount),
		Kind:             req.Kind,
		OccurredOn:       req.OccurredOn,
		Category:         req.Category,
		AccountID:        req.AccountID,
		CardID:           req.CardID,
		Shared:           req.Shared,
		InstallmentCount: req.InstallmentCount,
	})
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    transaction,
		Message: "Transaction created successfully",
	})
}

// GetTransaction retrieves a transaction by ID
//
// Method: GET /api/v1/transactions/:id
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid transaction id format"))
	}

	transaction, err := h.transactionService.GetTransaction(id)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: transaction,
	})
}

// ListRecentTransactions returns the most recently recorded transactions
//
// Method: GET /api/v1/transactions?limit=20
func (h *TransactionHandler) ListRecentTransactions(c echo.Context) error {
	limit := 20
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 || parsed > 200 {
			return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("limit must be between 1 and 200"))
		}
		limit = parsed
	}

	transactions, err := h.transactionService.GetRecentTransactions(limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: transactions,
		Meta: map[string]int{"count": len(transactions)},
	})
}

// MarkShared flags a transaction as a shared expense
//
// Method: POST /api/v1/transactions/:id/share
func (h *TransactionHandler) MarkShared(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid transaction id format"))
	}

	if err := h.transactionService.MarkShared(id); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Transaction marked as shared",
	})
}

// UnmarkShared removes the shared flag from a transaction
//
// Method: POST /api/v1/transactions/:id/unshare
func (h *TransactionHandler) UnmarkShared(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid transaction id format"))
	}

	if err := h.transactionService.UnmarkShared(id); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Transaction unmarked as shared",
	})
}

// BulkMarkShared flags several transactions as shared in one call
//
// Method: POST /api/v1/transactions/bulk-share
func (h *TransactionHandler) BulkMarkShared(c echo.Context) error {
	var req dto.BulkShareRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	result := h.transactionService.BulkMarkShared(req.TransactionIDs)

	status := http.StatusOK
	if !result.Succeeded() {
		status = http.StatusMultiStatus
	}

	return c.JSON(status, SuccessResponse{
		Data: result,
	})
}

// DeleteTransaction removes a transaction and its installment plan
//
// Method: DELETE /api/v1/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid transaction id format"))
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *TransactionHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repositories.ErrTransactionNotFound):
		return SendError(c, apierrors.TransactionNotFound)
	case errors.Is(err, repositories.ErrAccountNotFound):
		return SendError(c, apierrors.AccountNotFound)
	case errors.Is(err, repositories.ErrCardNotFound):
		return SendError(c, apierrors.CardNotFound)
	case errors.Is(err, models.ErrInvalidAmount):
		return SendError(c, apierrors.TransactionInvalidAmount)
	case errors.Is(err, models.ErrInvalidTransactionKind):
		return SendError(c, apierrors.TransactionInvalidKind)
	case errors.Is(err, models.ErrInvalidCategory):
		return SendError(c, apierrors.TransactionInvalidCategory)
	case errors.Is(err, models.ErrAmbiguousSource):
		return SendError(c, apierrors.TransactionAmbiguousSource)
	case errors.Is(err, models.ErrInvalidInstallmentCount), errors.Is(err, models.ErrInstallmentsNeedCard):
		return SendError(c, apierrors.TransactionInvalidInstallments)
	case errors.Is(err, models.ErrDescriptionRequired):
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails("description is required"))
	default:
		return SendSystemError(c, err)
	}
}
