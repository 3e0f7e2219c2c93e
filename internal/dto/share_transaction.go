package dto

import (
	"time"

	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateShareTransactionRequest is the input of createTransaction.
// Range and count consistency are checked by the service so that failures surface in a fixed order.
type CreateShareTransactionRequest struct {
	Type              domain.ShareTransactionType `json:"type" binding:"required,sharetxtype"`
	TransactionDate   time.Time                   `json:"transactionDate" binding:"required"`
	Description       string                      `json:"description"`
	FromShareholderID *string                     `json:"fromShareholderId"`
	ToShareholderID   string                      `json:"toShareholderId" binding:"required"`
	ShareClass        string                      `json:"shareClass"`
	NumberOfShares    int64                       `json:"numberOfShares"`
	ShareNumberFrom   int64                       `json:"shareNumberFrom"`
	ShareNumberTo     int64                       `json:"shareNumberTo"`
	PricePerShare     *decimal.Decimal            `json:"pricePerShare" binding:"omitempty,decimalgte0"`
	TotalAmount       *decimal.Decimal            `json:"totalAmount" binding:"omitempty,decimalgte0"`
	DecisionID        *string                     `json:"decisionId"`
	MeetingID         *string                     `json:"meetingId"`
}

// CreateShareTransactionResponse is the result of createTransaction.
type CreateShareTransactionResponse struct {
	ID             string                      `json:"id"`
	Type           domain.ShareTransactionType `json:"type"`
	NumberOfShares int64                       `json:"numberOfShares"`
	ShareClass     string                      `json:"shareClass"`
}

// ToCreateShareTransactionResponse converts a stored ledger entry to the create result.
func ToCreateShareTransactionResponse(t *domain.ShareTransaction) CreateShareTransactionResponse {
	return CreateShareTransactionResponse{
		ID:             t.TransactionID,
		Type:           t.Type,
		NumberOfShares: t.NumberOfShares,
		ShareClass:     t.ShareClass,
	}
}

// ListShareTransactionsParams defines query parameters for listing the ledger.
type ListShareTransactionsParams struct {
	Limit     int     `form:"limit,default=50" binding:"min=0,max=500"`
	NextToken *string `form:"nextToken"`
}

// ListShareTransactionsResponse wraps one page of ledger entries.
type ListShareTransactionsResponse struct {
	Transactions []domain.ShareTransaction `json:"transactions"`
	NextToken    *string                   `json:"nextToken,omitempty"`
}
