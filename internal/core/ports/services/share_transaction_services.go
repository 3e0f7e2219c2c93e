package services

import (
	"context"

	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/SscSPs/share_register/internal/dto"
)

// TransactionValidatorSvc turns a proposed ledger entry into a plan of position changes.
type TransactionValidatorSvc interface {
	// Validate runs the ordered checks against current state and returns the plan. It never writes.
	Validate(ctx context.Context, txn domain.ShareTransaction) (domain.PositionPlan, error)
}

// ShareTransactionReaderSvc defines read operations on the ledger
type ShareTransactionReaderSvc interface {
	GetTransaction(ctx context.Context, tenantID, transactionID, userID string) (*domain.ShareTransaction, error)
	ListTransactions(ctx context.Context, tenantID, userID string, params dto.ListShareTransactionsParams) ([]domain.ShareTransaction, *string, error)
}

// ShareTransactionWriterSvc defines the register-changing operation
type ShareTransactionWriterSvc interface {
	// CreateTransaction validates the input and applies it atomically to the ledger and the position store.
	CreateTransaction(ctx context.Context, tenantID string, req dto.CreateShareTransactionRequest, userID string) (*domain.ShareTransaction, error)
}

// ShareTransactionSvcFacade combines all ledger service interfaces
type ShareTransactionSvcFacade interface {
	ShareTransactionReaderSvc
	ShareTransactionWriterSvc
}
