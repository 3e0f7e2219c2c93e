package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/share_register/internal/core/domain"
	portssvc "github.com/SscSPs/share_register/internal/core/ports/services"
	"github.com/SscSPs/share_register/internal/dto"
	"github.com/SscSPs/share_register/internal/utils/export"
	"github.com/stretchr/testify/mock"
)

// --- Mock TenantService ---
type MockTenantService struct {
	mock.Mock
}

var _ portssvc.TenantSvcFacade = (*MockTenantService)(nil)

func (m *MockTenantService) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) ListUserTenants(ctx context.Context, userID string) ([]domain.Tenant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

func (m *MockTenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) AddTenantMember(ctx context.Context, addingUserID, tenantID string, req dto.AddTenantMemberRequest) (*domain.TenantMember, error) {
	args := m.Called(ctx, addingUserID, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantMember), args.Error(1)
}

func (m *MockTenantService) AuthorizeUserAction(ctx context.Context, userID, tenantID string, requiredRole domain.TenantRole) error {
	args := m.Called(ctx, userID, tenantID, requiredRole)
	return args.Error(0)
}

// --- Mock ShareholderService ---
type MockShareholderService struct {
	mock.Mock
}

var _ portssvc.ShareholderSvcFacade = (*MockShareholderService)(nil)

func (m *MockShareholderService) GetShareholder(ctx context.Context, tenantID, shareholderID, userID string) (*domain.Shareholder, error) {
	args := m.Called(ctx, tenantID, shareholderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shareholder), args.Error(1)
}

func (m *MockShareholderService) ListShareholders(ctx context.Context, tenantID, userID string) ([]domain.Shareholder, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shareholder), args.Error(1)
}

func (m *MockShareholderService) ListShareholderPositions(ctx context.Context, tenantID, shareholderID, userID string) ([]domain.SharePosition, error) {
	args := m.Called(ctx, tenantID, shareholderID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SharePosition), args.Error(1)
}

func (m *MockShareholderService) CreateShareholder(ctx context.Context, tenantID string, req dto.CreateShareholderRequest, userID string) (*domain.Shareholder, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shareholder), args.Error(1)
}

func (m *MockShareholderService) UpdateShareholder(ctx context.Context, tenantID, shareholderID string, req dto.UpdateShareholderRequest, userID string) (*domain.Shareholder, error) {
	args := m.Called(ctx, tenantID, shareholderID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shareholder), args.Error(1)
}

func (m *MockShareholderService) DeleteShareholder(ctx context.Context, tenantID, shareholderID, userID string) (portssvc.DeleteOutcome, error) {
	args := m.Called(ctx, tenantID, shareholderID, userID)
	return args.Get(0).(portssvc.DeleteOutcome), args.Error(1)
}

// --- Mock ShareTransactionService ---
type MockShareTransactionService struct {
	mock.Mock
}

var _ portssvc.ShareTransactionSvcFacade = (*MockShareTransactionService)(nil)

func (m *MockShareTransactionService) GetTransaction(ctx context.Context, tenantID, transactionID, userID string) (*domain.ShareTransaction, error) {
	args := m.Called(ctx, tenantID, transactionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShareTransaction), args.Error(1)
}

func (m *MockShareTransactionService) ListTransactions(ctx context.Context, tenantID, userID string, params dto.ListShareTransactionsParams) ([]domain.ShareTransaction, *string, error) {
	args := m.Called(ctx, tenantID, userID, params)
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.ShareTransaction), token, args.Error(2)
}

func (m *MockShareTransactionService) CreateTransaction(ctx context.Context, tenantID string, req dto.CreateShareTransactionRequest, userID string) (*domain.ShareTransaction, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShareTransaction), args.Error(1)
}

// --- Mock CapTableService ---
type MockCapTableService struct {
	mock.Mock
}

var _ portssvc.CapTableSvcFacade = (*MockCapTableService)(nil)

func (m *MockCapTableService) GetCapTable(ctx context.Context, tenantID string, asOf *time.Time, userID string) (*domain.CapTableSummary, error) {
	args := m.Called(ctx, tenantID, asOf, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CapTableSummary), args.Error(1)
}

func (m *MockCapTableService) ExportCapTable(ctx context.Context, tenantID string, format export.Format, userID string) ([]byte, error) {
	args := m.Called(ctx, tenantID, format, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCapTableService) VerifyRegister(ctx context.Context, tenantID, userID string) (*domain.RegisterVerification, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegisterVerification), args.Error(1)
}

// --- Mock ShareClassService ---
type MockShareClassService struct {
	mock.Mock
}

var _ portssvc.ShareClassSvcFacade = (*MockShareClassService)(nil)

func (m *MockShareClassService) DefineShareClass(ctx context.Context, tenantID string, req dto.CreateShareClassRequest, userID string) (*domain.ShareClass, error) {
	args := m.Called(ctx, tenantID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShareClass), args.Error(1)
}

func (m *MockShareClassService) ListShareClasses(ctx context.Context, tenantID, userID string) ([]domain.ShareClass, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShareClass), args.Error(1)
}

func (m *MockShareClassService) GetShareClass(ctx context.Context, tenantID, label, userID string) (*domain.ShareClass, error) {
	args := m.Called(ctx, tenantID, label, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShareClass), args.Error(1)
}
