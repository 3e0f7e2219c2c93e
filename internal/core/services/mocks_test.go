package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock ShareholderRepository ---
type MockShareholderRepository struct {
	mock.Mock
}

func (m *MockShareholderRepository) FindShareholderByID(ctx context.Context, tenantID, shareholderID string) (*domain.Shareholder, error) {
	args := m.Called(ctx, tenantID, shareholderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shareholder), args.Error(1)
}

func (m *MockShareholderRepository) ListShareholders(ctx context.Context, tenantID string) ([]domain.Shareholder, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shareholder), args.Error(1)
}

func (m *MockShareholderRepository) SaveShareholder(ctx context.Context, shareholder domain.Shareholder) error {
	return m.Called(ctx, shareholder).Error(0)
}

func (m *MockShareholderRepository) UpdateShareholder(ctx context.Context, shareholder domain.Shareholder) error {
	return m.Called(ctx, shareholder).Error(0)
}

func (m *MockShareholderRepository) DeactivateShareholder(ctx context.Context, tenantID, shareholderID string, expectedVersion int64, userID string, now time.Time) error {
	return m.Called(ctx, tenantID, shareholderID, expectedVersion, userID, now).Error(0)
}

func (m *MockShareholderRepository) DeleteShareholder(ctx context.Context, tenantID, shareholderID string) error {
	return m.Called(ctx, tenantID, shareholderID).Error(0)
}

// --- Mock ShareClassRepository ---
type MockShareClassRepository struct {
	mock.Mock
}

func (m *MockShareClassRepository) FindShareClass(ctx context.Context, tenantID, label string) (*domain.ShareClass, error) {
	args := m.Called(ctx, tenantID, label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShareClass), args.Error(1)
}

func (m *MockShareClassRepository) ListShareClasses(ctx context.Context, tenantID string) ([]domain.ShareClass, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShareClass), args.Error(1)
}

func (m *MockShareClassRepository) SaveShareClass(ctx context.Context, class domain.ShareClass) error {
	return m.Called(ctx, class).Error(0)
}

// --- Mock PositionRepository ---
type MockPositionRepository struct {
	mock.Mock
}

func (m *MockPositionRepository) ListActivePositions(ctx context.Context, tenantID string) ([]domain.SharePosition, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SharePosition), args.Error(1)
}

func (m *MockPositionRepository) ListActivePositionsByClass(ctx context.Context, tenantID, shareClass string) ([]domain.SharePosition, error) {
	args := m.Called(ctx, tenantID, shareClass)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SharePosition), args.Error(1)
}

func (m *MockPositionRepository) ListPositionsByShareholder(ctx context.Context, tenantID, shareholderID string) ([]domain.SharePosition, error) {
	args := m.Called(ctx, tenantID, shareholderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SharePosition), args.Error(1)
}

// --- Mock TenantRepository ---
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) ListTenantsByUserID(ctx context.Context, userID string) ([]domain.Tenant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant, creator domain.TenantMember) error {
	return m.Called(ctx, tenant, creator).Error(0)
}

func (m *MockTenantRepository) AddTenantMember(ctx context.Context, member domain.TenantMember) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockTenantRepository) FindTenantMember(ctx context.Context, userID, tenantID string) (*domain.TenantMember, error) {
	args := m.Called(ctx, userID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantMember), args.Error(1)
}
