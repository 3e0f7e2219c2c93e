package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/core/domain"
	portssvc "github.com/SscSPs/share_register/internal/core/ports/services"
	"github.com/SscSPs/share_register/internal/dto"
	"github.com/SscSPs/share_register/internal/handlers"
	"github.com/SscSPs/share_register/internal/platform/config"
	"github.com/SscSPs/share_register/internal/utils/export"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type HandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	jwtSecret      string
	tenantSvc      *MockTenantService
	shareholderSvc *MockShareholderService
	shareClassSvc  *MockShareClassService
	transactionSvc *MockShareTransactionService
	capTableSvc    *MockCapTableService
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) SetupSuite() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	suite.Require().True(ok)
	suite.Require().NoError(dto.RegisterValidators(v))
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.tenantSvc = new(MockTenantService)
	suite.shareholderSvc = new(MockShareholderService)
	suite.shareClassSvc = new(MockShareClassService)
	suite.transactionSvc = new(MockShareTransactionService)
	suite.capTableSvc = new(MockCapTableService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		RateLimit:    "1000-M",
		IsProduction: true,
	}
	err := handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Tenant:           suite.tenantSvc,
		Shareholder:      suite.shareholderSvc,
		ShareClass:       suite.shareClassSvc,
		ShareTransaction: suite.transactionSvc,
		CapTable:         suite.capTableSvc,
	})
	suite.Require().NoError(err)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.tenantSvc.AssertExpectations(suite.T())
	suite.shareholderSvc.AssertExpectations(suite.T())
	suite.shareClassSvc.AssertExpectations(suite.T())
	suite.transactionSvc.AssertExpectations(suite.T())
	suite.capTableSvc.AssertExpectations(suite.T())
}

// Helper to generate a valid JWT for testing
func generateTestToken(userID string, secret string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (suite *HandlerTestSuite) do(method, url, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	if userID != "" {
		token, err := generateTestToken(userID, suite.jwtSecret)
		suite.Require().NoError(err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealth_IsPublic() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestMissingToken_Unauthorized() {
	w := suite.do(http.MethodGet, "/api/v1/tenants", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Authorization header required", errorBody(suite.T(), w))
}

func (suite *HandlerTestSuite) TestCreateTenant_Success() {
	userID := uuid.NewString()
	req := dto.CreateTenantRequest{Name: "Acme AB", OrganisationNumber: "556000-0000"}
	tenant := &domain.Tenant{TenantID: "tenant-1", Name: req.Name, OrganisationNumber: req.OrganisationNumber, IsActive: true,
		AuditFields: domain.AuditFields{CreatedBy: userID}}

	suite.tenantSvc.On("CreateTenant", mock.Anything, req, userID).Return(tenant, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/tenants", userID, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TenantResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("tenant-1", resp.TenantID)
	suite.Equal(userID, resp.CreatedBy)
}

func (suite *HandlerTestSuite) TestCreateTenant_MissingName() {
	w := suite.do(http.MethodPost, "/api/v1/tenants", uuid.NewString(), map[string]string{"description": "x"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(errorBody(suite.T(), w), "Invalid request format")
}

func (suite *HandlerTestSuite) TestAddTenantMember_Forbidden() {
	userID := uuid.NewString()
	req := dto.AddTenantMemberRequest{UserID: "someone", Role: domain.RoleMember}
	suite.tenantSvc.On("AddTenantMember", mock.Anything, userID, "tenant-1", req).
		Return(nil, fmt.Errorf("user %s is not an admin: %w", userID, apperrors.ErrForbidden)).Once()

	w := suite.do(http.MethodPost, "/api/v1/tenants/tenant-1/members", userID, req)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestCreateShareholder_InvalidType() {
	body := map[string]string{"name": "Anna", "type": "ROBOT"}
	w := suite.do(http.MethodPost, "/api/v1/tenants/tenant-1/shareholders", uuid.NewString(), body)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetShareholder_NotFound() {
	userID := uuid.NewString()
	suite.shareholderSvc.On("GetShareholder", mock.Anything, "tenant-1", "missing", userID).
		Return(nil, apperrors.NewNotFoundError("shareholder")).Once()

	w := suite.do(http.MethodGet, "/api/v1/tenants/tenant-1/shareholders/missing", userID, nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("shareholder not found", errorBody(suite.T(), w))
}

func (suite *HandlerTestSuite) TestDeleteShareholder_ReportsOutcome() {
	userID := uuid.NewString()
	suite.shareholderSvc.On("DeleteShareholder", mock.Anything, "tenant-1", "sh-1", userID).
		Return(portssvc.ShareholderDeactivated, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/tenants/tenant-1/shareholders/sh-1", userID, nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DeleteShareholderResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("DEACTIVATED", resp.Outcome)
}

func (suite *HandlerTestSuite) TestDeleteShareholder_StillHoldsShares() {
	userID := uuid.NewString()
	suite.shareholderSvc.On("DeleteShareholder", mock.Anything, "tenant-1", "sh-1", userID).
		Return(portssvc.DeleteOutcome(""), apperrors.NewValidationError("shareholder owns active positions and cannot be deleted")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/tenants/tenant-1/shareholders/sh-1", userID, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("shareholder owns active positions and cannot be deleted", errorBody(suite.T(), w))
}

func (suite *HandlerTestSuite) TestDefineShareClass_RejectsZeroVotes() {
	body := map[string]any{"label": "A", "votesPerShare": "0", "nominalValue": "1"}
	w := suite.do(http.MethodPost, "/api/v1/tenants/tenant-1/share-classes", uuid.NewString(), body)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestDefineShareClass_Success() {
	userID := uuid.NewString()
	class := &domain.ShareClass{TenantID: "tenant-1", Label: "A", VotesPerShare: decimal.NewFromInt(10), NominalValue: decimal.NewFromInt(1)}
	suite.shareClassSvc.On("DefineShareClass", mock.Anything, "tenant-1",
		mock.MatchedBy(func(r dto.CreateShareClassRequest) bool {
			return r.Label == "A" && r.VotesPerShare.Equal(decimal.NewFromInt(10))
		}), userID).Return(class, nil).Once()

	body := map[string]any{"label": "A", "votesPerShare": "10", "nominalValue": "1"}
	w := suite.do(http.MethodPost, "/api/v1/tenants/tenant-1/share-classes", userID, body)
	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestCreateTransaction_Success() {
	userID := uuid.NewString()
	stored := &domain.ShareTransaction{TransactionID: "txn-1", Type: domain.Issuance, NumberOfShares: 100, ShareClass: "A"}

	suite.transactionSvc.On("CreateTransaction", mock.Anything, "tenant-1",
		mock.MatchedBy(func(r dto.CreateShareTransactionRequest) bool {
			return r.Type == domain.Issuance && r.ShareNumberFrom == 1 && r.ShareNumberTo == 100
		}), userID).Return(stored, nil).Once()

	body := map[string]any{
		"type":            "ISSUANCE",
		"transactionDate": "2024-01-15T00:00:00Z",
		"toShareholderId": "sh-1",
		"shareClass":      "A",
		"numberOfShares":  100,
		"shareNumberFrom": 1,
		"shareNumberTo":   100,
	}
	w := suite.do(http.MethodPost, "/api/v1/tenants/tenant-1/share-transactions", userID, body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateShareTransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("txn-1", resp.ID)
	suite.Equal(int64(100), resp.NumberOfShares)
}

func (suite *HandlerTestSuite) TestCreateTransaction_UnknownType() {
	body := map[string]any{"type": "GIFT", "transactionDate": "2024-01-15T00:00:00Z", "toShareholderId": "sh-1"}
	w := suite.do(http.MethodPost, "/api/v1/tenants/tenant-1/share-transactions", uuid.NewString(), body)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateTransaction_ValidationMessagePassesThrough() {
	userID := uuid.NewString()
	suite.transactionSvc.On("CreateTransaction", mock.Anything, "tenant-1", mock.Anything, userID).
		Return(nil, apperrors.NewValidationError("invalid range")).Once()

	body := map[string]any{"type": "ISSUANCE", "transactionDate": "2024-01-15T00:00:00Z", "toShareholderId": "sh-1",
		"shareClass": "A", "numberOfShares": 1, "shareNumberFrom": 10, "shareNumberTo": 5}
	w := suite.do(http.MethodPost, "/api/v1/tenants/tenant-1/share-transactions", userID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("invalid range", errorBody(suite.T(), w))
}

func (suite *HandlerTestSuite) TestCreateTransaction_ConflictAndStorage() {
	userID := uuid.NewString()
	suite.transactionSvc.On("CreateTransaction", mock.Anything, "tenant-1", mock.Anything, userID).
		Return(nil, apperrors.NewConflictError("register changed concurrently")).Once()
	suite.transactionSvc.On("CreateTransaction", mock.Anything, "tenant-1", mock.Anything, userID).
		Return(nil, apperrors.NewStorageError("insert failed", fmt.Errorf("connection reset"))).Once()

	body := map[string]any{"type": "ISSUANCE", "transactionDate": "2024-01-15T00:00:00Z", "toShareholderId": "sh-1"}

	w := suite.do(http.MethodPost, "/api/v1/tenants/tenant-1/share-transactions", userID, body)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/tenants/tenant-1/share-transactions", userID, body)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(errorBody(suite.T(), w), "connection reset")
}

func (suite *HandlerTestSuite) TestListTransactions_PassesPaging() {
	userID := uuid.NewString()
	next := "cursor-2"
	txns := []domain.ShareTransaction{{TransactionID: "txn-2"}, {TransactionID: "txn-1"}}

	suite.transactionSvc.On("ListTransactions", mock.Anything, "tenant-1", userID,
		mock.MatchedBy(func(p dto.ListShareTransactionsParams) bool {
			return p.Limit == 2 && p.NextToken != nil && *p.NextToken == "cursor-1"
		})).Return(txns, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/tenants/tenant-1/share-transactions?limit=2&nextToken=cursor-1", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListShareTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 2)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("cursor-2", *resp.NextToken)
}

func (suite *HandlerTestSuite) TestListTransactions_LimitTooLarge() {
	w := suite.do(http.MethodGet, "/api/v1/tenants/tenant-1/share-transactions?limit=10000", uuid.NewString(), nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetCapTable_AsOf() {
	userID := uuid.NewString()
	summary := &domain.CapTableSummary{TenantID: "tenant-1", TotalShares: 100}
	suite.capTableSvc.On("GetCapTable", mock.Anything, "tenant-1",
		mock.MatchedBy(func(asOf *time.Time) bool {
			return asOf != nil && asOf.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
		}), userID).Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/tenants/tenant-1/cap-table?asOf=2024-03-01", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.CapTableSummary
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(100), resp.TotalShares)
}

func (suite *HandlerTestSuite) TestGetCapTable_Current() {
	userID := uuid.NewString()
	suite.capTableSvc.On("GetCapTable", mock.Anything, "tenant-1", (*time.Time)(nil), userID).
		Return(&domain.CapTableSummary{TenantID: "tenant-1"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/tenants/tenant-1/cap-table", userID, nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestGetCapTable_BadDate() {
	w := suite.do(http.MethodGet, "/api/v1/tenants/tenant-1/cap-table?asOf=03/01/2024", uuid.NewString(), nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestExportCapTable_CSV() {
	userID := uuid.NewString()
	csv := []byte("ÄGARFÖRTECKNING\n")
	suite.capTableSvc.On("ExportCapTable", mock.Anything, "tenant-1", export.FormatCSV, userID).Return(csv, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/tenants/tenant-1/cap-table/export?format=csv", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.True(strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))
	suite.Contains(w.Header().Get("Content-Disposition"), ".csv")
	suite.Equal(csv, w.Body.Bytes())
}

func (suite *HandlerTestSuite) TestExportCapTable_UnknownFormatFallsBackToJSON() {
	userID := uuid.NewString()
	suite.capTableSvc.On("ExportCapTable", mock.Anything, "tenant-1", export.FormatJSON, userID).Return([]byte(`{}`), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/tenants/tenant-1/cap-table/export?format=xlsx", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.True(strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))
}

func (suite *HandlerTestSuite) TestVerifyRegister() {
	userID := uuid.NewString()
	result := &domain.RegisterVerification{TenantID: "tenant-1", Consistent: false,
		Discrepancies: []domain.RegisterDiscrepancy{{Kind: domain.MissingInStore, ShareholderID: "sh-1", ShareClass: "A",
			Range: domain.ShareRange{From: 1, To: 10}}}}
	suite.capTableSvc.On("VerifyRegister", mock.Anything, "tenant-1", userID).Return(result, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/tenants/tenant-1/cap-table/verify", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.RegisterVerification
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Consistent)
	assert.Len(suite.T(), resp.Discrepancies, 1)
}
