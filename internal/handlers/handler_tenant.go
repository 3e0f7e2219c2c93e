package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/share_register/internal/core/ports/services"
	"github.com/SscSPs/share_register/internal/dto"
	"github.com/SscSPs/share_register/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tenantHandler handles HTTP requests related to tenants and their members.
type tenantHandler struct {
	tenantService portssvc.TenantSvcFacade
}

func newTenantHandler(ts portssvc.TenantSvcFacade) *tenantHandler {
	return &tenantHandler{tenantService: ts}
}

// registerTenantRoutes registers the top-level tenant routes and returns the group
// under which all register routes of a single tenant are mounted.
func registerTenantRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade) *gin.RouterGroup {
	h := newTenantHandler(tenantService)

	tenants := rg.Group("/tenants")
	{
		tenants.POST("", h.createTenant)
		tenants.GET("", h.listUserTenants)
	}

	tenantSpecific := rg.Group("/tenants/:tenant_id")
	tenantSpecific.POST("/members", h.addTenantMember)
	return tenantSpecific
}

// createTenant godoc
// @Summary Register a company
// @Description Creates a tenant and makes the caller its admin.
// @Tags tenants
// @Accept  json
// @Produce  json
// @Param   tenant body dto.CreateTenantRequest true "Company details"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create tenant"
// @Security BearerAuth
// @Router /tenants [post]
func (h *tenantHandler) createTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err, "CreateTenant")
		return
	}

	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	logger.Info("Received request to create tenant", slog.String("tenant_name", req.Name))
	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, err, "Create tenant")
		return
	}

	logger.Info("Tenant created successfully", slog.String("tenant_id", tenant.TenantID))
	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant))
}

// listUserTenants godoc
// @Summary List tenants of the current user
// @Tags tenants
// @Produce  json
// @Success 200 {object} dto.ListTenantsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list tenants"
// @Security BearerAuth
// @Router /tenants [get]
func (h *tenantHandler) listUserTenants(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	tenants, err := h.tenantService.ListUserTenants(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "List tenants")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTenantsResponse(tenants))
}

// addTenantMember godoc
// @Summary Add a user to a tenant
// @Description Adds a user to the tenant with a role. Requires the ADMIN role.
// @Tags tenants
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   member body dto.AddTenantMemberRequest true "User ID and role"
// @Success 201 {object} dto.TenantMemberResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not an admin of the tenant"
// @Failure 404 {object} map[string]string "Tenant not found"
// @Failure 500 {object} map[string]string "Failed to add member"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/members [post]
func (h *tenantHandler) addTenantMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var req dto.AddTenantMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err, "AddTenantMember")
		return
	}

	addingUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("tenant_id", tenantID), slog.String("target_user_id", req.UserID))
	member, err := h.tenantService.AddTenantMember(c.Request.Context(), addingUserID, tenantID, req)
	if err != nil {
		respondWithError(c, err, "Add tenant member")
		return
	}

	logger.Info("Tenant member added", slog.String("role", string(member.Role)))
	c.JSON(http.StatusCreated, dto.ToTenantMemberResponse(member))
}
