package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/share_register/internal/core/ports/services"
	"github.com/SscSPs/share_register/internal/dto"
	"github.com/SscSPs/share_register/internal/middleware"
	"github.com/gin-gonic/gin"
)

// shareholderHandler handles HTTP requests for the shareholder directory of a tenant.
type shareholderHandler struct {
	shareholderService portssvc.ShareholderSvcFacade
}

func newShareholderHandler(ss portssvc.ShareholderSvcFacade) *shareholderHandler {
	return &shareholderHandler{shareholderService: ss}
}

// RegisterShareholderRoutes registers shareholder routes on a tenant-scoped group.
func RegisterShareholderRoutes(tenantGroup *gin.RouterGroup, shareholderService portssvc.ShareholderSvcFacade) {
	h := newShareholderHandler(shareholderService)

	shareholders := tenantGroup.Group("/shareholders")
	{
		shareholders.POST("", h.createShareholder)
		shareholders.GET("", h.listShareholders)
		shareholders.GET("/:shareholder_id", h.getShareholder)
		shareholders.PUT("/:shareholder_id", h.updateShareholder)
		shareholders.DELETE("/:shareholder_id", h.deleteShareholder)
		shareholders.GET("/:shareholder_id/positions", h.listShareholderPositions)
	}
}

// createShareholder godoc
// @Summary Add a shareholder
// @Description Adds a natural or legal person to the shareholder directory. Requires the MEMBER role.
// @Tags shareholders
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   shareholder body dto.CreateShareholderRequest true "Shareholder details"
// @Success 201 {object} dto.ShareholderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Identity number already registered"
// @Failure 500 {object} map[string]string "Failed to create shareholder"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/shareholders [post]
func (h *shareholderHandler) createShareholder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var req dto.CreateShareholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err, "CreateShareholder")
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	shareholder, err := h.shareholderService.CreateShareholder(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondWithError(c, err, "Create shareholder")
		return
	}

	logger.Info("Shareholder created", slog.String("tenant_id", tenantID), slog.String("shareholder_id", shareholder.ShareholderID))
	c.JSON(http.StatusCreated, dto.ToShareholderResponse(shareholder))
}

// listShareholders godoc
// @Summary List shareholders
// @Description Lists the shareholder directory of a tenant, sorted by name.
// @Tags shareholders
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {array} dto.ShareholderResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list shareholders"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/shareholders [get]
func (h *shareholderHandler) listShareholders(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	shareholders, err := h.shareholderService.ListShareholders(c.Request.Context(), c.Param("tenant_id"), userID)
	if err != nil {
		respondWithError(c, err, "List shareholders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListShareholderResponse(shareholders))
}

// getShareholder godoc
// @Summary Get a shareholder
// @Tags shareholders
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   shareholder_id path string true "Shareholder ID"
// @Success 200 {object} dto.ShareholderResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Shareholder not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/shareholders/{shareholder_id} [get]
func (h *shareholderHandler) getShareholder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	shareholder, err := h.shareholderService.GetShareholder(c.Request.Context(), c.Param("tenant_id"), c.Param("shareholder_id"), userID)
	if err != nil {
		respondWithError(c, err, "Get shareholder")
		return
	}
	c.JSON(http.StatusOK, dto.ToShareholderResponse(shareholder))
}

// updateShareholder godoc
// @Summary Update shareholder contact details
// @Description Changes name or contact details. Type and identity number are fixed after creation.
// @Tags shareholders
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   shareholder_id path string true "Shareholder ID"
// @Param   shareholder body dto.UpdateShareholderRequest true "Fields to change"
// @Success 200 {object} dto.ShareholderResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Shareholder not found"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/shareholders/{shareholder_id} [put]
func (h *shareholderHandler) updateShareholder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")
	shareholderID := c.Param("shareholder_id")

	var req dto.UpdateShareholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err, "UpdateShareholder")
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	shareholder, err := h.shareholderService.UpdateShareholder(c.Request.Context(), tenantID, shareholderID, req, userID)
	if err != nil {
		respondWithError(c, err, "Update shareholder")
		return
	}

	logger.Info("Shareholder updated", slog.String("shareholder_id", shareholderID), slog.Int64("version", shareholder.Version))
	c.JSON(http.StatusOK, dto.ToShareholderResponse(shareholder))
}

// deleteShareholder godoc
// @Summary Delete a shareholder
// @Description Removes a shareholder nobody refers to, or deactivates one the ledger still mentions.
// @Description Shareholders with active positions cannot be deleted.
// @Tags shareholders
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   shareholder_id path string true "Shareholder ID"
// @Success 200 {object} dto.DeleteShareholderResponse
// @Failure 400 {object} map[string]string "Shareholder still holds shares"
// @Failure 404 {object} map[string]string "Shareholder not found"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/shareholders/{shareholder_id} [delete]
func (h *shareholderHandler) deleteShareholder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shareholderID := c.Param("shareholder_id")

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	outcome, err := h.shareholderService.DeleteShareholder(c.Request.Context(), c.Param("tenant_id"), shareholderID, userID)
	if err != nil {
		respondWithError(c, err, "Delete shareholder")
		return
	}

	logger.Info("Shareholder deleted", slog.String("shareholder_id", shareholderID), slog.String("outcome", string(outcome)))
	c.JSON(http.StatusOK, dto.DeleteShareholderResponse{ShareholderID: shareholderID, Outcome: string(outcome)})
}

// listShareholderPositions godoc
// @Summary List positions of a shareholder
// @Description Returns active and historical share positions held by the shareholder.
// @Tags shareholders
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   shareholder_id path string true "Shareholder ID"
// @Success 200 {array} dto.PositionResponse
// @Failure 404 {object} map[string]string "Shareholder not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/shareholders/{shareholder_id}/positions [get]
func (h *shareholderHandler) listShareholderPositions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	positions, err := h.shareholderService.ListShareholderPositions(c.Request.Context(), c.Param("tenant_id"), c.Param("shareholder_id"), userID)
	if err != nil {
		respondWithError(c, err, "List positions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPositionResponse(positions))
}
