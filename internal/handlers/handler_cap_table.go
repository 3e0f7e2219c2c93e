package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/share_register/internal/core/ports/services"
	"github.com/SscSPs/share_register/internal/dto"
	"github.com/SscSPs/share_register/internal/middleware"
	"github.com/SscSPs/share_register/internal/utils/export"
	"github.com/gin-gonic/gin"
)

const asOfLayout = "2006-01-02"

type capTableHandler struct {
	capTableService portssvc.CapTableSvcFacade
}

func newCapTableHandler(svc portssvc.CapTableSvcFacade) *capTableHandler {
	return &capTableHandler{capTableService: svc}
}

// RegisterCapTableRoutes registers the read-side register routes on a tenant-scoped group.
func RegisterCapTableRoutes(tenantGroup *gin.RouterGroup, svc portssvc.CapTableSvcFacade) {
	h := newCapTableHandler(svc)

	capTable := tenantGroup.Group("/cap-table")
	{
		capTable.GET("", h.getCapTable)
		capTable.GET("/export", h.exportCapTable)
		capTable.GET("/verify", h.verifyRegister)
	}
}

// getCapTable godoc
// @Summary Get the cap table
// @Description Computes ownership and voting percentages from the active positions,
// @Description or from a ledger replay up to the end of asOf.
// @Tags cap-table
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   asOf query string false "Historical date (YYYY-MM-DD)"
// @Success 200 {object} domain.CapTableSummary
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to compute cap table"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/cap-table [get]
func (h *capTableHandler) getCapTable(c *gin.Context) {
	var params dto.CapTableParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindingError(c, err, "CapTable query")
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var asOf *time.Time
	if params.AsOf != "" {
		// binding already checked the layout
		t, _ := time.ParseInLocation(asOfLayout, params.AsOf, time.UTC)
		asOf = &t
	}

	summary, err := h.capTableService.GetCapTable(c.Request.Context(), c.Param("tenant_id"), asOf, userID)
	if err != nil {
		respondWithError(c, err, "Compute cap table")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// exportCapTable godoc
// @Summary Export the share register
// @Description Renders the cap table and the ledger history as a semicolon separated CSV
// @Description (format=csv) or as JSON (any other value).
// @Tags cap-table
// @Produce  json
// @Produce  text/csv
// @Param   tenant_id path string true "Tenant ID"
// @Param   format query string false "csv or json" default(json)
// @Success 200 {file} file
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to export"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/cap-table/export [get]
func (h *capTableHandler) exportCapTable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var params dto.ExportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindingError(c, err, "Export query")
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	format := export.ParseFormat(params.Format)
	body, err := h.capTableService.ExportCapTable(c.Request.Context(), tenantID, format, userID)
	if err != nil {
		respondWithError(c, err, "Export cap table")
		return
	}

	filename := fmt.Sprintf("share-register-%s-%s.%s", tenantID, time.Now().UTC().Format(asOfLayout), format.Extension())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	logger.Info("Cap table export sent", slog.String("tenant_id", tenantID), slog.String("format", string(format)))
	c.Data(http.StatusOK, format.ContentType(), body)
}

// verifyRegister godoc
// @Summary Verify the register
// @Description Replays the whole ledger and compares the result with the stored active positions.
// @Tags cap-table
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {object} domain.RegisterVerification
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/cap-table/verify [get]
func (h *capTableHandler) verifyRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.capTableService.VerifyRegister(c.Request.Context(), tenantID, userID)
	if err != nil {
		respondWithError(c, err, "Verify register")
		return
	}
	if !result.Consistent {
		logger.Warn("Register is inconsistent with its ledger",
			slog.String("tenant_id", tenantID),
			slog.Int("discrepancies", len(result.Discrepancies)))
	}
	c.JSON(http.StatusOK, result)
}
