package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/share_register/internal/core/ports/services"
	"github.com/SscSPs/share_register/internal/dto"
	"github.com/SscSPs/share_register/internal/middleware"
	"github.com/gin-gonic/gin"
)

type shareClassHandler struct {
	shareClassService portssvc.ShareClassSvcFacade
}

func newShareClassHandler(svc portssvc.ShareClassSvcFacade) *shareClassHandler {
	return &shareClassHandler{shareClassService: svc}
}

func registerShareClassRoutes(tenantGroup *gin.RouterGroup, svc portssvc.ShareClassSvcFacade) {
	h := newShareClassHandler(svc)

	classes := tenantGroup.Group("/share-classes")
	{
		classes.POST("", h.defineShareClass)
		classes.GET("", h.listShareClasses)
		classes.GET("/:label", h.getShareClass)
	}
}

// defineShareClass godoc
// @Summary Define a share class
// @Description Adds a share class with its votes per share and nominal value. Requires the ADMIN role.
// @Tags share-classes
// @Accept  json
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   class body dto.CreateShareClassRequest true "Share class"
// @Success 201 {object} dto.ShareClassResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Class already defined"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/share-classes [post]
func (h *shareClassHandler) defineShareClass(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID := c.Param("tenant_id")

	var req dto.CreateShareClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err, "DefineShareClass")
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	class, err := h.shareClassService.DefineShareClass(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondWithError(c, err, "Define share class")
		return
	}

	logger.Info("Share class defined", slog.String("tenant_id", tenantID), slog.String("label", class.Label))
	c.JSON(http.StatusCreated, dto.ToShareClassResponse(class))
}

// listShareClasses godoc
// @Summary List share classes
// @Tags share-classes
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Success 200 {array} dto.ShareClassResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/share-classes [get]
func (h *shareClassHandler) listShareClasses(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	classes, err := h.shareClassService.ListShareClasses(c.Request.Context(), c.Param("tenant_id"), userID)
	if err != nil {
		respondWithError(c, err, "List share classes")
		return
	}
	c.JSON(http.StatusOK, dto.ToListShareClassResponse(classes))
}

// getShareClass godoc
// @Summary Get a share class
// @Tags share-classes
// @Produce  json
// @Param   tenant_id path string true "Tenant ID"
// @Param   label path string true "Class label"
// @Success 200 {object} dto.ShareClassResponse
// @Failure 404 {object} map[string]string "Class not found"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/share-classes/{label} [get]
func (h *shareClassHandler) getShareClass(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	class, err := h.shareClassService.GetShareClass(c.Request.Context(), c.Param("tenant_id"), c.Param("label"), userID)
	if err != nil {
		respondWithError(c, err, "Get share class")
		return
	}
	c.JSON(http.StatusOK, dto.ToShareClassResponse(class))
}
