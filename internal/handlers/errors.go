package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/share_register/internal/apperrors"
	"github.com/SscSPs/share_register/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError writes err as a JSON error body with the status its category maps to.
// Internal failures are logged at error level and their details are not exposed.
func respondWithError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.HTTPStatus(err)

	if status >= http.StatusInternalServerError {
		logger.Error(action+" failed", slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": action + " failed"})
		return
	}

	logger.Warn(action+" rejected", slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": apperrors.Message(err)})
}

// requireUserID reads the authenticated user, answering 401 when it is missing.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

func bindingError(c *gin.Context, err error, what string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
