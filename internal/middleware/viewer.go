package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prostaff/prostaff_backend/internal/apperrors"
	portssvc "github.com/prostaff/prostaff_backend/internal/core/ports/services"
)

// ViewerMiddleware resolves the authenticated user into a Viewer with roles.
// Requests without an authenticated user continue as anonymous.
func ViewerMiddleware(resolver portssvc.ViewerResolverSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.Next()
			return
		}

		viewer, err := resolver.ResolveViewer(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
				return
			}
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to resolve viewer", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(string(viewerKey), viewer)
		c.Next()
	}
}
