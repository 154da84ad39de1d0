package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/prostaff/prostaff_backend/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID.
const userIDKey = contextKey("userID")

// viewerKey is the key used to store the resolved viewer.
const viewerKey = contextKey("viewer")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userIDVal, exists := c.Get(string(userIDKey)); exists {
		userID, ok := userIDVal.(string)
		return userID, ok && userID != ""
	}
	// check in the request context as well
	if userID, ok := c.Request.Context().Value(userIDKey).(string); ok && userID != "" {
		return userID, true
	}
	return "", false
}

// GetViewerFromContext returns the viewer resolved by ViewerMiddleware, or nil for anonymous callers.
func GetViewerFromContext(c *gin.Context) *domain.Viewer {
	if v, exists := c.Get(string(viewerKey)); exists {
		if viewer, ok := v.(*domain.Viewer); ok {
			return viewer
		}
	}
	return nil
}
