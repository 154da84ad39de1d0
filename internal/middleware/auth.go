package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/prostaff/prostaff_backend/internal/utils"
)

var (
	errMissingHeader = errors.New("authorization header missing")
	errHeaderFormat  = errors.New("authorization header is not a bearer token")
)

// AuthMiddleware creates a Gin middleware handler that requires a valid JWT bearer token.
func AuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticate(c, jwtSecret, issuer, false)
	}
}

// OptionalAuthMiddleware authenticates the caller when an Authorization header is present
// and lets anonymous requests through. A header carrying an invalid token is still rejected.
func OptionalAuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticate(c, jwtSecret, issuer, true)
	}
}

func authenticate(c *gin.Context, jwtSecret, issuer string, optional bool) {
	logger := GetLoggerFromCtx(c.Request.Context())

	// if auth is already done, skip this middleware
	if _, exists := GetUserIDFromContext(c); exists {
		c.Next()
		return
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" && optional {
		c.Next()
		return
	}

	userID, err := parseBearer(authHeader, jwtSecret, issuer)
	if err != nil {
		logger.Warn("Authentication failed", slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": authErrorMessage(err)})
		return
	}

	// Store the user ID in the request context and gin context
	ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
	ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID)))
	c.Request = c.Request.WithContext(ctx)
	c.Set(string(userIDKey), userID)

	c.Next()
}

// parseBearer validates an "Authorization: Bearer <jwt>" header and returns the subject.
func parseBearer(authHeader, jwtSecret, issuer string) (string, error) {
	if authHeader == "" {
		return "", errMissingHeader
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", errHeaderFormat
	}

	claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret, issuer)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, errMissingHeader):
		return "Authorization header required"
	case errors.Is(err, errHeaderFormat):
		return "Authorization header format must be Bearer {token}"
	case errors.Is(err, jwt.ErrTokenExpired):
		return "Token has expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "Token not valid yet"
	case errors.Is(err, jwt.ErrTokenInvalidClaims):
		return "Invalid token claims"
	}
	return "Invalid token"
}
