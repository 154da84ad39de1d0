package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prostaff/prostaff_backend/internal/apperrors"
	"github.com/prostaff/prostaff_backend/internal/core/domain"
	portssvc "github.com/prostaff/prostaff_backend/internal/core/ports/services"
	"github.com/prostaff/prostaff_backend/internal/dto"
	"github.com/prostaff/prostaff_backend/internal/middleware"
	"github.com/prostaff/prostaff_backend/internal/utils"
)

// accessHandler serves the view quota ledger.
type accessHandler struct {
	viewQuota portssvc.ViewQuotaSvcFacade
	posthog   *utils.PosthogClientWrapper
}

func newAccessHandler(viewQuota portssvc.ViewQuotaSvcFacade, posthog *utils.PosthogClientWrapper) *accessHandler {
	return &accessHandler{viewQuota: viewQuota, posthog: posthog}
}

// registerAccessRoutes registers the ledger read routes.
func registerAccessRoutes(rg *gin.RouterGroup, h *accessHandler) {
	rg.GET("/quota", h.getQuota)
	rg.GET("/unlocked", h.listUnlocked)
}

// unlockProfile godoc
// @Summary Unlock a profile
// @Description Grants the calling employer permanent full access to a profile, consuming subscription, trial or weekly quota.
// @Tags access
// @Produce  json
// @Param   profileID path string true "Profile ID"
// @Success 200 {object} dto.UnlockResponse "Unlocked (or already unlocked)"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 402 {object} dto.UnlockResponse "Quota exhausted"
// @Failure 403 {object} dto.DeniedResponse "Caller is not an employer"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Failed to unlock profile"
// @Security BearerAuth
// @Router /profiles/{profileID}/unlock [post]
func (h *accessHandler) unlockProfile(c *gin.Context) {
	profileID := c.Param("profileID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("profile_id", profileID))

	viewer := middleware.GetViewerFromContext(c)
	if viewer == nil {
		logger.Error("Viewer not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.viewQuota.Unlock(c.Request.Context(), viewer, profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			logger.Warn("Unlock denied for role", slog.String("role", string(viewer.Role())))
			c.JSON(http.StatusForbidden, dto.DeniedResponse{Access: domain.UnlockDenied, Error: publicMessage(err)})
			return
		}
		respondError(c, logger, err, "Failed to unlock profile")
		return
	}

	resp := dto.ToUnlockResponse(result)
	if result.Access == domain.UnlockPaywall {
		c.JSON(http.StatusPaymentRequired, resp)
		return
	}

	if !result.AlreadyViewed && !result.Unlimited {
		middleware.PosthogEvent(c, h.posthog, "profile_unlocked", map[string]any{
			"profile_id": profileID,
			"subscribed": result.Subscribed,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// getQuota godoc
// @Summary Get view quota
// @Description Returns the calling employer's trial, weekly and subscription state without consuming anything.
// @Tags access
// @Produce  json
// @Success 200 {object} dto.QuotaResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not an employer"
// @Failure 500 {object} map[string]string "Failed to load quota"
// @Security BearerAuth
// @Router /access/quota [get]
func (h *accessHandler) getQuota(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status, err := h.viewQuota.GetQuotaStatus(c.Request.Context(), middleware.GetViewerFromContext(c))
	if err != nil {
		respondError(c, logger, err, "Failed to load quota")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuotaResponse(status))
}

// listUnlocked godoc
// @Summary List unlocked profiles
// @Description Returns the profiles the caller has unlocked, newest first.
// @Tags access
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   next_token query string false "Token from the previous page"
// @Success 200 {object} dto.UnlockedProfilesResponse
// @Failure 400 {object} map[string]string "Invalid query or token"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not an employer"
// @Failure 500 {object} map[string]string "Failed to list unlocked profiles"
// @Security BearerAuth
// @Router /access/unlocked [get]
func (h *accessHandler) listUnlocked(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ListUnlockedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for ListUnlocked", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	views, next, err := h.viewQuota.ListUnlockedProfiles(c.Request.Context(), middleware.GetViewerFromContext(c), query.Limit, query.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list unlocked profiles")
		return
	}
	c.JSON(http.StatusOK, dto.ToUnlockedProfilesResponse(views, next))
}
