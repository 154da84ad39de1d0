package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prostaff/prostaff_backend/internal/core/domain"
	portssvc "github.com/prostaff/prostaff_backend/internal/core/ports/services"
	"github.com/prostaff/prostaff_backend/internal/dto"
	"github.com/prostaff/prostaff_backend/internal/middleware"
)

// profileReadObserver is notified of every profile served.
type profileReadObserver interface {
	ObserveProfileRead(mode string, tier domain.AccessTier)
}

// profileHandler serves the profile access evaluator.
type profileHandler struct {
	profileAccess portssvc.ProfileAccessSvc
	observer      profileReadObserver
}

func newProfileHandler(profileAccess portssvc.ProfileAccessSvc, observer profileReadObserver) *profileHandler {
	return &profileHandler{profileAccess: profileAccess, observer: observer}
}

// registerProfileReadRoutes registers the read routes. The group is expected to resolve an optional viewer.
func registerProfileReadRoutes(rg *gin.RouterGroup, h *profileHandler) {
	rg.GET("", h.listProfiles)
	rg.GET("/resolve", h.resolveProfile)
	rg.GET("/:profileID", h.getProfile)
}

// getProfile godoc
// @Summary Get a profile
// @Description Returns a specialist profile redacted to the caller's access tier. Anonymous callers are allowed.
// @Tags profiles
// @Produce  json
// @Param   profileID path string true "Profile ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} map[string]string "Invalid credential"
// @Failure 404 {object} map[string]string "Profile not found or hidden"
// @Failure 500 {object} map[string]string "Failed to load profile"
// @Security BearerAuth
// @Router /profiles/{profileID} [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	h.single(c, c.Param("profileID"))
}

// listProfiles godoc
// @Summary List profiles
// @Description Returns listing cards. Names and contacts are never included.
// @Tags profiles
// @Produce  json
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   offset query int false "Offset"
// @Success 200 {object} dto.ProfileListResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list profiles"
// @Security BearerAuth
// @Router /profiles [get]
func (h *profileHandler) listProfiles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ListProfilesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for ListProfiles", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	h.list(c, query.Limit, query.Offset)
}

// resolveProfile godoc
// @Summary Resolve profiles by mode
// @Description Single entry point: mode=single with profile_id, or mode=list with limit/offset.
// @Tags profiles
// @Produce  json
// @Param   mode query string true "single or list"
// @Param   profile_id query string false "Profile ID (single mode)"
// @Param   limit query int false "Page size (list mode)"
// @Param   offset query int false "Offset (list mode)"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 404 {object} map[string]string "Profile not found or hidden"
// @Failure 500 {object} map[string]string "Failed to load profile"
// @Security BearerAuth
// @Router /profiles/resolve [get]
func (h *profileHandler) resolveProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ResolveProfileQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for ResolveProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	if query.Mode == dto.ModeList {
		h.list(c, query.Limit, query.Offset)
		return
	}
	h.single(c, query.ProfileID)
}

func (h *profileHandler) single(c *gin.Context, profileID string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("profile_id", profileID))
	viewer := middleware.GetViewerFromContext(c)

	resolved, err := h.profileAccess.GetProfile(c.Request.Context(), viewer, profileID)
	if err != nil {
		respondError(c, logger, err, "Failed to load profile")
		return
	}

	h.observe(dto.ModeSingle, resolved.Access)
	c.JSON(http.StatusOK, dto.ToProfileResponse(resolved))
}

func (h *profileHandler) list(c *gin.Context, limit, offset int) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	viewer := middleware.GetViewerFromContext(c)

	listing, err := h.profileAccess.ListProfiles(c.Request.Context(), viewer, limit, offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list profiles")
		return
	}

	for _, card := range listing.Profiles {
		h.observe(dto.ModeList, card.Access)
	}
	logger.Debug("Listed profiles", slog.Int("count", len(listing.Profiles)))
	c.JSON(http.StatusOK, dto.ToProfileListResponse(listing, limit, offset))
}

func (h *profileHandler) observe(mode string, tier domain.AccessTier) {
	if h.observer != nil {
		h.observer.ObserveProfileRead(mode, tier)
	}
}
