package handlers

import (
	"net/http"

	profileRepo "niryaat/database/repository/profile"
	"niryaat/middleware"
	"niryaat/models"
	"niryaat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler exposes profile management endpoints.
type ProfileHandler struct {
	Profiles profileRepo.ProfileRepository
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(profiles profileRepo.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles}
}

// GetProfileHandler returns the caller's profile.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	mgr := middleware.SessionFromContext(c)
	snap := mgr.Current()
	if snap.Profile == nil {
		c.JSON(http.StatusOK, gin.H{"profile": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": snap.Profile})
}

// UpdateProfileHandler applies a partial update to the caller's profile.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	mgr := middleware.SessionFromContext(c)

	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	profile, err := h.Profiles.Update(mgr.AccountID(), update)
	if err != nil {
		logger.Error("Profile update failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Profile update failed, please try again", "")
		return
	}

	// Re-sync the session's cached profile.
	if _, err := mgr.Refresh(); err != nil {
		logger.Warn("Session refresh after profile update failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// AddHSCodeHandler adds a tracked HS code to the caller's profile.
func (h *ProfileHandler) AddHSCodeHandler(c *gin.Context) {
	logger := getLogger(c)
	mgr := middleware.SessionFromContext(c)

	var req struct {
		HSCode string `json:"hsCode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.HSCode == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "hsCode is required")
		return
	}

	profile, err := h.Profiles.AddHSCode(mgr.AccountID(), req.HSCode)
	if err != nil {
		logger.Error("Failed to add HS code", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to add HS code, please try again", "")
		return
	}

	if _, err := mgr.Refresh(); err != nil {
		logger.Warn("Session refresh after HS code change failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// RemoveHSCodeHandler removes a tracked HS code from the caller's profile.
func (h *ProfileHandler) RemoveHSCodeHandler(c *gin.Context) {
	logger := getLogger(c)
	mgr := middleware.SessionFromContext(c)

	hsCode := c.Param("hsCode")
	if hsCode == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "hsCode is required")
		return
	}

	profile, err := h.Profiles.RemoveHSCode(mgr.AccountID(), hsCode)
	if err != nil {
		logger.Error("Failed to remove HS code", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to remove HS code, please try again", "")
		return
	}

	if _, err := mgr.Refresh(); err != nil {
		logger.Warn("Session refresh after HS code change failed", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
