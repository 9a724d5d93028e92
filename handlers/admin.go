package handlers

import (
	"net/http"

	"niryaat/cron"
	profileRepo "niryaat/database/repository/profile"
	"niryaat/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AdminHandler exposes the administrative approval surface. The session
// core never calls SetApproval itself; approvals flow through here and
// reach live sessions via the approval queue.
type AdminHandler struct {
	Profiles       profileRepo.ProfileRepository
	ApprovalClient *asynq.Client
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(profiles profileRepo.ProfileRepository, approvalClient *asynq.Client) *AdminHandler {
	return &AdminHandler{Profiles: profiles, ApprovalClient: approvalClient}
}

// ApproveAccountHandler flips the approval flag for an account and enqueues
// the approval event so live sessions observe it without re-authentication.
func (h *AdminHandler) ApproveAccountHandler(c *gin.Context) {
	logger := getLogger(c)

	accountID := c.Param("accountID")
	if accountID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "accountID is required")
		return
	}

	if err := h.Profiles.SetApproval(accountID, true); err != nil {
		logger.Error("Failed to set approval", zap.Error(err), zap.String("accountID", accountID))
		utils.JSONError(c, http.StatusBadGateway, "Approval failed, please try again", "")
		return
	}

	if err := cron.EnqueueApprovalGranted(h.ApprovalClient, accountID); err != nil {
		logger.Error("Failed to enqueue approval event", zap.Error(err), zap.String("accountID", accountID))
	}

	c.JSON(http.StatusOK, gin.H{"status": "approved", "accountId": accountID})
}
