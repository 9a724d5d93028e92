package handlers

import (
	"net/http"

	notificationRepo "niryaat/database/repository/notification"
	tradeRepo "niryaat/database/repository/trade"
	"niryaat/middleware"
	"niryaat/models"
	"niryaat/services/eligibility"
	"niryaat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler assembles the landing summary: eligible schemes, latest
// news and the unread notification count.
type DashboardHandler struct {
	Trade         tradeRepo.TradeRepository
	Notifications notificationRepo.NotificationRepository
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(trade tradeRepo.TradeRepository, notifications notificationRepo.NotificationRepository) *DashboardHandler {
	return &DashboardHandler{Trade: trade, Notifications: notifications}
}

// SummaryHandler returns the dashboard summary for the signed-in account.
// Eligibility is computed against the caller's profile; pending-approval
// accounts see the counts too, the gated surfaces stay behind their own
// capabilities.
func (h *DashboardHandler) SummaryHandler(c *gin.Context) {
	logger := getLogger(c)
	mgr := middleware.SessionFromContext(c)
	snap := mgr.Current()

	schemes, err := h.Trade.ListSchemes()
	if err != nil {
		logger.Error("Failed to list schemes for dashboard", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to load dashboard, please try again", "")
		return
	}
	eligible := eligibility.FilterSchemes(schemes, snap.Profile, "")
	if len(eligible) > 3 {
		eligible = eligible[:3]
	}

	news, err := h.Trade.ListNews(3)
	if err != nil {
		logger.Error("Failed to list news for dashboard", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to load dashboard, please try again", "")
		return
	}

	unread := 0
	notifications, err := h.Notifications.ListForAccount(mgr.AccountID())
	if err != nil {
		// The summary stays useful without the badge count.
		logger.Warn("Failed to count notifications for dashboard", zap.Error(err))
	} else {
		for _, n := range notifications {
			if !n.IsRead {
				unread++
			}
		}
	}

	if eligible == nil {
		eligible = []models.Scheme{}
	}
	if news == nil {
		news = []models.NewsItem{}
	}
	c.JSON(http.StatusOK, gin.H{
		"state":               snap.State,
		"trackedHsCodes":      snap.Profile.HSCodes,
		"eligibleSchemes":     eligible,
		"latestNews":          news,
		"unreadNotifications": unread,
	})
}
