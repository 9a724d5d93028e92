package handlers

import (
	"net/http"

	tradeRepo "niryaat/database/repository/trade"
	"niryaat/models"
	"niryaat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CountryHandler exposes country trade-relation data.
type CountryHandler struct {
	Trade tradeRepo.TradeRepository
}

// NewCountryHandler creates a CountryHandler.
func NewCountryHandler(trade tradeRepo.TradeRepository) *CountryHandler {
	return &CountryHandler{Trade: trade}
}

// ListCountryRelationsHandler lists country relations.
func (h *CountryHandler) ListCountryRelationsHandler(c *gin.Context) {
	logger := getLogger(c)

	relations, err := h.Trade.ListCountryRelations()
	if err != nil {
		logger.Error("Failed to list country relations", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to load country relations, please try again", "")
		return
	}
	if relations == nil {
		relations = []models.CountryRelation{}
	}
	c.JSON(http.StatusOK, gin.H{"relations": relations})
}
