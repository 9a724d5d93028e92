package handlers

import (
	"net/http"

	tradeRepo "niryaat/database/repository/trade"
	"niryaat/models"
	"niryaat/services/eligibility"
	"niryaat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MarketHandler exposes market-intel products and trade statistics.
type MarketHandler struct {
	Trade tradeRepo.TradeRepository
}

// NewMarketHandler creates a MarketHandler.
func NewMarketHandler(trade tradeRepo.TradeRepository) *MarketHandler {
	return &MarketHandler{Trade: trade}
}

// ListProductsHandler lists products, searchable by name or HS code.
func (h *MarketHandler) ListProductsHandler(c *gin.Context) {
	logger := getLogger(c)

	products, err := h.Trade.ListProducts()
	if err != nil {
		logger.Error("Failed to list products", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to load products, please try again", "")
		return
	}

	query := c.Query("search")
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if eligibility.MatchesQuery(query, p.Name, p.HSCode) {
			filtered = append(filtered, p)
		}
	}
	c.JSON(http.StatusOK, gin.H{"products": filtered})
}

// TradeStatsHandler returns yearly statistics for an HS code.
func (h *MarketHandler) TradeStatsHandler(c *gin.Context) {
	logger := getLogger(c)

	hsCode := c.Param("hsCode")
	stats, err := h.Trade.TradeStats(hsCode)
	if err != nil {
		logger.Error("Failed to load trade stats", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to load trade statistics, please try again", "")
		return
	}
	if stats == nil {
		stats = []models.TradeStat{}
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
