package handlers

import (
	"net/http"

	tradeRepo "niryaat/database/repository/trade"
	"niryaat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TariffHandler exposes the tariff point lookup.
type TariffHandler struct {
	Trade tradeRepo.TradeRepository
}

// NewTariffHandler creates a TariffHandler.
func NewTariffHandler(trade tradeRepo.TradeRepository) *TariffHandler {
	return &TariffHandler{Trade: trade}
}

// LookupTariffHandler returns the single tariff record for an exact
// (hsCode, country) key, or an empty result when none exists. Absence is
// "no data", not a failure.
func (h *TariffHandler) LookupTariffHandler(c *gin.Context) {
	logger := getLogger(c)

	hsCode := c.Query("hsCode")
	country := c.Query("country")
	if hsCode == "" || country == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "hsCode and country are required")
		return
	}

	tariff, err := h.Trade.LookupTariff(hsCode, country)
	if err != nil {
		logger.Error("Tariff lookup failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Tariff lookup failed, please try again", "")
		return
	}
	if tariff == nil {
		c.JSON(http.StatusNotFound, gin.H{"tariff": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tariff": tariff})
}
