package handlers

import (
	"net/http"

	tradeRepo "niryaat/database/repository/trade"
	"niryaat/middleware"
	"niryaat/models"
	"niryaat/services/eligibility"
	"niryaat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BenefitsHandler exposes government schemes and trade news.
type BenefitsHandler struct {
	Trade tradeRepo.TradeRepository
}

// NewBenefitsHandler creates a BenefitsHandler.
func NewBenefitsHandler(trade tradeRepo.TradeRepository) *BenefitsHandler {
	return &BenefitsHandler{Trade: trade}
}

// schemeResult is a scheme plus the caller's computed eligibility.
type schemeResult struct {
	models.Scheme
	Eligible bool `json:"eligible"`
}

// ListSchemesHandler lists active schemes. Without explicit filters the
// caller's own profile drives the eligibility match; with filters the
// schemes are matched against the supplied values instead. The search query
// is ANDed on top either way. Each result carries an "eligible" flag
// computed against the caller's profile.
func (h *BenefitsHandler) ListSchemesHandler(c *gin.Context) {
	logger := getLogger(c)
	mgr := middleware.SessionFromContext(c)
	snap := mgr.Current()

	schemes, err := h.Trade.ListSchemes()
	if err != nil {
		logger.Error("Failed to list schemes", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to load schemes, please try again", "")
		return
	}

	query := c.Query("search")
	filters := eligibility.SchemeFilters{
		HSCode:       c.Query("hsCode"),
		Country:      c.Query("country"),
		BusinessType: models.BusinessType(c.Query("businessType")),
		Query:        query,
	}

	var filtered []models.Scheme
	if filters.HSCode != "" || filters.Country != "" || filters.BusinessType != "" {
		filtered = eligibility.FilterSchemesByInput(schemes, filters)
	} else {
		filtered = eligibility.FilterSchemes(schemes, snap.Profile, query)
	}

	results := make([]schemeResult, 0, len(filtered))
	for _, s := range filtered {
		results = append(results, schemeResult{
			Scheme:   s,
			Eligible: eligibility.Matches(snap.Profile, s.Eligibility),
		})
	}
	c.JSON(http.StatusOK, gin.H{"schemes": results})
}

// ListNewsHandler lists the latest trade news, optionally searched by title.
func (h *BenefitsHandler) ListNewsHandler(c *gin.Context) {
	logger := getLogger(c)

	items, err := h.Trade.ListNews(20)
	if err != nil {
		logger.Error("Failed to list news", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to load news, please try again", "")
		return
	}

	filtered := eligibility.FilterNews(items, c.Query("search"))
	if filtered == nil {
		filtered = []models.NewsItem{}
	}
	c.JSON(http.StatusOK, gin.H{"news": filtered})
}
