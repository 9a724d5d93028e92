package handlers

import (
	"net/http"

	ratingRepo "niryaat/database/repository/rating"
	"niryaat/middleware"
	"niryaat/models"
	"niryaat/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RatingHandler exposes the importer rating scorecards.
type RatingHandler struct {
	Ratings ratingRepo.RatingRepository
}

// NewRatingHandler creates a RatingHandler.
func NewRatingHandler(ratings ratingRepo.RatingRepository) *RatingHandler {
	return &RatingHandler{Ratings: ratings}
}

// ListRatingsHandler lists ratings, optionally narrowed to one importer.
// Anonymous ratings are returned with the rater identity blanked.
func (h *RatingHandler) ListRatingsHandler(c *gin.Context) {
	logger := getLogger(c)

	items, err := h.Ratings.List(c.Query("importer"))
	if err != nil {
		logger.Error("Failed to list ratings", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to load ratings, please try again", "")
		return
	}

	for i := range items {
		if items[i].IsAnonymous {
			items[i].RatedBy = ""
		}
	}
	if items == nil {
		items = []models.ImporterRating{}
	}
	c.JSON(http.StatusOK, gin.H{"ratings": items})
}

type createRatingRequest struct {
	ImporterName       string `json:"importerName" binding:"required"`
	ImporterCountry    string `json:"importerCountry" binding:"required"`
	OverallScore       int    `json:"overallScore" binding:"required,min=1,max=5"`
	PaymentReliability int    `json:"paymentReliability" binding:"required,min=1,max=5"`
	ComplianceScore    int    `json:"complianceScore" binding:"required,min=1,max=5"`
	DisputeHistory     int    `json:"disputeHistory" binding:"required,min=1,max=5"`
	ReviewText         string `json:"reviewText"`
	IsAnonymous        bool   `json:"isAnonymous"`
}

// CreateRatingHandler records a new importer rating by the signed-in account.
// Ratings start unverified.
func (h *RatingHandler) CreateRatingHandler(c *gin.Context) {
	logger := getLogger(c)
	mgr := middleware.SessionFromContext(c)

	var req createRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid rating payload", err.Error())
		return
	}

	rating := &models.ImporterRating{
		ID:                 uuid.New().String(),
		ImporterName:       req.ImporterName,
		ImporterCountry:    req.ImporterCountry,
		RatedBy:            mgr.AccountID(),
		OverallScore:       req.OverallScore,
		PaymentReliability: req.PaymentReliability,
		ComplianceScore:    req.ComplianceScore,
		DisputeHistory:     req.DisputeHistory,
		ReviewText:         req.ReviewText,
		IsVerified:         false,
		IsAnonymous:        req.IsAnonymous,
	}
	if err := h.Ratings.Create(rating); err != nil {
		logger.Error("Failed to create rating", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to save rating, please try again", "")
		return
	}

	if rating.IsAnonymous {
		rating.RatedBy = ""
	}
	c.JSON(http.StatusCreated, gin.H{"rating": rating})
}
