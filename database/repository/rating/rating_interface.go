package ratingRepo

import "niryaat/models"

// RatingRepository defines methods for importer rating access.
type RatingRepository interface {
	// Create inserts a new rating.
	Create(rating *models.ImporterRating) error
	// List retrieves ratings newest first, optionally narrowed to one
	// importer name.
	List(importerName string) ([]models.ImporterRating, error)
}
