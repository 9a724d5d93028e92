package models

import "time"

// ImporterRating is an exporter's scorecard for a foreign importer. Scores
// are on a 1 to 5 scale.
type ImporterRating struct {
	ID                 string    `bson:"id" json:"id"`
	ImporterName       string    `bson:"importer_name" json:"importerName"`
	ImporterCountry    string    `bson:"importer_country" json:"importerCountry"`
	RatedBy            string    `bson:"rated_by" json:"ratedBy,omitempty"`
	OverallScore       int       `bson:"overall_score" json:"overallScore"`
	PaymentReliability int       `bson:"payment_reliability" json:"paymentReliability"`
	ComplianceScore    int       `bson:"compliance_score" json:"complianceScore"`
	DisputeHistory     int       `bson:"dispute_history" json:"disputeHistory"`
	ReviewText         string    `bson:"review_text" json:"reviewText,omitempty"`
	IsVerified         bool      `bson:"is_verified" json:"isVerified"`
	IsAnonymous        bool      `bson:"is_anonymous" json:"isAnonymous"`
	CreatedAt          time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updatedAt"`
}
