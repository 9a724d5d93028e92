package models

import "time"

// Tariff is a duty-rate record keyed uniquely by (hs_code, country).
type Tariff struct {
	ID                     string    `bson:"id" json:"id"`
	HSCode                 string    `bson:"hs_code" json:"hsCode"`
	Country                string    `bson:"country" json:"country"`
	MFNTariff              *float64  `bson:"mfn_tariff" json:"mfnTariff"`
	PreferentialTariff     *float64  `bson:"preferential_tariff" json:"preferentialTariff"`
	RequiredCertifications []string  `bson:"required_certifications" json:"requiredCertifications"`
	ImportDocuments        []string  `bson:"import_documents" json:"importDocuments"`
	LastUpdated            time.Time `bson:"last_updated" json:"lastUpdated"`
}
