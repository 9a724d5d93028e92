package models

import "time"

// EligibilityPredicate is the set of optional constraints a benefit record
// imposes on qualifying profiles. A nil slice means unconstrained (matches
// any profile); an empty non-nil slice is a real constraint that matches
// nothing. Mongo preserves null vs [] so the distinction survives storage.
type EligibilityPredicate struct {
	HSCodes       []string       `bson:"eligible_hs_codes" json:"eligibleHsCodes"`
	Countries     []string       `bson:"eligible_countries" json:"eligibleCountries"`
	BusinessTypes []BusinessType `bson:"eligible_business_types" json:"eligibleBusinessTypes"`
}

// Scheme is a government benefit or incentive record.
type Scheme struct {
	ID           string               `bson:"id" json:"id"`
	Name         string               `bson:"scheme_name" json:"schemeName"`
	Type         string               `bson:"scheme_type" json:"schemeType"`
	Description  string               `bson:"description" json:"description"`
	Benefits     string               `bson:"benefits" json:"benefits"`
	Criteria     string               `bson:"eligibility_criteria" json:"eligibilityCriteria"`
	Eligibility  EligibilityPredicate `bson:",inline" json:"eligibility"`
	OfficialLink string               `bson:"official_link" json:"officialLink"`
	IsActive     bool                 `bson:"is_active" json:"isActive"`
	CreatedAt    time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updated_at" json:"updatedAt"`
}
