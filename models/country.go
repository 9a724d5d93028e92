package models

import "time"

// CountryRelation captures the trade relationship between India and a
// partner country.
type CountryRelation struct {
	ID                 string    `bson:"id" json:"id"`
	CountryCode        string    `bson:"country_code" json:"countryCode"`
	CountryName        string    `bson:"country_name" json:"countryName"`
	TradeAgreementType string    `bson:"trade_agreement_type" json:"tradeAgreementType"`
	FTAStatus          bool      `bson:"fta_status" json:"ftaStatus"`
	TradeBalance       *float64  `bson:"trade_balance" json:"tradeBalance"`
	LastUpdated        time.Time `bson:"last_updated" json:"lastUpdated"`
}
