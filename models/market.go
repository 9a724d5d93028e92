package models

import "time"

// TrendingStatus labels a product's current demand trend.
type TrendingStatus string

const (
	TrendingHot    TrendingStatus = "hot"
	TrendingStable TrendingStatus = "stable"
	TrendingCold   TrendingStatus = "cold"
)

// Product is a market-intel entry for a traded product category.
type Product struct {
	ID                 string         `bson:"id" json:"id"`
	HSCode             string         `bson:"hs_code" json:"hsCode"`
	Name               string         `bson:"product_name" json:"productName"`
	Category           string         `bson:"category" json:"category"`
	Description        string         `bson:"description" json:"description"`
	TrendingStatus     TrendingStatus `bson:"trending_status" json:"trendingStatus"`
	MarketSize         *float64       `bson:"market_size" json:"marketSize"`
	EstimatedMarginMin *float64       `bson:"estimated_margin_min" json:"estimatedMarginMin"`
	EstimatedMarginMax *float64       `bson:"estimated_margin_max" json:"estimatedMarginMax"`
	CreatedAt          time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time      `bson:"updated_at" json:"updatedAt"`
}

// TradeStat is a yearly export/import statistic for an HS code and country.
type TradeStat struct {
	ID          string    `bson:"id" json:"id"`
	HSCode      string    `bson:"hs_code" json:"hsCode"`
	Country     string    `bson:"country" json:"country"`
	Year        int       `bson:"year" json:"year"`
	ExportValue float64   `bson:"export_value" json:"exportValue"`
	ImportValue float64   `bson:"import_value" json:"importValue"`
	GrowthRate  *float64  `bson:"growth_rate" json:"growthRate"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
