package tradeRepo

import "niryaat/models"

// TradeRepository defines read access to the trade reference data: benefit
// schemes, tariffs, news, market-intel products and country relations.
//
// List methods return every active candidate in presentation order (recency);
// eligibility filtering is the matcher's job, so no predicate is pushed down
// to the store.
type TradeRepository interface {
	// ListSchemes retrieves all active schemes, newest first.
	ListSchemes() ([]models.Scheme, error)
	// ListNews retrieves the latest news entries, newest first.
	ListNews(limit int64) ([]models.NewsItem, error)
	// LookupTariff retrieves the single tariff record for the exact
	// (hsCode, country) key. Returns nil when absent; the key is unique.
	LookupTariff(hsCode, country string) (*models.Tariff, error)
	// ListProducts retrieves all market-intel products.
	ListProducts() ([]models.Product, error)
	// TradeStats retrieves yearly statistics for an HS code, oldest first.
	TradeStats(hsCode string) ([]models.TradeStat, error)
	// ListCountryRelations retrieves all country relations by name.
	ListCountryRelations() ([]models.CountryRelation, error)
}
