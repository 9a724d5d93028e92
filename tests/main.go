// Seeds the reference collections (schemes, tariffs, news, products,
// country relations) with development data.
package main

import (
	"context"
	"log"
	"time"

	"niryaat/config"
	"niryaat/database"
	"niryaat/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()

	schemes := []models.Scheme{
		{
			ID:          uuid.New().String(),
			Name:        "RoDTEP - Remission of Duties and Taxes on Exported Products",
			Type:        "remission",
			Description: "Refunds embedded central, state and local duties on exported products.",
			Benefits:    "0.5% to 4.3% of FOB value remitted as transferable scrips.",
			Criteria:    "All exporters of notified products with a valid IEC.",
			Eligibility: models.EligibilityPredicate{
				HSCodes: nil, Countries: nil, BusinessTypes: nil,
			},
			OfficialLink: "https://www.dgft.gov.in/CP/?opt=RoDTEP",
			IsActive:     true,
			CreatedAt:    now.Add(-72 * time.Hour),
			UpdatedAt:    now,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Agriculture Export Promotion Scheme",
			Type:        "incentive",
			Description: "Freight and marketing assistance for agricultural exports to select markets.",
			Benefits:    "Reimbursement of up to 25% of freight costs.",
			Criteria:    "MSME and startup exporters of rice and coffee to the USA and UAE.",
			Eligibility: models.EligibilityPredicate{
				HSCodes:       []string{"1006", "0901"},
				Countries:     []string{"USA", "UAE"},
				BusinessTypes: []models.BusinessType{models.BusinessMSME, models.BusinessStartup},
			},
			OfficialLink: "https://apeda.gov.in",
			IsActive:     true,
			CreatedAt:    now.Add(-48 * time.Hour),
			UpdatedAt:    now,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Interest Equalisation Scheme",
			Type:        "credit",
			Description: "Interest subvention on pre and post shipment rupee export credit.",
			Benefits:    "3% interest equalisation for MSME manufacturer exporters.",
			Criteria:    "MSME exporters across all product lines.",
			Eligibility: models.EligibilityPredicate{
				BusinessTypes: []models.BusinessType{models.BusinessMSME},
			},
			OfficialLink: "https://www.rbi.org.in",
			IsActive:     true,
			CreatedAt:    now.Add(-24 * time.Hour),
			UpdatedAt:    now,
		},
	}

	mfnCoffee := 5.2
	prefCoffee := 0.0
	mfnRice := 11.2
	tariffs := []models.Tariff{
		{
			ID: uuid.New().String(), HSCode: "0901.21", Country: "USA",
			MFNTariff: &mfnCoffee, PreferentialTariff: &prefCoffee,
			RequiredCertifications: []string{"FDA Registration", "Phytosanitary Certificate"},
			ImportDocuments:        []string{"Commercial Invoice", "Bill of Lading", "Entry Summary"},
			LastUpdated:            now,
		},
		{
			ID: uuid.New().String(), HSCode: "1006.30", Country: "UAE",
			MFNTariff:              &mfnRice,
			RequiredCertifications: []string{"Halal Certificate"},
			ImportDocuments:        []string{"Commercial Invoice", "Certificate of Origin"},
			LastUpdated:            now,
		},
	}

	news := []models.NewsItem{
		{
			ID: uuid.New().String(), Title: "India-UAE CEPA boosts agri exports",
			Content: "Exporters report a 14% rise in agricultural shipments under the CEPA tariff lines.",
			Category: "policy", Sector: "agriculture", Source: "Trade Desk",
			IsFeatured: true, PublishedAt: now.Add(-6 * time.Hour), CreatedAt: now,
		},
		{
			ID: uuid.New().String(), Title: "New RoDTEP rates notified for textiles",
			Content: "Revised remission rates apply to exports from next quarter.",
			Category: "schemes", Sector: "textiles", Source: "DGFT",
			PublishedAt: now.Add(-30 * time.Hour), CreatedAt: now,
		},
	}

	marketSize := 2400.0
	products := []models.Product{
		{
			ID: uuid.New().String(), HSCode: "0901", Name: "Coffee",
			Category: "agriculture", Description: "Green and roasted coffee beans.",
			TrendingStatus: models.TrendingHot, MarketSize: &marketSize,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.New().String(), HSCode: "1006", Name: "Rice",
			Category: "agriculture", Description: "Basmati and non-basmati rice.",
			TrendingStatus: models.TrendingStable,
			CreatedAt:      now, UpdatedAt: now,
		},
	}

	balance := 31.4
	relations := []models.CountryRelation{
		{
			ID: uuid.New().String(), CountryCode: "US", CountryName: "United States",
			TradeAgreementType: "MFN", FTAStatus: false, TradeBalance: &balance, LastUpdated: now,
		},
		{
			ID: uuid.New().String(), CountryCode: "AE", CountryName: "United Arab Emirates",
			TradeAgreementType: "CEPA", FTAStatus: true, LastUpdated: now,
		},
	}

	seed := []struct {
		coll string
		docs []interface{}
	}{
		{"schemes", toDocs(schemes)},
		{"tariffs", toDocs(tariffs)},
		{"news", toDocs(news)},
		{"products", toDocs(products)},
		{"country_relations", toDocs(relations)},
	}

	for _, s := range seed {
		coll := db.Collection(s.coll)
		if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", s.coll, err)
		}
		if _, err := coll.InsertMany(ctx, s.docs); err != nil {
			log.Fatalf("Failed to seed %s collection: %v", s.coll, err)
		}
		log.Printf("Seeded %d documents into %s", len(s.docs), s.coll)
	}
}

func toDocs[T any](items []T) []interface{} {
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	return docs
}
