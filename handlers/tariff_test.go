package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"niryaat/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTradeRepo struct {
	tariff    *models.Tariff
	tariffErr error
}

func (f *fakeTradeRepo) ListSchemes() ([]models.Scheme, error) { return nil, nil }

func (f *fakeTradeRepo) ListNews(int64) ([]models.NewsItem, error) { return nil, nil }

func (f *fakeTradeRepo) ListProducts() ([]models.Product, error) { return nil, nil }

func (f *fakeTradeRepo) TradeStats(string) ([]models.TradeStat, error) {
	return nil, nil
}
func (f *fakeTradeRepo) ListCountryRelations() ([]models.CountryRelation, error) {
	return nil, nil
}

func (f *fakeTradeRepo) LookupTariff(hsCode, country string) (*models.Tariff, error) {
	if f.tariffErr != nil {
		return nil, f.tariffErr
	}
	if f.tariff != nil && f.tariff.HSCode == hsCode && f.tariff.Country == country {
		return f.tariff, nil
	}
	return nil, nil
}

func performTariffLookup(repo *fakeTradeRepo, url string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)

	NewTariffHandler(repo).LookupTariffHandler(c)
	return w
}

func TestLookupTariffHandler(t *testing.T) {
	mfn := 5.2
	repo := &fakeTradeRepo{
		tariff: &models.Tariff{
			ID:        "t-1",
			HSCode:    "0901.21",
			Country:   "USA",
			MFNTariff: &mfn,
		},
	}

	tests := []struct {
		name           string
		url            string
		expectedStatus int
		expectTariff   bool
	}{
		{
			name:           "exact key returns the single record",
			url:            "/api/market-intel/tariffs?hsCode=0901.21&country=USA",
			expectedStatus: http.StatusOK,
			expectTariff:   true,
		},
		{
			name:           "absent key is no data, not an error",
			url:            "/api/market-intel/tariffs?hsCode=0901.21&country=UK",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing country parameter",
			url:            "/api/market-intel/tariffs?hsCode=0901.21",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing hsCode parameter",
			url:            "/api/market-intel/tariffs?country=USA",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performTariffLookup(repo, tt.url)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusBadRequest {
				return
			}
			var body struct {
				Tariff *models.Tariff `json:"tariff"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.expectTariff {
				require.NotNil(t, body.Tariff)
				assert.Equal(t, "0901.21", body.Tariff.HSCode)
				assert.Equal(t, "USA", body.Tariff.Country)
			} else {
				assert.Nil(t, body.Tariff)
			}
		})
	}
}

func TestLookupTariffHandlerStoreFailure(t *testing.T) {
	repo := &fakeTradeRepo{tariffErr: errors.New("connection refused")}

	w := performTariffLookup(repo, "/api/market-intel/tariffs?hsCode=0901.21&country=USA")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
