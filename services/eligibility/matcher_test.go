package eligibility

import (
	"testing"

	"niryaat/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileWith(codes []string, country string, bt models.BusinessType) *models.Profile {
	return &models.Profile{
		AccountID:    "acc-1",
		Country:      country,
		BusinessType: bt,
		HSCodes:      codes,
	}
}

func TestMatchesHSCodes(t *testing.T) {
	tests := []struct {
		name     string
		eligible []string
		tracked  []string
		expected bool
	}{
		{
			name:     "nil set is unconstrained",
			eligible: nil,
			tracked:  []string{"1006"},
			expected: true,
		},
		{
			name:     "nil set matches empty tracked set",
			eligible: nil,
			tracked:  nil,
			expected: true,
		},
		{
			name:     "constraint against empty tracked set",
			eligible: []string{"1006"},
			tracked:  []string{},
			expected: false,
		},
		{
			name:     "non-empty intersection",
			eligible: []string{"1006", "0901"},
			tracked:  []string{"0901"},
			expected: true,
		},
		{
			name:     "disjoint sets",
			eligible: []string{"1006"},
			tracked:  []string{"5208"},
			expected: false,
		},
		{
			name:     "empty non-nil set matches nothing",
			eligible: []string{},
			tracked:  []string{"1006"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := profileWith(tt.tracked, "India", models.BusinessMSME)
			pred := models.EligibilityPredicate{HSCodes: tt.eligible}
			assert.Equal(t, tt.expected, Matches(profile, pred))
		})
	}
}

func TestMatchesCountryAndBusinessType(t *testing.T) {
	tests := []struct {
		name     string
		pred     models.EligibilityPredicate
		country  string
		bt       models.BusinessType
		expected bool
	}{
		{
			name: "country membership",
			pred: models.EligibilityPredicate{
				Countries:     []string{"USA"},
				BusinessTypes: []models.BusinessType{models.BusinessMSME, models.BusinessStartup},
			},
			country:  "USA",
			bt:       models.BusinessMSME,
			expected: true,
		},
		{
			name: "country miss fails the whole match",
			pred: models.EligibilityPredicate{
				Countries:     []string{"USA"},
				BusinessTypes: []models.BusinessType{models.BusinessMSME, models.BusinessStartup},
			},
			country:  "UK",
			bt:       models.BusinessMSME,
			expected: false,
		},
		{
			name: "business type miss",
			pred: models.EligibilityPredicate{
				BusinessTypes: []models.BusinessType{models.BusinessStartup},
			},
			country:  "USA",
			bt:       models.BusinessEnterprise,
			expected: false,
		},
		{
			name:     "fully unconstrained predicate",
			pred:     models.EligibilityPredicate{},
			country:  "",
			bt:       "",
			expected: true,
		},
		{
			name: "empty non-nil country set matches nothing",
			pred: models.EligibilityPredicate{
				Countries: []string{},
			},
			country:  "USA",
			bt:       models.BusinessMSME,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := profileWith([]string{"0901"}, tt.country, tt.bt)
			assert.Equal(t, tt.expected, Matches(profile, tt.pred))
		})
	}
}

func TestMatchesNilProfile(t *testing.T) {
	assert.False(t, Matches(nil, models.EligibilityPredicate{}))
}

func TestFilterSchemesPreservesOrder(t *testing.T) {
	profile := profileWith([]string{"0901"}, "USA", models.BusinessMSME)

	schemes := []models.Scheme{
		{ID: "a", Name: "Alpha", Eligibility: models.EligibilityPredicate{}},
		{ID: "b", Name: "Beta", Eligibility: models.EligibilityPredicate{Countries: []string{"UK"}}},
		{ID: "c", Name: "Gamma", Eligibility: models.EligibilityPredicate{HSCodes: []string{"0901"}}},
		{ID: "d", Name: "Delta", Eligibility: models.EligibilityPredicate{}},
	}

	out := FilterSchemes(schemes, profile, "")
	require.Len(t, out, 3)
	assert.Equal(t, []string{"a", "c", "d"}, []string{out[0].ID, out[1].ID, out[2].ID})
}

func TestFilterSchemesSearchQuery(t *testing.T) {
	profile := profileWith(nil, "USA", models.BusinessMSME)

	schemes := []models.Scheme{
		{ID: "a", Name: "Export Incentive", Description: "for coffee growers"},
		{ID: "b", Name: "Duty Remission", Description: "textiles only"},
	}

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "empty query matches everything", query: "", expected: []string{"a", "b"}},
		{name: "case-insensitive name match", query: "EXPORT", expected: []string{"a"}},
		{name: "description match", query: "coffee", expected: []string{"a"}},
		{name: "no match", query: "pharma", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := FilterSchemes(schemes, profile, tt.query)
			var ids []string
			for _, s := range out {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFilterSchemesByInput(t *testing.T) {
	schemes := []models.Scheme{
		{ID: "wild", Name: "Wildcard", Eligibility: models.EligibilityPredicate{}},
		{ID: "rice", Name: "Rice Scheme", Eligibility: models.EligibilityPredicate{
			HSCodes:       []string{"1006"},
			Countries:     []string{"USA", "UAE"},
			BusinessTypes: []models.BusinessType{models.BusinessMSME},
		}},
	}

	// An explicit filter asks for records that name the value, so the
	// unconstrained scheme is excluded.
	out := FilterSchemesByInput(schemes, SchemeFilters{HSCode: "1006"})
	require.Len(t, out, 1)
	assert.Equal(t, "rice", out[0].ID)

	out = FilterSchemesByInput(schemes, SchemeFilters{Country: "UAE", BusinessType: models.BusinessMSME})
	require.Len(t, out, 1)
	assert.Equal(t, "rice", out[0].ID)

	out = FilterSchemesByInput(schemes, SchemeFilters{Country: "UK"})
	assert.Empty(t, out)

	// No filters at all passes everything through.
	out = FilterSchemesByInput(schemes, SchemeFilters{})
	assert.Len(t, out, 2)
}

func TestFilterNews(t *testing.T) {
	items := []models.NewsItem{
		{ID: "1", Title: "CEPA boosts agri exports"},
		{ID: "2", Title: "Textile quota update"},
	}

	out := FilterNews(items, "cepa")
	require.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)

	assert.Len(t, FilterNews(items, ""), 2)
	assert.Empty(t, FilterNews(items, "pharma"))
}
