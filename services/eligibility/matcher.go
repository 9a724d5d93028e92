package eligibility

import "niryaat/models"

// Matches reports whether a profile satisfies a benefit record's
// eligibility predicate. The three constraint categories are independent
// and ANDed:
//
//   - HS codes: the profile qualifies if any of its tracked codes is in the
//     eligible set.
//   - Countries: membership of the profile's single country.
//   - Business types: membership of the profile's business type.
//
// A nil set is unconstrained and matches any profile; an empty non-nil set
// is a real constraint and matches nothing.
func Matches(profile *models.Profile, pred models.EligibilityPredicate) bool {
	if profile == nil {
		return false
	}
	if pred.HSCodes != nil && !intersects(pred.HSCodes, profile.HSCodes) {
		return false
	}
	if pred.Countries != nil && !contains(pred.Countries, profile.Country) {
		return false
	}
	if pred.BusinessTypes != nil && !containsType(pred.BusinessTypes, profile.BusinessType) {
		return false
	}
	return true
}

// FilterSchemes returns the schemes whose predicate the profile satisfies
// and whose name or description contains the search query. The input order
// is preserved; presentation ordering belongs to the upstream fetch.
func FilterSchemes(schemes []models.Scheme, profile *models.Profile, query string) []models.Scheme {
	var out []models.Scheme
	for _, s := range schemes {
		if !Matches(profile, s.Eligibility) {
			continue
		}
		if !MatchesQuery(query, s.Name, s.Description) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// SchemeFilters are the optional user-supplied filter inputs on the
// benefits page. Zero values mean "don't filter on this category".
type SchemeFilters struct {
	HSCode       string
	Country      string
	BusinessType models.BusinessType
	Query        string
}

// FilterSchemesByInput filters schemes against explicit filter values. A
// supplied value must appear in the scheme's eligible set, so a scheme
// whose set is unconstrained for that category is excluded. The caller
// asked for records that name the value.
func FilterSchemesByInput(schemes []models.Scheme, f SchemeFilters) []models.Scheme {
	var out []models.Scheme
	for _, s := range schemes {
		if f.HSCode != "" && !contains(s.Eligibility.HSCodes, f.HSCode) {
			continue
		}
		if f.Country != "" && !contains(s.Eligibility.Countries, f.Country) {
			continue
		}
		if f.BusinessType != "" && !containsType(s.Eligibility.BusinessTypes, f.BusinessType) {
			continue
		}
		if !MatchesQuery(f.Query, s.Name, s.Description) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FilterNews returns the news items whose title contains the query,
// preserving input order.
func FilterNews(items []models.NewsItem, query string) []models.NewsItem {
	var out []models.NewsItem
	for _, n := range items {
		if MatchesQuery(query, n.Title) {
			out = append(out, n)
		}
	}
	return out
}

func intersects(eligible, tracked []string) bool {
	for _, t := range tracked {
		for _, e := range eligible {
			if t == e {
				return true
			}
		}
	}
	return false
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsType(set []models.BusinessType, v models.BusinessType) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
