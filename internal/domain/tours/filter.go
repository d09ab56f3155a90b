package tours

import (
	"strconv"
	"strings"
)

// FilterState is the set of catalog constraints. Empty strings and a zero price mean
// "no constraint".
type FilterState struct {
	Country     string  `json:"country"`
	Price       float64 `json:"price"`
	Days        string  `json:"days"`
	PeriodStart string  `json:"periodStart"`
	PeriodEnd   string  `json:"periodEnd"`
	People      string  `json:"people"`
	Rating      string  `json:"rating"`
}

// ApplyFilters returns the tours matching every active criterion, keeping their order.
func ApplyFilters(list []Tour, state FilterState) []Tour {
	out := make([]Tour, 0, len(list))
	for _, tour := range list {
		if Matches(tour, state) {
			out = append(out, tour)
		}
	}
	return out
}

// Matches reports whether a single tour passes all active criteria.
func Matches(tour Tour, state FilterState) bool {
	if state.Country != "" && tour.Location.CountryKey != state.Country {
		return false
	}
	// A zero ceiling is indistinguishable from "no ceiling".
	if state.Price != 0 && tour.PriceEUR > state.Price {
		return false
	}
	if state.Days != "" && !MatchDuration(tour.Days, state.Days) {
		return false
	}
	if state.PeriodStart != "" && state.PeriodEnd != "" && !IsAvailable(tour, state.PeriodStart, state.PeriodEnd) {
		return false
	}
	if state.People != "" {
		if people, ok := parseNumber(state.People); ok && float64(tour.TravelerCapacity) < people {
			return false
		}
	}
	if state.Rating != "" {
		if rating, ok := parseNumber(state.Rating); ok && tour.Rating < rating {
			return false
		}
	}
	return true
}

// parseNumber mirrors form-value coercion: non-numeric input constrains nothing.
func parseNumber(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
