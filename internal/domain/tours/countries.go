package tours

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"travelgo/internal/domain/i18n"
)

// CountryOption is a selectable country in the catalog filter.
type CountryOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Countries collects distinct country keys with their localized names, first occurrence
// wins, sorted by label with the collation of lang.
func Countries(list []Tour, lang string) []CountryOption {
	seen := make(map[string]struct{}, len(list))
	out := make([]CountryOption, 0, len(list))
	for _, tour := range list {
		key := tour.Location.CountryKey
		label := tour.Location.Country.Get(lang)
		if key == "" || label == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, CountryOption{Key: key, Label: label})
	}

	col := collate.New(language.Make(i18n.Locale(lang)))
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].Label, out[j].Label) < 0
	})
	return out
}
