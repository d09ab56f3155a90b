package catalog

import (
	"travelgo/internal/domain/i18n"
	"travelgo/internal/domain/tours"
)

// Option is one entry of a select-backed filter.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type selectSpec struct {
	anyKey     string
	optionsKey string
	values     []string
}

var (
	peopleValues = []string{"1", "2", "3", "4"}
	ratingValues = []string{"4.6", "4.8"}

	selectSpecs = map[string]selectSpec{
		KeyDays:   {anyKey: "anyDuration", optionsKey: "daysOptions", values: tours.DurationBuckets},
		KeyPeople: {anyKey: "anyPeople", optionsKey: "peopleOptions", values: peopleValues},
		KeyRating: {anyKey: "anyRating", optionsKey: "ratingOptions", values: ratingValues},
	}
)

const defaultAnyLabel = "Любая"

// buildOptions renders the localized options of a fixed select.
func buildOptions(key, selected string, filtersCopy i18n.Block) []Option {
	spec := selectSpecs[key]
	labels := filtersCopy.Strings(spec.optionsKey, nil)
	out := make([]Option, 0, len(spec.values)+1)
	out = append(out, Option{Value: "", Label: filtersCopy.String(spec.anyKey, defaultAnyLabel), Selected: selected == ""})
	for i, value := range spec.values {
		label := value
		if i < len(labels) && labels[i] != "" {
			label = labels[i]
		}
		out = append(out, Option{Value: value, Label: label, Selected: value == selected})
	}
	return out
}

func buildCountryOptions(countries []tours.CountryOption, selected string, filtersCopy i18n.Block) []Option {
	out := make([]Option, 0, len(countries)+1)
	out = append(out, Option{Value: "", Label: filtersCopy.String("anyCountry", defaultAnyLabel), Selected: selected == ""})
	for _, c := range countries {
		out = append(out, Option{Value: c.Key, Label: c.Label, Selected: c.Key == selected})
	}
	return out
}

// pick mirrors selecting a value on a custom select: unknown values fall back to the first option.
func pick(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return value
		}
	}
	if len(options) == 0 {
		return value
	}
	return options[0].Value
}

// selectedLabel is the chip label of a select; "" when nothing is chosen.
func selectedLabel(options []Option, value string) string {
	if value == "" {
		return ""
	}
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
