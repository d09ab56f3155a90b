package search

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedDetail = errors.New("search: malformed search detail")

// Detail is the payload handed from the search form to the catalog.
// A nil field means "not provided" and leaves the corresponding filter untouched.
type Detail struct {
	CountryKey  *string `json:"countryKey,omitempty"`
	DaysRange   *string `json:"daysRange,omitempty"`
	People      *string `json:"people,omitempty"`
	PeriodStart *string `json:"periodStart,omitempty"`
	PeriodEnd   *string `json:"periodEnd,omitempty"`
}

// NewDetail builds a detail with every field provided.
func NewDetail(countryKey, daysRange, people, periodStart, periodEnd string) Detail {
	return Detail{
		CountryKey:  &countryKey,
		DaysRange:   &daysRange,
		People:      &people,
		PeriodStart: &periodStart,
		PeriodEnd:   &periodEnd,
	}
}

// HasPeriod reports whether either period bound was provided.
func (d Detail) HasPeriod() bool {
	return d.PeriodStart != nil || d.PeriodEnd != nil
}

// Period returns both bounds, a missing one as "".
func (d Detail) Period() (string, string) {
	return deref(d.PeriodStart), deref(d.PeriodEnd)
}

func (d Detail) Encode() ([]byte, error) {
	return json.Marshal(d)
}

// DecodeDetail parses a stored detail. Anything but a JSON object is malformed.
func DecodeDetail(raw []byte) (Detail, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return Detail{}, ErrMalformedDetail
	}
	var d Detail
	if err := json.Unmarshal(raw, &d); err != nil {
		return Detail{}, fmt.Errorf("%w: %v", ErrMalformedDetail, err)
	}
	return d, nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
