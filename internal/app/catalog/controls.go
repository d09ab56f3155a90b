package catalog

import (
	"errors"
	"strconv"

	"travelgo/internal/domain/tours"
)

var ErrUnknownFilter = errors.New("catalog: unknown filter key")

// Filter keys accepted by ClearFilter and used by summary chips.
const (
	KeyCountry = "country"
	KeyPrice   = "price"
	KeyPeriod  = "period"
	KeyDays    = "days"
	KeyPeople  = "people"
	KeyRating  = "rating"
)

// Controls are the raw values of the filter form. FilterState is derived from them.
type Controls struct {
	Country     string  `json:"country"`
	Price       float64 `json:"price"`
	Days        string  `json:"days"`
	PeriodStart string  `json:"periodStart"`
	PeriodEnd   string  `json:"periodEnd"`
	People      string  `json:"people"`
	Rating      string  `json:"rating"`
}

// Changes is a partial control update; nil fields are left as they are.
type Changes struct {
	Country     *string  `json:"country,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Days        *string  `json:"days,omitempty"`
	PeriodStart *string  `json:"periodStart,omitempty"`
	PeriodEnd   *string  `json:"periodEnd,omitempty"`
	People      *string  `json:"people,omitempty"`
	Rating      *string  `json:"rating,omitempty"`
}

func (c *Controls) apply(ch Changes) {
	if ch.Country != nil {
		c.Country = *ch.Country
	}
	if ch.Price != nil {
		c.Price = *ch.Price
	}
	if ch.Days != nil {
		c.Days = *ch.Days
	}
	if ch.PeriodStart != nil {
		c.PeriodStart = *ch.PeriodStart
	}
	if ch.PeriodEnd != nil {
		c.PeriodEnd = *ch.PeriodEnd
	}
	if ch.People != nil {
		c.People = *ch.People
	}
	if ch.Rating != nil {
		c.Rating = *ch.Rating
	}
}

// state re-derives the filter state from scratch.
func (c Controls) state() tours.FilterState {
	return tours.FilterState{
		Country:     c.Country,
		Price:       c.Price,
		Days:        c.Days,
		PeriodStart: c.PeriodStart,
		PeriodEnd:   c.PeriodEnd,
		People:      c.People,
		Rating:      c.Rating,
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
