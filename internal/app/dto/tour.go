package dto

import (
	"travelgo/internal/domain/tours"
)

// TourCard is the localized catalog entry of a tour.
type TourCard struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	CountryKey       string   `json:"country_key"`
	Country          string   `json:"country"`
	Region           string   `json:"region"`
	PriceEUR         float64  `json:"price_eur"`
	Days             int      `json:"days"`
	TravelerCapacity int      `json:"traveler_capacity"`
	Rating           float64  `json:"rating"`
	Badges           []string `json:"badges"`
	Image            string   `json:"image,omitempty"`
}

// TourCatalog is the filtered collection with the options needed to render the filter form.
type TourCatalog struct {
	Items     []TourCard            `json:"items"`
	Count     int                   `json:"count"`
	Total     int                   `json:"total"`
	Filters   tours.FilterState     `json:"filters"`
	Countries []tours.CountryOption `json:"countries"`
}

type ProgramDay struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type BusyPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TourDetail is the localized tour page.
type TourDetail struct {
	TourCard
	Images      []string     `json:"images"`
	Program     []ProgramDay `json:"program"`
	Included    []string     `json:"included"`
	Excluded    []string     `json:"excluded"`
	BusyPeriods []BusyPeriod `json:"busy_periods"`
	Available   *bool        `json:"available,omitempty"`
}

func MapTourCard(t tours.Tour, lang string) TourCard {
	card := TourCard{
		ID:               string(t.ID),
		Title:            t.Title.Get(lang),
		ShortDescription: t.ShortDescription.Get(lang),
		CountryKey:       t.Location.CountryKey,
		Country:          t.Location.Country.Get(lang),
		Region:           t.Location.Region.Get(lang),
		PriceEUR:         t.PriceEUR,
		Days:             t.Days,
		TravelerCapacity: t.TravelerCapacity,
		Rating:           t.Rating,
		Badges:           append([]string{}, t.Badges...),
	}
	if len(t.Images) > 0 {
		card.Image = t.Images[0]
	}
	return card
}

func MapCatalog(all, filtered []tours.Tour, state tours.FilterState, lang string) TourCatalog {
	items := make([]TourCard, 0, len(filtered))
	for _, t := range filtered {
		items = append(items, MapTourCard(t, lang))
	}
	return TourCatalog{
		Items:     items,
		Count:     len(items),
		Total:     len(all),
		Filters:   state,
		Countries: tours.Countries(all, lang),
	}
}

func MapTourDetail(t tours.Tour, lang string) TourDetail {
	detail := TourDetail{
		TourCard: MapTourCard(t, lang),
		Images:   append([]string{}, t.Images...),
		Included: t.Included.Get(lang),
		Excluded: t.Excluded.Get(lang),
	}
	for _, day := range t.Program {
		detail.Program = append(detail.Program, ProgramDay{Title: day.Title.Get(lang), Description: day.Description.Get(lang)})
	}
	for _, p := range t.BusyPeriods {
		detail.BusyPeriods = append(detail.BusyPeriods, BusyPeriod{Start: p.Start, End: p.End})
	}
	return detail
}
