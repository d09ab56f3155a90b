package tours

import (
	"context"
	"errors"

	"travelgo/internal/domain/i18n"
)

var ErrTourNotFound = errors.New("tours: tour not found")

// TourID identifies a tour inside the collection.
type TourID string

// Location carries the filter key and localized display names.
type Location struct {
	CountryKey string    `json:"countryKey" bson:"countryKey"`
	Country    i18n.Text `json:"country" bson:"country"`
	Region     i18n.Text `json:"region" bson:"region"`
}

// BusyPeriod is a closed date interval during which the tour takes no new bookings.
type BusyPeriod struct {
	Start string `json:"start" bson:"start"`
	End   string `json:"end" bson:"end"`
}

// ProgramDay is one itinerary entry shown on the tour page.
type ProgramDay struct {
	Title       i18n.Text `json:"title" bson:"title"`
	Description i18n.Text `json:"description" bson:"description"`
}

// Tour is a read-only record of the static tour collection.
type Tour struct {
	ID               TourID       `json:"id" bson:"_id"`
	Title            i18n.Text    `json:"title" bson:"title"`
	ShortDescription i18n.Text    `json:"shortDescription" bson:"shortDescription"`
	Location         Location     `json:"location" bson:"location"`
	PriceEUR         float64      `json:"priceEUR" bson:"priceEUR"`
	Days             int          `json:"days" bson:"days"`
	TravelerCapacity int          `json:"travelerCapacity" bson:"travelerCapacity"`
	Rating           float64      `json:"rating" bson:"rating"`
	BusyPeriods      []BusyPeriod `json:"busyPeriods" bson:"busyPeriods"`
	Badges           []string     `json:"badges" bson:"badges"`
	Images           []string     `json:"images" bson:"images"`
	Program          []ProgramDay `json:"program" bson:"program"`
	Included         i18n.List    `json:"included" bson:"included"`
	Excluded         i18n.List    `json:"excluded" bson:"excluded"`
}

// Collection is the document shape of the static tours resource.
type Collection struct {
	Tours []Tour `json:"tours"`
}

// Source loads the full tour collection.
type Source interface {
	LoadTours(ctx context.Context) ([]Tour, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context) ([]Tour, error)

func (f SourceFunc) LoadTours(ctx context.Context) ([]Tour, error) {
	return f(ctx)
}

// FindByID returns the tour with the given id from an already loaded collection.
func FindByID(list []Tour, id TourID) (Tour, error) {
	for _, tour := range list {
		if tour.ID == id {
			return tour, nil
		}
	}
	return Tour{}, ErrTourNotFound
}
