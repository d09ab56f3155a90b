package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"travelgo/internal/domain/i18n"
	"travelgo/internal/domain/tours"
)

type staticSource struct {
	list []tours.Tour
	err  error
}

func (s staticSource) LoadTours(context.Context) ([]tours.Tour, error) {
	return s.list, s.err
}

var errUnavailable = errors.New("resource unavailable")

func sampleTours() []tours.Tour {
	return []tours.Tour{
		{
			ID:               "georgia-peaks",
			Title:            i18n.Text{"en": "Georgia peaks", "uk": "Вершини Грузії"},
			ShortDescription: i18n.Text{"en": "Caucasus hiking"},
			Location:         tours.Location{CountryKey: "ge", Country: i18n.Text{"en": "Georgia", "uk": "Грузія"}},
			PriceEUR:         890,
			Days:             7,
			TravelerCapacity: 12,
			Rating:           4.8,
			Badges:           []string{"best-value", "popular"},
			Images:           []string{"./img/georgia.jpg"},
			BusyPeriods:      []tours.BusyPeriod{{Start: "2024-06-10", End: "2024-06-20"}},
		},
		{
			ID:               "tbilisi-weekend",
			Title:            i18n.Text{"en": "Tbilisi weekend"},
			Location:         tours.Location{CountryKey: "ge", Country: i18n.Text{"en": "Georgia", "uk": "Грузія"}},
			PriceEUR:         420,
			Days:             4,
			TravelerCapacity: 6,
			Rating:           4.5,
		},
		{
			ID:               "carpathians",
			Title:            i18n.Text{"en": "Carpathians"},
			Location:         tours.Location{CountryKey: "ua", Country: i18n.Text{"en": "Ukraine", "uk": "Україна"}},
			PriceEUR:         350,
			Days:             5,
			TravelerCapacity: 10,
			Rating:           4.9,
			Badges:           []string{"adventure"},
			Images:           []string{"./img/carpathians.png"},
			BusyPeriods:      []tours.BusyPeriod{{Start: "2024-08-01", End: "2024-08-05"}},
		},
		{
			ID:               "odesa-coast",
			Title:            i18n.Text{"en": "Odesa coast"},
			Location:         tours.Location{CountryKey: "ua", Country: i18n.Text{"en": "Ukraine", "uk": "Україна"}},
			PriceEUR:         610,
			Days:             9,
			TravelerCapacity: 4,
			Rating:           4.2,
		},
		{
			ID:               "lviv-stroll",
			Title:            i18n.Text{"en": "Lviv stroll"},
			Location:         tours.Location{CountryKey: "ua", Country: i18n.Text{"en": "Ukraine", "uk": "Україна"}},
			PriceEUR:         280,
			TravelerCapacity: 20,
			Rating:           3.9,
		},
	}
}

const copyDocument = `{
  "ui": {
    "catalog": {"en": {"results": "{count} tours found", "error": "Could not load tours."}},
    "filters": {"en": {
      "priceTo": "Up to {value} EUR",
      "empty": "Nothing found.",
      "summaryAll": "All tours",
      "clearFilterLabel": "Remove filter: {label}",
      "anyCountry": "Any",
      "daysOptions": ["4-6 days", "7-8 days", "9+ days"],
      "periodPlaceholder": "Pick dates"
    }},
    "tourCard": {"en": {"days": "days", "details": "Details"}}
  },
  "labels": {"badges": {"best-value": {"en": "Best value", "uk": "Вигідно"}}}
}`

func loadCopy(t *testing.T) *i18n.Copy {
	t.Helper()
	var doc i18n.Copy
	require.NoError(t, json.Unmarshal([]byte(copyDocument), &doc))
	return &doc
}

type fakeTimer struct {
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
	delays []time.Duration
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{fn: f}
	s.timers = append(s.timers, t)
	s.delays = append(s.delays, d)
	return t
}

func (s *fakeScheduler) timer(i int) *fakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timers[i]
}

func (s *fakeScheduler) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func newLoadedController(t *testing.T, lang string, sched Scheduler) *Controller {
	t.Helper()
	c := New(Options{PriceMax: 1000, Lang: lang, Scheduler: sched})
	require.NoError(t, c.Load(context.Background(), staticSource{list: sampleTours()}))
	return c
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }
