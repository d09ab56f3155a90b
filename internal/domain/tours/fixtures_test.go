package tours

import "travelgo/internal/domain/i18n"

func sampleTours() []Tour {
	return []Tour{
		{
			ID:               "georgia-peaks",
			Title:            i18n.Text{"en": "Georgia peaks", "uk": "Вершини Грузії"},
			Location:         Location{CountryKey: "ge", Country: i18n.Text{"en": "Georgia", "uk": "Грузія"}},
			PriceEUR:         890,
			Days:             7,
			TravelerCapacity: 12,
			Rating:           4.8,
			BusyPeriods:      []BusyPeriod{{Start: "2024-06-10", End: "2024-06-20"}},
		},
		{
			ID:               "tbilisi-weekend",
			Location:         Location{CountryKey: "ge", Country: i18n.Text{"en": "Georgia"}},
			PriceEUR:         420,
			Days:             4,
			TravelerCapacity: 6,
			Rating:           4.5,
		},
		{
			ID:               "carpathians",
			Location:         Location{CountryKey: "ua", Country: i18n.Text{"en": "Ukraine", "uk": "Україна"}},
			PriceEUR:         350,
			Days:             5,
			TravelerCapacity: 10,
			Rating:           4.9,
			BusyPeriods: []BusyPeriod{
				{Start: "2024-08-01", End: "2024-08-05"},
				{Start: "garbage", End: "2024-07-10"},
			},
		},
		{
			ID:               "odesa-coast",
			Location:         Location{CountryKey: "ua", Country: i18n.Text{"en": "Ukraine"}},
			PriceEUR:         610,
			Days:             9,
			TravelerCapacity: 4,
			Rating:           4.2,
		},
		{
			ID:               "lviv-stroll",
			Location:         Location{CountryKey: "ua", Country: i18n.Text{"en": "Ukraine"}},
			PriceEUR:         280,
			Days:             0,
			TravelerCapacity: 20,
			Rating:           3.9,
		},
	}
}

func ids(list []Tour) []TourID {
	out := make([]TourID, 0, len(list))
	for _, tour := range list {
		out = append(out, tour.ID)
	}
	return out
}
