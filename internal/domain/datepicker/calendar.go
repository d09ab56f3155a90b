package datepicker

import (
	"time"

	"travelgo/internal/domain/i18n"
	"travelgo/internal/domain/shared/daterange"
)

type DayCell struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	Disabled bool   `json:"disabled"`
	Today    bool   `json:"today"`
	Start    bool   `json:"start"`
	End      bool   `json:"end"`
	InRange  bool   `json:"inRange"`
}

// Month is a Monday-first grid: Offset blank cells precede the first day.
type Month struct {
	Title    string    `json:"title"`
	Weekdays []string  `json:"weekdays"`
	Offset   int       `json:"offset"`
	Days     []DayCell `json:"days"`
}

// BuildMonth renders the month containing first.
func BuildMonth(first time.Time, today daterange.Day, draft Range, lang string) Month {
	first = time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	start, startErr := daterange.Parse(draft.Start)
	end, endErr := daterange.Parse(draft.End)

	month := Month{
		Title:    i18n.MonthTitle(first, lang),
		Weekdays: i18n.Weekdays(lang),
		Offset:   mondayIndex(first.Weekday()),
		Days:     make([]DayCell, 0, daysInMonth),
	}
	for n := 1; n <= daysInMonth; n++ {
		day := daterange.FromTime(time.Date(first.Year(), first.Month(), n, 0, 0, 0, 0, time.UTC))
		cell := DayCell{
			Date:     day.String(),
			Day:      n,
			Disabled: day.Before(today),
			Today:    day.Equal(today),
			Start:    startErr == nil && day.Equal(start),
			End:      endErr == nil && day.Equal(end),
		}
		if startErr == nil && endErr == nil {
			cell.InRange = day.After(start) && day.Before(end)
		}
		month.Days = append(month.Days, cell)
	}
	return month
}

func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// PeriodLabel renders "02 Jun — 10 Jun" for a complete period, "" otherwise.
func PeriodLabel(r Range, lang string) string {
	start, err := daterange.Parse(r.Start)
	if err != nil {
		return ""
	}
	end, err := daterange.Parse(r.End)
	if err != nil {
		return ""
	}
	return i18n.ShortDate(start.Time(), lang) + " — " + i18n.ShortDate(end.Time(), lang)
}

// TriggerLabel is the text of the button that opens the picker for a form.
func TriggerLabel(r Range, lang, placeholder string) string {
	if label := PeriodLabel(r, lang); label != "" {
		return label
	}
	return placeholder
}
