package datepicker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelgo/internal/domain/shared/daterange"
)

func TestBuildMonthFlags(t *testing.T) {
	today, err := daterange.Parse("2024-07-03")
	require.NoError(t, err)

	month := BuildMonth(time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC), today,
		Range{Start: "2024-07-05", End: "2024-07-08"}, "en")

	assert.Equal(t, "July 2024", month.Title)
	assert.Equal(t, 0, month.Offset) // 1 July 2024 is a Monday
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, month.Weekdays)
	require.Len(t, month.Days, 31)

	assert.True(t, month.Days[1].Disabled)
	assert.False(t, month.Days[2].Disabled)
	assert.True(t, month.Days[2].Today)
	assert.True(t, month.Days[4].Start)
	assert.False(t, month.Days[4].InRange)
	assert.True(t, month.Days[5].InRange)
	assert.True(t, month.Days[6].InRange)
	assert.True(t, month.Days[7].End)
	assert.False(t, month.Days[7].InRange)
	assert.Equal(t, "2024-07-31", month.Days[30].Date)
}

func TestBuildMonthOffsetAndLocale(t *testing.T) {
	today, err := daterange.Parse("2024-01-01")
	require.NoError(t, err)

	month := BuildMonth(time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), today, Range{}, "uk")
	assert.Equal(t, 6, month.Offset) // Sunday
	assert.Equal(t, "Вересень 2024", month.Title)
	assert.Len(t, month.Days, 30)
}

func TestControllerMonthsRendersTwoMonths(t *testing.T) {
	c := NewController(fixedClock(time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC)))
	months := c.Months("en")
	require.Len(t, months, 2)
	assert.Equal(t, "December 2024", months[0].Title)
	assert.Equal(t, "January 2025", months[1].Title)
	assert.False(t, months[1].Days[0].Disabled)
}

func TestTriggerLabel(t *testing.T) {
	assert.Equal(t, "02 Jun — 10 Jun", TriggerLabel(Range{Start: "2024-06-02", End: "2024-06-10"}, "en", "Pick dates"))
	assert.Equal(t, "Pick dates", TriggerLabel(Range{Start: "2024-06-02"}, "en", "Pick dates"))
	assert.Equal(t, "", PeriodLabel(Range{Start: "bad", End: "2024-06-10"}, "en"))
}
