package tours

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFilters_EmptyStateKeepsEverythingInOrder(t *testing.T) {
	t.Parallel()

	list := sampleTours()
	assert.Equal(t, ids(list), ids(ApplyFilters(list, FilterState{})))
}

func TestApplyFilters_Criteria(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		state FilterState
		want  []TourID
	}{
		{"country", FilterState{Country: "ge"}, []TourID{"georgia-peaks", "tbilisi-weekend"}},
		{"price ceiling", FilterState{Price: 420}, []TourID{"tbilisi-weekend", "carpathians", "lviv-stroll"}},
		{"duration 4-6", FilterState{Days: "4-6"}, []TourID{"tbilisi-weekend", "carpathians"}},
		{"duration 7-8", FilterState{Days: "7-8"}, []TourID{"georgia-peaks"}},
		{"duration 9+", FilterState{Days: "9+"}, []TourID{"odesa-coast"}},
		{"unknown bucket keeps tours with a duration", FilterState{Days: "10-12"}, []TourID{"georgia-peaks", "tbilisi-weekend", "carpathians", "odesa-coast"}},
		{"availability", FilterState{PeriodStart: "2024-06-15", PeriodEnd: "2024-06-18"}, []TourID{"tbilisi-weekend", "carpathians", "odesa-coast", "lviv-stroll"}},
		{"availability needs both bounds", FilterState{PeriodStart: "2024-06-15"}, []TourID{"georgia-peaks", "tbilisi-weekend", "carpathians", "odesa-coast", "lviv-stroll"}},
		{"capacity", FilterState{People: "10"}, []TourID{"georgia-peaks", "carpathians", "lviv-stroll"}},
		{"rating", FilterState{Rating: "4.8"}, []TourID{"georgia-peaks", "carpathians"}},
		{"non numeric people constrains nothing", FilterState{People: "many"}, []TourID{"georgia-peaks", "tbilisi-weekend", "carpathians", "odesa-coast", "lviv-stroll"}},
		{"combined", FilterState{Country: "ua", Price: 700, Days: "4-6", People: "2", Rating: "4"}, []TourID{"carpathians"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ids(ApplyFilters(sampleTours(), tc.state)))
		})
	}
}

func TestApplyFilters_Idempotent(t *testing.T) {
	t.Parallel()

	state := FilterState{Country: "ua", Price: 650, PeriodStart: "2024-08-03", PeriodEnd: "2024-08-09"}
	once := ApplyFilters(sampleTours(), state)
	twice := ApplyFilters(once, state)
	assert.Equal(t, ids(once), ids(twice))
	assert.Equal(t, []TourID{"odesa-coast", "lviv-stroll"}, ids(once))
}

func TestApplyFilters_PriceBelowCheapestInCountryIsEmpty(t *testing.T) {
	t.Parallel()

	got := ApplyFilters(sampleTours(), FilterState{Country: "ge", Price: 100})
	assert.Empty(t, got)
}

func TestMatchDuration(t *testing.T) {
	t.Parallel()

	assert.True(t, MatchDuration(6, "4-6"))
	assert.False(t, MatchDuration(6, "7-8"))
	assert.True(t, MatchDuration(9, "9+"))
	assert.False(t, MatchDuration(8, "9+"))
	assert.True(t, MatchDuration(1, "weekend"))
	assert.True(t, MatchDuration(30, "weekend"))
	assert.False(t, MatchDuration(0, "4-6"))
	assert.False(t, MatchDuration(0, "weekend"))
}

func TestDaysRangeFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", DaysRangeFor("2024-07-01", "2024-07-03"))
	assert.Equal(t, "4-6", DaysRangeFor("2024-07-01", "2024-07-04"))
	assert.Equal(t, "4-6", DaysRangeFor("2024-07-01", "2024-07-06"))
	assert.Equal(t, "7-8", DaysRangeFor("2024-07-01", "2024-07-08"))
	assert.Equal(t, "9+", DaysRangeFor("2024-07-01", "2024-07-20"))
	assert.Equal(t, "", DaysRangeFor("2024-07-10", "2024-07-01"))
	assert.Equal(t, "", DaysRangeFor("", "2024-07-01"))
	assert.Equal(t, "9+", DaysRangeFor("0001-01-01", "9999-12-31"))
	assert.Equal(t, "", DaysRangeFor("0001-01-01", "0001-01-03"))
}

func TestFindByID(t *testing.T) {
	t.Parallel()

	tour, err := FindByID(sampleTours(), "carpathians")
	assert.NoError(t, err)
	assert.Equal(t, 5, tour.Days)

	_, err = FindByID(sampleTours(), "atlantis")
	assert.ErrorIs(t, err, ErrTourNotFound)
}
