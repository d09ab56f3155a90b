package tours

import "travelgo/internal/domain/shared/daterange"

// IsAvailable reports whether the tour can be booked for [requestedStart, requestedEnd].
//
// Malformed or inverted requests are permissive and report the tour as available, so a bad
// range never hides tours. Busy periods with an unparseable bound are skipped.
func IsAvailable(tour Tour, requestedStart, requestedEnd string) bool {
	requested, err := daterange.ParseRange(requestedStart, requestedEnd)
	if err != nil {
		return true
	}
	for _, period := range tour.BusyPeriods {
		busyStart, err := daterange.Parse(period.Start)
		if err != nil {
			continue
		}
		busyEnd, err := daterange.Parse(period.End)
		if err != nil {
			continue
		}
		// Inverted busy entries are kept as they are and still block requests that straddle them.
		if requested.Overlaps(daterange.Range{Start: busyStart, End: busyEnd}) {
			return false
		}
	}
	return true
}
