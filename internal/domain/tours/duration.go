package tours

import "travelgo/internal/domain/shared/daterange"

// Duration buckets offered by the catalog and search forms.
const (
	DaysAny        = ""
	DaysFourSix    = "4-6"
	DaysSevenEight = "7-8"
	DaysNinePlus   = "9+"
)

// DurationBuckets lists the known non-empty buckets in display order.
var DurationBuckets = []string{DaysFourSix, DaysSevenEight, DaysNinePlus}

// MatchDuration reports whether a trip of days fits a non-empty bucket. Tours without a
// duration never match; unknown buckets match every tour that has one.
func MatchDuration(days int, bucket string) bool {
	if days <= 0 {
		return false
	}
	switch bucket {
	case DaysFourSix:
		return days >= 4 && days <= 6
	case DaysSevenEight:
		return days >= 7 && days <= 8
	case DaysNinePlus:
		return days >= 9
	default:
		return true
	}
}

// DaysRangeFor derives the bucket of an inclusive [start, end] trip.
// Unparseable, inverted or short ranges yield DaysAny.
func DaysRangeFor(start, end string) string {
	r, err := daterange.ParseRange(start, end)
	if err != nil {
		return DaysAny
	}
	days := r.Days()
	switch {
	case days >= 4 && days <= 6:
		return DaysFourSix
	case days >= 7 && days <= 8:
		return DaysSevenEight
	case days >= 9:
		return DaysNinePlus
	default:
		return DaysAny
	}
}

// IsKnownBucket reports whether bucket is one of DurationBuckets.
func IsKnownBucket(bucket string) bool {
	for _, b := range DurationBuckets {
		if b == bucket {
			return true
		}
	}
	return false
}
