package bookings

import "time"

// Overlaps reports whether [candStart, candEnd) intersects [existStart, existEnd).
// Intervals that only touch do not overlap.
func Overlaps(candStart, candEnd, existStart, existEnd time.Time) bool {
	return candStart.Before(existEnd) && existStart.Before(candEnd)
}
