package inventory

import "time"

// Overlaps reports whether the half-open date ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. A checkout and a checkin on the same day do not
// conflict. This is the single conflict rule shared by availability counting
// and unit allocation.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
