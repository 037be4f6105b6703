package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"identical ranges", day(10), day(13), day(10), day(13), true},
		{"partial overlap", day(10), day(13), day(12), day(15), true},
		{"contained range", day(10), day(20), day(12), day(14), true},
		{"back to back checkout day is free", day(10), day(13), day(13), day(16), false},
		{"disjoint", day(10), day(12), day(20), day(22), false},
		{"one night inside", day(10), day(11), day(10), day(20), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}
