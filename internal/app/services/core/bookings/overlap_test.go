package bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2025, 11, 24, h, m, 0, 0, time.UTC) }

	tests := []struct {
		name       string
		candStart  time.Time
		candEnd    time.Time
		existStart time.Time
		existEnd   time.Time
		want       bool
	}{
		{"identical", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"candidate inside", at(10, 15), at(10, 45), at(10, 0), at(11, 0), true},
		{"candidate spans", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"partial start", at(9, 30), at(10, 30), at(10, 0), at(11, 0), true},
		{"partial end", at(10, 30), at(11, 30), at(10, 0), at(11, 0), true},
		{"touching before", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"touching after", at(11, 0), at(12, 0), at(10, 0), at(11, 0), false},
		{"disjoint", at(13, 0), at(14, 0), at(10, 0), at(11, 0), false},
		{"overnight", at(23, 0), at(23, 0).Add(2 * time.Hour), at(23, 0).Add(90 * time.Minute), at(23, 0).Add(3 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.candStart, tt.candEnd, tt.existStart, tt.existEnd))
			assert.Equal(t, tt.want, Overlaps(tt.existStart, tt.existEnd, tt.candStart, tt.candEnd), "symmetric")
		})
	}
}
