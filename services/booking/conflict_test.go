package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"workhive/models"
)

func dayAt(h, m int) time.Time {
	return time.Date(2024, 1, 15, h, m, 0, 0, time.UTC)
}

func reservation(status string, start, end time.Time, participants int) models.Reservation {
	return models.Reservation{
		Status:       status,
		Start:        start,
		End:          end,
		Participants: participants,
	}
}

func TestOverlapsHalfOpen(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"partial overlap", dayAt(10, 0), dayAt(12, 0), dayAt(11, 0), dayAt(13, 0), true},
		{"contained", dayAt(9, 0), dayAt(17, 0), dayAt(10, 0), dayAt(11, 0), true},
		{"identical", dayAt(10, 0), dayAt(12, 0), dayAt(10, 0), dayAt(12, 0), true},
		{"back to back", dayAt(10, 0), dayAt(12, 0), dayAt(12, 0), dayAt(14, 0), false},
		{"disjoint", dayAt(8, 30), dayAt(9, 30), dayAt(14, 0), dayAt(15, 0), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestCheckConflictExclusive(t *testing.T) {
	office := models.Space{Type: models.SpaceTypeExclusive, Capacity: 4}

	existing := []models.Reservation{
		reservation(models.ReservationConfirmed, dayAt(10, 0), dayAt(12, 0), 1),
	}

	res := CheckConflict(office, dayAt(11, 0), dayAt(13, 0), 1, existing)
	assert.False(t, res.Accepted)
	assert.Equal(t, ReasonFullyBooked, res.Reason)

	// Starting exactly when the existing one ends is fine.
	res = CheckConflict(office, dayAt(12, 0), dayAt(14, 0), 1, existing)
	assert.True(t, res.Accepted)
	assert.Equal(t, ReasonNone, res.Reason)
}

func TestCheckConflictExclusiveIgnoresInactive(t *testing.T) {
	office := models.Space{Type: models.SpaceTypeExclusive, Capacity: 4}

	existing := []models.Reservation{
		reservation(models.ReservationCancelled, dayAt(10, 0), dayAt(12, 0), 1),
		reservation(models.ReservationCompleted, dayAt(10, 0), dayAt(12, 0), 1),
	}

	res := CheckConflict(office, dayAt(10, 0), dayAt(12, 0), 1, existing)
	assert.True(t, res.Accepted)
	assert.Equal(t, ReasonNone, res.Reason)
}

func TestCheckConflictSharedCapacity(t *testing.T) {
	openSpace := models.Space{Type: models.SpaceTypeShared, Capacity: 12}

	existing := []models.Reservation{
		reservation(models.ReservationConfirmed, dayAt(9, 0), dayAt(11, 0), 5),
		reservation(models.ReservationPending, dayAt(9, 0), dayAt(11, 0), 4),
	}

	// 9 taken, 3 more lands exactly at capacity: accepted.
	res := CheckConflict(openSpace, dayAt(10, 0), dayAt(10, 30), 3, existing)
	assert.True(t, res.Accepted)
	assert.Equal(t, ReasonNone, res.Reason)
	assert.Equal(t, 9, res.ReservedSeats)

	// 9 taken, 4 more exceeds capacity.
	res = CheckConflict(openSpace, dayAt(10, 0), dayAt(10, 30), 4, existing)
	assert.False(t, res.Accepted)
	assert.Equal(t, ReasonCapacityExceeded, res.Reason)
	assert.Equal(t, 9, res.ReservedSeats)
}

func TestCheckConflictSharedCountsOnlyOverlapping(t *testing.T) {
	openSpace := models.Space{Type: models.SpaceTypeShared, Capacity: 10}

	existing := []models.Reservation{
		reservation(models.ReservationConfirmed, dayAt(9, 0), dayAt(10, 0), 8),
		reservation(models.ReservationConfirmed, dayAt(14, 0), dayAt(16, 0), 8),
	}

	// The morning group leaves before this booking starts.
	res := CheckConflict(openSpace, dayAt(10, 0), dayAt(12, 0), 6, existing)
	assert.True(t, res.Accepted)
	assert.Equal(t, 0, res.ReservedSeats)
}
