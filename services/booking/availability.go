package booking

import (
	"math"
	"time"

	"workhive/models"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. A reservation ending exactly when another
// begins does not overlap, so back-to-back bookings are allowed.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ActiveReservations keeps only the reservations that count toward
// occupancy: pending, confirmed and in_progress. Cancelled and completed
// reservations never block new bookings.
func ActiveReservations(reservations []models.Reservation) []models.Reservation {
	var active []models.Reservation
	for _, r := range reservations {
		if r.Active() {
			active = append(active, r)
		}
	}
	return active
}

// reservedSeats sums participants of active reservations overlapping
// [start, end). For exclusive spaces a single overlap occupies the whole
// capacity.
func reservedSeats(space models.Space, start, end time.Time, active []models.Reservation) int {
	reserved := 0
	for _, r := range active {
		if !Overlaps(r.Start, r.End, start, end) {
			continue
		}
		if space.Type == models.SpaceTypeExclusive {
			return space.Capacity
		}
		reserved += r.Participants
	}
	if reserved > space.Capacity {
		reserved = space.Capacity
	}
	return reserved
}

func occupancyPct(reserved, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	pct := float64(reserved) / float64(capacity) * 100
	return math.Round(pct*10) / 10
}

// ComputeDayAvailability builds the availability snapshot for a space on a
// single day: day-level occupancy plus the per-slot breakdown. Reservations
// must include everything overlapping the day; status filtering happens here.
// On non-working days the space is closed, not available.
func ComputeDayAvailability(hours BusinessHours, space models.Space, day time.Time, reservations []models.Reservation) models.AvailabilitySnapshot {
	snapshot := models.AvailabilitySnapshot{
		SpaceID:    space.ID,
		Date:       day.Format("2006-01-02"),
		WorkingDay: hours.IsWorkingDay(day),
		Capacity:   space.Capacity,
	}
	if !snapshot.WorkingDay {
		for _, label := range hours.Slots() {
			start, end, err := hours.SlotWindow(day, label)
			if err != nil {
				continue
			}
			snapshot.Slots = append(snapshot.Slots, models.SlotAvailability{
				Label: label, Start: start, End: end,
			})
		}
		return snapshot
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	active := ActiveReservations(reservations)
	var contributing []models.Reservation
	for _, r := range active {
		if Overlaps(r.Start, r.End, dayStart, dayEnd) {
			contributing = append(contributing, r)
		}
	}

	snapshot.Reserved = reservedSeats(space, dayStart, dayEnd, contributing)
	snapshot.Available = space.Capacity - snapshot.Reserved
	if snapshot.Available < 0 {
		snapshot.Available = 0
	}
	snapshot.OccupancyPct = occupancyPct(snapshot.Reserved, space.Capacity)
	snapshot.Reservations = contributing

	for _, label := range hours.Slots() {
		start, end, err := hours.SlotWindow(day, label)
		if err != nil {
			continue
		}
		reserved := reservedSeats(space, start, end, contributing)
		available := space.Capacity - reserved
		if available < 0 {
			available = 0
		}
		snapshot.Slots = append(snapshot.Slots, models.SlotAvailability{
			Label:     label,
			Start:     start,
			End:       end,
			Reserved:  reserved,
			Available: available,
			Open:      available > 0,
		})
	}
	return snapshot
}

// ComputeRangeAvailability builds a per-day availability summary for every
// date in [from, to], keyed by "2006-01-02".
func ComputeRangeAvailability(hours BusinessHours, space models.Space, from, to time.Time, reservations []models.Reservation) map[string]models.DaySummary {
	summaries := make(map[string]models.DaySummary)
	active := ActiveReservations(reservations)

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		summary := models.DaySummary{
			Date:       key,
			WorkingDay: hours.IsWorkingDay(day),
			Capacity:   space.Capacity,
		}
		if summary.WorkingDay {
			dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
			dayEnd := dayStart.AddDate(0, 0, 1)
			summary.Reserved = reservedSeats(space, dayStart, dayEnd, active)
			summary.Available = space.Capacity - summary.Reserved
			if summary.Available < 0 {
				summary.Available = 0
			}
			summary.OccupancyPct = occupancyPct(summary.Reserved, space.Capacity)
		}
		summaries[key] = summary
	}
	return summaries
}
