package booking

import (
	"time"

	"workhive/models"
)

// ConflictReason explains a rejected booking request.
type ConflictReason string

const (
	ReasonNone             ConflictReason = "NONE"
	ReasonFullyBooked      ConflictReason = "FULLY_BOOKED"
	ReasonCapacityExceeded ConflictReason = "CAPACITY_EXCEEDED"
)

// ConflictResult is the accept/reject decision for a proposed booking.
type ConflictResult struct {
	Accepted bool           `json:"accepted"`
	Reason   ConflictReason `json:"reason"`
	// ReservedSeats is the shared-space seat count already taken over the
	// proposed interval; zero for exclusive spaces.
	ReservedSeats int `json:"reservedSeats,omitempty"`
}

// CheckConflict decides whether a proposed [start, end) booking with the
// given participant count fits next to the existing reservations.
//
// Exclusive spaces reject any overlap with an active reservation. Shared
// spaces reject when the participants of overlapping active reservations
// plus the proposed count exceed capacity; a request landing exactly at
// capacity is accepted. The decision must be evaluated against freshly
// fetched reservations at submission time; the backing store serializes
// conflicting creations so two concurrent submissions cannot both pass.
func CheckConflict(space models.Space, start, end time.Time, participants int, existing []models.Reservation) ConflictResult {
	active := ActiveReservations(existing)

	if space.Type == models.SpaceTypeExclusive {
		for _, r := range active {
			if Overlaps(r.Start, r.End, start, end) {
				return ConflictResult{Accepted: false, Reason: ReasonFullyBooked}
			}
		}
		return ConflictResult{Accepted: true, Reason: ReasonNone}
	}

	reserved := 0
	for _, r := range active {
		if Overlaps(r.Start, r.End, start, end) {
			reserved += r.Participants
		}
	}
	if reserved+participants > space.Capacity {
		return ConflictResult{Accepted: false, Reason: ReasonCapacityExceeded, ReservedSeats: reserved}
	}
	return ConflictResult{Accepted: true, Reason: ReasonNone, ReservedSeats: reserved}
}
