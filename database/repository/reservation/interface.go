package reservationRepo

import (
	"time"

	"workhive/models"
)

// ReservationFilter narrows a reservation listing.
type ReservationFilter struct {
	SpaceID string
	UserID  string
	Status  string
	From    time.Time // zero means unbounded
	To      time.Time
}

// ReservationRepository defines the interface for reservation data access.
// Reservations are never deleted, only transitioned between statuses.
type ReservationRepository interface {
	Create(res *models.Reservation) error
	GetByID(id string) (*models.Reservation, error)
	UpdateStatus(id string, status string) error
	List(filter ReservationFilter) ([]models.Reservation, error)

	// ListOverlapping returns every reservation for the space whose
	// [start, end) interval intersects [from, to), regardless of status.
	// Filtering to active statuses is the booking core's job.
	ListOverlapping(spaceID string, from, to time.Time) ([]models.Reservation, error)

	// CreateIfAccepted re-fetches the overlapping reservations for the
	// slot, runs the check against them and inserts the reservation only
	// if the check passes. Calls for the same space are serialized, which
	// gives the at-most-one-acceptance guarantee the optimistic booking
	// flow depends on.
	CreateIfAccepted(res *models.Reservation, check func(existing []models.Reservation) error) error

	// PromoteStarted moves confirmed reservations whose start has passed
	// to in_progress; CompleteEnded moves in_progress reservations whose
	// end has passed to completed. Both return the number updated.
	PromoteStarted(now time.Time) (int64, error)
	CompleteEnded(now time.Time) (int64, error)
}
