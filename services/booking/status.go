package booking

import "workhive/models"

// statusTransitions is the reservation lifecycle. Cancelled and completed
// are terminal; reservations are never deleted.
var statusTransitions = map[string][]string{
	models.ReservationPending:    {models.ReservationConfirmed, models.ReservationCancelled},
	models.ReservationConfirmed:  {models.ReservationInProgress, models.ReservationCompleted, models.ReservationCancelled},
	models.ReservationInProgress: {models.ReservationCompleted, models.ReservationCancelled},
	models.ReservationCancelled:  {},
	models.ReservationCompleted:  {},
}

// CanTransitionStatus reports whether a reservation may move from one
// status to another.
func CanTransitionStatus(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
