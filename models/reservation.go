package models

import "time"

// Reservation statuses. Reservations are never deleted; a cancelled or
// completed reservation stays on record but no longer blocks new bookings.
const (
	ReservationPending    = "pending"
	ReservationConfirmed  = "confirmed"
	ReservationInProgress = "in_progress"
	ReservationCancelled  = "cancelled"
	ReservationCompleted  = "completed"
)

// Reservation represents a booking of a space over a [Start, End) window.
type Reservation struct {
	ID           string    `bson:"id" json:"id"`
	SpaceID      string    `bson:"spaceId" json:"spaceId"`
	UserID       string    `bson:"userId,omitempty" json:"userId,omitempty"`
	Start        time.Time `bson:"start" json:"start"`
	End          time.Time `bson:"end" json:"end"`
	Participants int       `bson:"participants" json:"participants"`
	Status       string    `bson:"status" json:"status"`
	Amount       float64   `bson:"amount" json:"amount"`
	PromoCode    string    `bson:"promoCode,omitempty" json:"promoCode,omitempty"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Active reports whether the reservation counts toward occupancy and
// conflict checks.
func (r Reservation) Active() bool {
	switch r.Status {
	case ReservationPending, ReservationConfirmed, ReservationInProgress:
		return true
	}
	return false
}
