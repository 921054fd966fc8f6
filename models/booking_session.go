package models

import "time"

// Booking flow steps. Transitions only move one step forward at a time;
// backward transitions are always allowed and keep the entered fields.
const (
	StepSelectingSpace    = "selecting_space"
	StepSelectingDateTime = "selecting_datetime"
	StepConfirming        = "confirming"
	StepSubmitted         = "submitted"
)

// BookingSession holds the in-flight state of the multi-step booking flow.
// It lives in the session cache with a TTL; nothing is persisted before
// the submitted step.
type BookingSession struct {
	SessionID     string    `json:"sessionId"`
	UserID        string    `json:"userId,omitempty"`
	Step          string    `json:"step"`
	SpaceID       string    `json:"spaceId,omitempty"`
	SpaceType     string    `json:"spaceType,omitempty"`
	SpaceCapacity int       `json:"spaceCapacity,omitempty"`
	Start         time.Time `json:"start,omitzero"`
	End           time.Time `json:"end,omitzero"`
	MultiDay      bool      `json:"multiDay,omitempty"`
	Participants  int       `json:"participants,omitempty"`
	Amount        float64   `json:"amount,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	PromoCode     string    `json:"promoCode,omitempty"`
	Discount      float64   `json:"discount,omitempty"`
	ReservationID string    `json:"reservationId,omitempty"`
}

// BookingFlowResponse is the payload returned after each flow step.
type BookingFlowResponse struct {
	SessionID    string                `json:"sessionId"`
	Step         string                `json:"step"`
	Availability *AvailabilitySnapshot `json:"availability,omitempty"`
	Amount       float64               `json:"amount,omitempty"`
	Reservation  *Reservation          `json:"reservation,omitempty"`
}
