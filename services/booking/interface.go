package booking

import (
	"time"

	reservationRepo "workhive/database/repository/reservation"
	spaceRepo "workhive/database/repository/space"
	"workhive/models"
)

// DateTimeSelection is the user's date/time step input.
type DateTimeSelection struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	MultiDay     bool      `json:"multiDay"`
	Participants int       `json:"participants"`
}

// PromoValidator is the advisory pricing collaborator. The flow only
// subtracts whatever discount it reports; it never computes prices beyond
// the space's rate card.
type PromoValidator interface {
	Validate(code string, amount float64) (models.PromoResult, error)
	Redeem(code string) error
}

// BookingFlowService drives the multi-step booking flow:
// selecting_space -> selecting_datetime -> confirming -> submitted.
// Every expected policy violation comes back as a *FlowError; the session
// stays on its current step so the user can correct input.
type BookingFlowService interface {
	StartSession(userID string) (*models.BookingSession, error)
	GetSession(sessionID string) (*models.BookingSession, error)
	SelectSpace(sessionID, spaceID string) (*models.BookingSession, error)
	SelectDateTime(sessionID string, sel DateTimeSelection) (*models.BookingSession, error)
	Confirm(sessionID, notes, promoCode string) (*models.Reservation, error)
	Back(sessionID string) (*models.BookingSession, error)
	CancelSession(sessionID string) error
}

// DefaultBookingFlowService implements BookingFlowService.
type DefaultBookingFlowService struct {
	Spaces       spaceRepo.SpaceRepository
	Reservations reservationRepo.ReservationRepository
	Promo        PromoValidator
	Sessions     SessionStore
	Hours        BusinessHours
	MaxHours     int // maximum same-day booking duration in hours
	MaxDays      int // maximum multi-day booking span in days
}
