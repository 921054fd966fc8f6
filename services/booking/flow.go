package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"workhive/models"
	"workhive/utils"
)

// StartSession opens a new booking flow at the space selection step.
func (s *DefaultBookingFlowService) StartSession(userID string) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Step:      models.StepSelectingSpace,
	}
	if err := s.Sessions.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns the current state of a booking flow.
func (s *DefaultBookingFlowService) GetSession(sessionID string) (*models.BookingSession, error) {
	return s.Sessions.Load(sessionID)
}

// SelectSpace records the chosen space and advances to the date/time step.
// Choosing a different space discards any previously selected interval.
func (s *DefaultBookingFlowService) SelectSpace(sessionID, spaceID string) (*models.BookingSession, error) {
	session, err := s.Sessions.Load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step == models.StepSubmitted {
		return nil, NewInvalidStepError("booking already submitted")
	}
	if spaceID == "" {
		return nil, NewInvalidStepError("a space must be selected")
	}

	space, err := s.Spaces.GetByID(spaceID)
	if err != nil {
		return nil, NewStaleAvailabilityError("space not found")
	}
	if !space.Disponible {
		return nil, NewStaleAvailabilityError("space is closed for booking")
	}

	session.SpaceID = space.ID
	session.SpaceType = space.Type
	session.SpaceCapacity = space.Capacity
	session.Start = time.Time{}
	session.End = time.Time{}
	session.MultiDay = false
	session.Participants = 0
	session.Amount = 0
	session.Step = models.StepSelectingDateTime

	if err := s.Sessions.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDateTime validates the requested interval against the business
// policy and the live reservation data, then advances to confirmation.
func (s *DefaultBookingFlowService) SelectDateTime(sessionID string, sel DateTimeSelection) (*models.BookingSession, error) {
	session, err := s.Sessions.Load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSelectingDateTime && session.Step != models.StepConfirming {
		return nil, NewInvalidStepError("select a space before choosing a time")
	}

	space, err := s.Spaces.GetByID(session.SpaceID)
	if err != nil {
		return nil, NewStaleAvailabilityError("space not found")
	}

	if err := s.validateSelection(*space, sel); err != nil {
		return nil, err
	}

	existing, err := s.Reservations.ListOverlapping(space.ID, sel.Start, sel.End)
	if err != nil {
		return nil, NewTransportFailureError(fmt.Sprintf("failed to fetch reservations: %v", err))
	}
	if err := conflictToError(CheckConflict(*space, sel.Start, sel.End, sel.Participants, existing), *space); err != nil {
		return nil, err
	}

	session.Start = sel.Start
	session.End = sel.End
	session.MultiDay = sel.MultiDay
	session.Participants = sel.Participants
	session.Amount = QuoteAmount(*space, sel.Start, sel.End, sel.MultiDay)
	session.Step = models.StepConfirming

	if err := s.Sessions.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingFlowService) validateSelection(space models.Space, sel DateTimeSelection) error {
	now := time.Now()

	if !sel.End.After(sel.Start) {
		return NewInvalidIntervalError("end must be after start")
	}
	if sel.Start.Before(now) {
		return NewInvalidIntervalError("start must not be in the past")
	}
	if !s.Hours.IsWorkingDay(sel.Start) || !s.Hours.IsWorkingDay(sel.End) {
		return NewOutsideBusinessPolicyError("booking must start and end on a working day")
	}

	if sel.MultiDay {
		days := DaysBetween(sel.Start, sel.End) + 1
		if days > s.MaxDays {
			return NewOutsideBusinessPolicyError(fmt.Sprintf("booking spans %d days, maximum is %d", days, s.MaxDays))
		}
	} else {
		if !s.Hours.WithinHours(sel.Start) || !s.Hours.WithinHours(sel.End) {
			return NewOutsideBusinessPolicyError("booking must fall within business hours")
		}
		hours := sel.End.Sub(sel.Start).Hours()
		if hours < 1 {
			return NewOutsideBusinessPolicyError("booking must last at least one hour")
		}
		if hours > float64(s.MaxHours) {
			return NewOutsideBusinessPolicyError(fmt.Sprintf("booking lasts %.0f hours, maximum is %d", hours, s.MaxHours))
		}
	}

	if sel.Participants < 1 {
		return NewCapacityExceededError("participant count must be at least 1")
	}
	if sel.Participants > space.Capacity {
		return NewCapacityExceededError(fmt.Sprintf("%d participants exceed the space capacity of %d", sel.Participants, space.Capacity))
	}
	return nil
}

func conflictToError(result ConflictResult, space models.Space) error {
	if result.Accepted {
		return nil
	}
	switch result.Reason {
	case ReasonFullyBooked:
		return NewFullyBookedError("space is already reserved for the requested time")
	case ReasonCapacityExceeded:
		remaining := space.Capacity - result.ReservedSeats
		if remaining < 0 {
			remaining = 0
		}
		return NewCapacityExceededError(fmt.Sprintf("only %d seats remain for the requested time", remaining))
	}
	return NewFullyBookedError("space is not available for the requested time")
}

// Confirm re-validates the booking against fresh data and persists it with
// status pending. A client-side availability snapshot is advisory only:
// the final conflict check runs inside the store's per-space serialization,
// so two conflicting submissions cannot both succeed. On failure the
// session stays on the confirming step.
func (s *DefaultBookingFlowService) Confirm(sessionID, notes, promoCode string) (*models.Reservation, error) {
	logger := utils.GetLogger()

	session, err := s.Sessions.Load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirming {
		return nil, NewInvalidStepError("booking is not ready to be confirmed")
	}

	space, err := s.Spaces.GetByID(session.SpaceID)
	if err != nil {
		return nil, NewStaleAvailabilityError("space not found")
	}
	if !space.Disponible {
		return nil, NewStaleAvailabilityError("space was closed for booking while confirming")
	}

	discount := 0.0
	promoApplied := ""
	if promoCode != "" && s.Promo != nil {
		result, err := s.Promo.Validate(promoCode, session.Amount)
		if err != nil {
			return nil, NewTransportFailureError(fmt.Sprintf("failed to validate promo code: %v", err))
		}
		if result.Valid {
			discount = result.Discount
			promoApplied = promoCode
		} else {
			logger.Info("ignoring invalid promo code",
				zap.String("code", promoCode), zap.String("reason", result.Reason))
		}
	}

	amount := session.Amount - discount
	if amount < 0 {
		amount = 0
	}

	now := time.Now().UTC()
	reservation := &models.Reservation{
		ID:           uuid.New().String(),
		SpaceID:      space.ID,
		UserID:       session.UserID,
		Start:        session.Start,
		End:          session.End,
		Participants: session.Participants,
		Status:       models.ReservationPending,
		Amount:       amount,
		PromoCode:    promoApplied,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Reservations.CreateIfAccepted(reservation, func(existing []models.Reservation) error {
		result := CheckConflict(*space, session.Start, session.End, session.Participants, existing)
		if result.Accepted {
			return nil
		}
		// The snapshot the user confirmed against is out of date.
		return NewStaleAvailabilityError(fmt.Sprintf("availability changed while confirming: %s", result.Reason))
	})
	if err != nil {
		if _, ok := AsFlowError(err); ok {
			return nil, err
		}
		return nil, NewTransportFailureError(fmt.Sprintf("failed to create reservation: %v", err))
	}

	if promoApplied != "" {
		if err := s.Promo.Redeem(promoApplied); err != nil {
			logger.Warn("failed to record promo redemption",
				zap.String("code", promoApplied), zap.Error(err))
		}
	}

	session.Step = models.StepSubmitted
	session.ReservationID = reservation.ID
	session.Discount = discount
	session.PromoCode = promoApplied
	session.Notes = notes
	if err := s.Sessions.Save(session); err != nil {
		logger.Warn("failed to persist submitted session", zap.Error(err))
	}

	logger.Info("reservation submitted",
		zap.String("reservationId", reservation.ID),
		zap.String("spaceId", space.ID),
		zap.Int("participants", reservation.Participants))
	return reservation, nil
}

// Back moves the flow one step backward without discarding entered fields.
func (s *DefaultBookingFlowService) Back(sessionID string) (*models.BookingSession, error) {
	session, err := s.Sessions.Load(sessionID)
	if err != nil {
		return nil, err
	}
	switch session.Step {
	case models.StepConfirming:
		session.Step = models.StepSelectingDateTime
	case models.StepSelectingDateTime:
		session.Step = models.StepSelectingSpace
	case models.StepSubmitted:
		return nil, NewInvalidStepError("booking already submitted")
	}
	if err := s.Sessions.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// CancelSession abandons the flow. Nothing was persisted before submission,
// so dropping the cached session is the only cleanup needed.
func (s *DefaultBookingFlowService) CancelSession(sessionID string) error {
	return s.Sessions.Delete(sessionID)
}
