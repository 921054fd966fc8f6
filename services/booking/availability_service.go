package booking

import (
	"fmt"
	"time"

	reservationRepo "workhive/database/repository/reservation"
	spaceRepo "workhive/database/repository/space"
	"workhive/models"
)

// AvailabilityService exposes the availability calculator over live data.
// Results are pure recomputations; calling twice without intervening
// writes yields identical snapshots.
type AvailabilityService interface {
	DayAvailability(spaceID string, day time.Time) (*models.AvailabilitySnapshot, error)
	RangeAvailability(spaceID string, from, to time.Time) (map[string]models.DaySummary, error)
	CheckInterval(spaceID string, start, end time.Time, participants int) (ConflictResult, error)
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	Spaces       spaceRepo.SpaceRepository
	Reservations reservationRepo.ReservationRepository
	Hours        BusinessHours
}

func (svc *DefaultAvailabilityService) DayAvailability(spaceID string, day time.Time) (*models.AvailabilitySnapshot, error) {
	space, err := svc.Spaces.GetByID(spaceID)
	if err != nil {
		return nil, err
	}
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	reservations, err := svc.Reservations.ListOverlapping(spaceID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, NewTransportFailureError(fmt.Sprintf("failed to fetch reservations: %v", err))
	}
	snapshot := ComputeDayAvailability(svc.Hours, *space, day, reservations)
	return &snapshot, nil
}

func (svc *DefaultAvailabilityService) RangeAvailability(spaceID string, from, to time.Time) (map[string]models.DaySummary, error) {
	if to.Before(from) {
		return nil, NewInvalidIntervalError("date range end precedes start")
	}
	space, err := svc.Spaces.GetByID(spaceID)
	if err != nil {
		return nil, err
	}
	reservations, err := svc.Reservations.ListOverlapping(spaceID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, NewTransportFailureError(fmt.Sprintf("failed to fetch reservations: %v", err))
	}
	return ComputeRangeAvailability(svc.Hours, *space, from, to, reservations), nil
}

// CheckInterval runs the conflict check for a proposed interval against
// freshly fetched reservations.
func (svc *DefaultAvailabilityService) CheckInterval(spaceID string, start, end time.Time, participants int) (ConflictResult, error) {
	space, err := svc.Spaces.GetByID(spaceID)
	if err != nil {
		return ConflictResult{}, err
	}
	existing, err := svc.Reservations.ListOverlapping(spaceID, start, end)
	if err != nil {
		return ConflictResult{}, NewTransportFailureError(fmt.Sprintf("failed to fetch reservations: %v", err))
	}
	return CheckConflict(*space, start, end, participants, existing), nil
}
