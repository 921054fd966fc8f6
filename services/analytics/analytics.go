package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	reservationRepo "workhive/database/repository/reservation"
	spaceRepo "workhive/database/repository/space"
	"workhive/models"
	"workhive/services/booking"
)

// OccupancyReport aggregates per-day occupancy of a space over a date
// range. It is the data source behind the back-office charts.
type OccupancyReport struct {
	SpaceID      string              `json:"spaceId"`
	SpaceName    string              `json:"spaceName"`
	From         string              `json:"from"`
	To           string              `json:"to"`
	Days         []models.DaySummary `json:"days"`
	AveragePct   float64             `json:"averagePct"` // over working days only
	PeakDate     string              `json:"peakDate,omitempty"`
	PeakPct      float64             `json:"peakPct"`
	Reservations int                 `json:"reservations"`
}

// AnalyticsService computes read-only occupancy reports.
type AnalyticsService interface {
	Occupancy(spaceID string, from, to time.Time) (*OccupancyReport, error)
}

// DefaultAnalyticsService implements AnalyticsService on top of the
// availability calculator.
type DefaultAnalyticsService struct {
	Spaces       spaceRepo.SpaceRepository
	Reservations reservationRepo.ReservationRepository
	Hours        booking.BusinessHours
}

func (svc *DefaultAnalyticsService) Occupancy(spaceID string, from, to time.Time) (*OccupancyReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("date range end precedes start")
	}
	space, err := svc.Spaces.GetByID(spaceID)
	if err != nil {
		return nil, err
	}
	reservations, err := svc.Reservations.ListOverlapping(spaceID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	summaries := booking.ComputeRangeAvailability(svc.Hours, *space, from, to, reservations)

	report := &OccupancyReport{
		SpaceID:      space.ID,
		SpaceName:    space.Name,
		From:         from.Format("2006-01-02"),
		To:           to.Format("2006-01-02"),
		Reservations: len(booking.ActiveReservations(reservations)),
	}

	keys := make([]string, 0, len(summaries))
	for key := range summaries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sum float64
	var workingDays int
	for _, key := range keys {
		day := summaries[key]
		report.Days = append(report.Days, day)
		if !day.WorkingDay {
			continue
		}
		workingDays++
		sum += day.OccupancyPct
		if day.OccupancyPct > report.PeakPct {
			report.PeakPct = day.OccupancyPct
			report.PeakDate = day.Date
		}
	}
	if workingDays > 0 {
		report.AveragePct = math.Round(sum/float64(workingDays)*10) / 10
	}
	return report, nil
}
