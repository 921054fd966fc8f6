package models

import "time"

// SlotAvailability is the computed occupancy of a single half-hour slot.
// Derived on every query, never persisted.
type SlotAvailability struct {
	Label     string    `json:"label"` // e.g. "08:30"
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Reserved  int       `json:"reserved"`
	Available int       `json:"available"`
	Open      bool      `json:"open"` // false outside working days / when full
}

// AvailabilitySnapshot is the read-model for a space on a single day:
// total capacity, current occupancy and the per-slot breakdown.
type AvailabilitySnapshot struct {
	SpaceID      string             `json:"spaceId"`
	Date         string             `json:"date"` // "2006-01-02"
	WorkingDay   bool               `json:"workingDay"`
	Capacity     int                `json:"capacity"`
	Reserved     int                `json:"reserved"`
	Available    int                `json:"available"`
	OccupancyPct float64            `json:"occupancyPct"` // 0-100, one decimal
	Reservations []Reservation      `json:"reservations,omitempty"`
	Slots        []SlotAvailability `json:"slots,omitempty"`
}

// DaySummary is the per-day entry of a date-range availability query.
type DaySummary struct {
	Date         string  `json:"date"`
	WorkingDay   bool    `json:"workingDay"`
	Capacity     int     `json:"capacity"`
	Reserved     int     `json:"reserved"`
	Available    int     `json:"available"`
	OccupancyPct float64 `json:"occupancyPct"`
}
