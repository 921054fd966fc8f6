package booking

import (
	"fmt"
	"time"

	"workhive/config"
)

// SlotMinutes is the length of the availability grid step.
const SlotMinutes = 30

// BusinessHours is the scheduling policy of the coworking site: opening and
// closing time of day plus the set of working weekdays. All calendar helpers
// are pure functions of this value and their inputs.
type BusinessHours struct {
	OpenHour    int
	OpenMinute  int
	CloseHour   int
	CloseMinute int
	WorkingDays map[time.Weekday]bool
}

// DefaultBusinessHours is 08:30-18:30, Sunday through Thursday.
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		OpenHour:    8,
		OpenMinute:  30,
		CloseHour:   18,
		CloseMinute: 30,
		WorkingDays: map[time.Weekday]bool{
			time.Sunday:    true,
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
		},
	}
}

// BusinessHoursFromConfig builds the policy from the loaded configuration.
func BusinessHoursFromConfig() BusinessHours {
	cfg := config.AppConfig
	hours := BusinessHours{
		OpenHour:    cfg.OpenHour,
		OpenMinute:  cfg.OpenMinute,
		CloseHour:   cfg.CloseHour,
		CloseMinute: cfg.CloseMinute,
		WorkingDays: make(map[time.Weekday]bool),
	}
	for _, d := range cfg.WorkingDayIndices() {
		hours.WorkingDays[time.Weekday(d)] = true
	}
	if len(hours.WorkingDays) == 0 {
		return DefaultBusinessHours()
	}
	return hours
}

func (h BusinessHours) openMinutes() int  { return h.OpenHour*60 + h.OpenMinute }
func (h BusinessHours) closeMinutes() int { return h.CloseHour*60 + h.CloseMinute }

// IsWorkingDay reports whether t falls on a configured working weekday.
func (h BusinessHours) IsWorkingDay(t time.Time) bool {
	return h.WorkingDays[t.Weekday()]
}

// WithinHours reports whether the time of day of t lies within business
// hours, both bounds inclusive.
func (h BusinessHours) WithinHours(t time.Time) bool {
	minutes := t.Hour()*60 + t.Minute()
	return minutes >= h.openMinutes() && minutes <= h.closeMinutes()
}

// Slots returns the ordered half-hour slot labels of a business day, from
// opening time up to the last label a full slot still fits after. With the
// default 08:30-18:30 policy that is "08:30" through "18:00", 20 entries.
func (h BusinessHours) Slots() []string {
	var labels []string
	for m := h.openMinutes(); m+SlotMinutes <= h.closeMinutes(); m += SlotMinutes {
		labels = append(labels, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return labels
}

// SlotWindow returns the [start, start+30min) interval of the slot with the
// given label on the given day, in day's location.
func (h BusinessHours) SlotWindow(day time.Time, label string) (time.Time, time.Time, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(label, "%d:%d", &hour, &minute); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid slot label %q: %w", label, err)
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
	return start, start.Add(SlotMinutes * time.Minute), nil
}

// NextBusinessDay advances t by at least one day until it lands on a
// working day.
func (h BusinessHours) NextBusinessDay(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	for !h.IsWorkingDay(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// DaysBetween counts whole calendar days from the start date to the end
// date; same-day gives 0. Used for multi-day duration: a Monday-to-Sunday
// booking spans DaysBetween+1 = 7 days.
func DaysBetween(start, end time.Time) int {
	a := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
