package booking

import (
	"math"
	"time"

	"workhive/models"
)

// QuoteAmount computes the gross amount for a booking from the space's
// rate card. Same-day bookings are priced by the hour with the half-day
// and full-day rates as ceilings; multi-day bookings are priced per day
// with the weekly rate applied to full weeks. Promo discounts are applied
// separately by the flow.
func QuoteAmount(space models.Space, start, end time.Time, multiDay bool) float64 {
	if multiDay {
		days := DaysBetween(start, end) + 1
		if days < 1 {
			days = 1
		}
		amount := float64(days) * space.PriceDay
		if space.PriceWeek > 0 {
			weeks := days / 7
			rest := days % 7
			weekly := float64(weeks)*space.PriceWeek + float64(rest)*space.PriceDay
			if weeks > 0 && weekly < amount {
				amount = weekly
			}
		}
		return round2(amount)
	}

	hours := end.Sub(start).Hours()
	if hours < 0 {
		hours = 0
	}
	amount := hours * space.PriceHourly
	if hours >= 4 && space.PriceHalfDay > 0 && space.PriceHalfDay < amount {
		amount = space.PriceHalfDay
	}
	if space.PriceDay > 0 && space.PriceDay < amount {
		amount = space.PriceDay
	}
	return round2(amount)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
