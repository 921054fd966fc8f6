package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"workhive/models"
)

func TestQuoteAmountHourly(t *testing.T) {
	desk := models.Space{PriceHourly: 10, PriceHalfDay: 35, PriceDay: 60}

	// Two hours at the hourly rate.
	amount := QuoteAmount(desk, dayAt(10, 0), dayAt(12, 0), false)
	assert.Equal(t, 20.0, amount)

	// Four hours would cost 40; the half-day rate caps it.
	amount = QuoteAmount(desk, dayAt(9, 0), dayAt(13, 0), false)
	assert.Equal(t, 35.0, amount)

	// Nine hours would cost 90; the day rate caps it.
	amount = QuoteAmount(desk, dayAt(8, 30), dayAt(17, 30), false)
	assert.Equal(t, 60.0, amount)
}

func TestQuoteAmountHourlyWithoutRateCeilings(t *testing.T) {
	desk := models.Space{PriceHourly: 10}

	amount := QuoteAmount(desk, dayAt(9, 0), dayAt(15, 0), false)
	assert.Equal(t, 60.0, amount)
}

func TestQuoteAmountMultiDay(t *testing.T) {
	office := models.Space{PriceDay: 100, PriceWeek: 500}

	start := time.Date(2024, 1, 14, 9, 0, 0, 0, time.UTC)

	// Three days at the day rate.
	amount := QuoteAmount(office, start, start.AddDate(0, 0, 2), true)
	assert.Equal(t, 300.0, amount)

	// Seven days at 100 would cost 700; the weekly rate wins.
	amount = QuoteAmount(office, start, start.AddDate(0, 0, 6), true)
	assert.Equal(t, 500.0, amount)

	// A week plus two days.
	amount = QuoteAmount(office, start, start.AddDate(0, 0, 8), true)
	assert.Equal(t, 700.0, amount)
}

func TestQuoteAmountRounding(t *testing.T) {
	desk := models.Space{PriceHourly: 12.5}

	amount := QuoteAmount(desk, dayAt(10, 0), dayAt(11, 30), false)
	assert.Equal(t, 18.75, amount)
}
