package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cimillas/CML-SpaceService/internal/domain"
)

func pricedSpace(day, halfDay float64) *domain.Space {
	space := testSpace()
	space.Pricing.Day = &day
	space.Pricing.HalfDay = &halfDay
	return space
}

func TestSelectionDuration_Single(t *testing.T) {
	sel := &domain.BookingSelection{
		BookingType: domain.BookingSingle,
		StartDate:   date(2025, time.February, 10),
	}

	assert.Equal(t, 1, SelectionDuration(sel, nil))
}

func TestSelectionDuration_NoStartDate(t *testing.T) {
	sel := &domain.BookingSelection{BookingType: domain.BookingSingle}

	assert.Equal(t, 0, SelectionDuration(sel, nil))
}

func TestSelectionDuration_RangeInclusive(t *testing.T) {
	sel := &domain.BookingSelection{
		BookingType: domain.BookingRange,
		StartDate:   date(2025, time.February, 10),
		EndDate:     date(2025, time.February, 12),
	}

	assert.Equal(t, 3, SelectionDuration(sel, nil))
}

func TestSelectionDuration_RangeWithoutEndActsAsSingleDay(t *testing.T) {
	sel := &domain.BookingSelection{
		BookingType: domain.BookingRange,
		StartDate:   date(2025, time.February, 10),
	}

	assert.Equal(t, 1, SelectionDuration(sel, nil))
}

func TestSelectionDuration_RecurringCountsOccurrences(t *testing.T) {
	sel := &domain.BookingSelection{BookingType: domain.BookingRecurring}
	dates := []time.Time{
		date(2025, time.February, 3),
		date(2025, time.February, 10),
		date(2025, time.February, 17),
		date(2025, time.February, 24),
	}

	assert.Equal(t, 4, SelectionDuration(sel, dates))
}

func TestTotalPrice_SingleFullDay(t *testing.T) {
	price := TotalPrice(pricedSpace(35, 20), domain.BookingSingle, domain.SlotFullDay, 1)

	require.NotNil(t, price)
	assert.Equal(t, 35.0, *price)
}

func TestTotalPrice_SingleHalfDay(t *testing.T) {
	price := TotalPrice(pricedSpace(35, 20), domain.BookingSingle, domain.SlotMorning, 1)

	require.NotNil(t, price)
	assert.Equal(t, 20.0, *price)
}

func TestTotalPrice_RangeMultipliesDayRate(t *testing.T) {
	// range(2025-02-10..2025-02-12) = 3 дня по 35
	price := TotalPrice(pricedSpace(35, 20), domain.BookingRange, domain.SlotFullDay, 3)

	require.NotNil(t, price)
	assert.Equal(t, 105.0, *price)
}

func TestTotalPrice_RecurringFullDay(t *testing.T) {
	// 4 понедельника по дневному тарифу
	price := TotalPrice(pricedSpace(35, 20), domain.BookingRecurring, domain.SlotFullDay, 4)

	require.NotNil(t, price)
	assert.Equal(t, 140.0, *price)
}

func TestTotalPrice_RecurringHalfDay(t *testing.T) {
	price := TotalPrice(pricedSpace(35, 20), domain.BookingRecurring, domain.SlotAfternoon, 4)

	require.NotNil(t, price)
	assert.Equal(t, 80.0, *price)
}

func TestTotalPrice_QuoteReturnsNil(t *testing.T) {
	space := pricedSpace(35, 20)
	space.Pricing.IsQuote = true

	assert.Nil(t, TotalPrice(space, domain.BookingSingle, domain.SlotFullDay, 1))
	assert.Nil(t, TotalPrice(space, domain.BookingRange, domain.SlotFullDay, 3))
	assert.Nil(t, TotalPrice(space, domain.BookingRecurring, domain.SlotFullDay, 4))
}

func TestTotalPrice_MissingRatesDefaultToZero(t *testing.T) {
	// Бесплатное пространство моделируется отсутствием тарифов
	price := TotalPrice(testSpace(), domain.BookingSingle, domain.SlotFullDay, 1)

	require.NotNil(t, price)
	assert.Equal(t, 0.0, *price)
}

func TestTotalPrice_NilSpace(t *testing.T) {
	assert.Nil(t, TotalPrice(nil, domain.BookingSingle, domain.SlotFullDay, 1))
}
