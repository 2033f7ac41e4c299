package availability

import (
	"time"

	"github.com/cimillas/CML-SpaceService/internal/domain"
)

// SelectionDuration returns the count of booked units for a selection:
// day-count for single/range bookings, occurrence-count for recurring ones.
// recurringDates is the output of RecurringDates for the same selection.
func SelectionDuration(sel *domain.BookingSelection, recurringDates []time.Time) int {
	if sel.BookingType == domain.BookingRecurring {
		return len(recurringDates)
	}
	if !sel.HasStartDate() {
		return 0
	}
	if sel.BookingType == domain.BookingSingle {
		return 1
	}
	if !sel.HasEndDate() {
		return 1
	}
	return inclusiveDayCount(sel.StartDate, sel.EndDate)
}

// TotalPrice computes the total price of a selection, or nil when the space
// is priced manually (IsQuote) and the UI must display "sur devis".
//
// Отсутствующие тарифы считаются нулём: бесплатное пространство моделируется
// пропуском тарифа, а не ошибкой.
func TotalPrice(space *domain.Space, bookingType domain.BookingType, slot domain.Slot, duration int) *float64 {
	if space == nil || space.Pricing.IsQuote {
		return nil
	}

	dayRate := rateOrZero(space.Pricing.Day)
	halfDayRate := rateOrZero(space.Pricing.HalfDay)

	var total float64
	switch bookingType {
	case domain.BookingSingle:
		if slot == domain.SlotFullDay {
			total = dayRate
		} else {
			total = halfDayRate
		}
	case domain.BookingRecurring:
		// Тариф за одно вхождение умножается на число сгенерированных дат
		base := halfDayRate
		if slot == domain.SlotFullDay {
			base = dayRate
		}
		total = base * float64(duration)
	case domain.BookingRange:
		total = dayRate * float64(duration)
	}

	return &total
}

func rateOrZero(rate *float64) float64 {
	if rate == nil {
		return 0
	}
	return *rate
}
