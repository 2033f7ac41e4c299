package domain

import "time"

// BookingType is the kind of booking a user is composing
type BookingType string

const (
	BookingSingle    BookingType = "single"    // один день
	BookingRange     BookingType = "range"     // непрерывный период
	BookingRecurring BookingType = "recurring" // недельная повторяемость
)

// IsValid returns true for one of the three known booking types
func (t BookingType) IsValid() bool {
	return t == BookingSingle || t == BookingRange || t == BookingRecurring
}

// RecurrenceConfig is a weekly recurrence rule: which weekdays to book,
// bounded by an end date. Weekday indices follow time.Weekday (0 = Sunday).
type RecurrenceConfig struct {
	DaysOfWeek []time.Weekday
	EndDate    time.Time // нулевое значение = не задана
}

// BookingSelection is the in-progress user intent, built by the UI and
// passed into validation as an immutable value. It is never persisted.
type BookingSelection struct {
	BookingType BookingType
	StartDate   time.Time // нулевое значение = не выбрана
	EndDate     time.Time // используется только для range
	Slot        Slot
	Recurrence  RecurrenceConfig // используется только для recurring
}

// HasStartDate returns true if the user picked a start date
func (s *BookingSelection) HasStartDate() bool {
	return !s.StartDate.IsZero()
}

// HasEndDate returns true if the user picked an end date
func (s *BookingSelection) HasEndDate() bool {
	return !s.EndDate.IsZero()
}
