package domain

// Slot represents a bookable time unit within a day.
// Admin-created entries may additionally carry a free-text time label
// (Reservation.CustomTimeLabel); the slot value itself stays one of the
// three kinds below for conflict detection.
type Slot string

const (
	SlotMorning   Slot = "MORNING"
	SlotAfternoon Slot = "AFTERNOON"
	SlotFullDay   Slot = "FULL_DAY"
)

// IsValid returns true for one of the three known slot kinds
func (s Slot) IsValid() bool {
	return s == SlotMorning || s == SlotAfternoon || s == SlotFullDay
}

// IsHalfDay returns true for the morning or afternoon slot
func (s Slot) IsHalfDay() bool {
	return s == SlotMorning || s == SlotAfternoon
}

// DayStatus is the derived classification of one calendar day for one space.
// It is recomputed fresh for every query and never cached across
// reservation-snapshot changes.
type DayStatus struct {
	IsPast            bool
	IsGlobalClosed    bool
	IsFullDay         bool
	IsPartiallyBooked bool
	IsBlocked         bool
}
