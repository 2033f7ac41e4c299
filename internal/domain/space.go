package domain

import "time"

// SpaceCategory classifies a bookable space in the catalog
type SpaceCategory string

const (
	CategoryCommerce  SpaceCategory = "commerce"
	CategoryOffice    SpaceCategory = "office"
	CategoryCreative  SpaceCategory = "creative"
	CategoryEvent     SpaceCategory = "event"
	CategoryMeeting   SpaceCategory = "meeting"
	CategoryWellness  SpaceCategory = "wellness"
	CategoryCoworking SpaceCategory = "coworking"
	CategoryOther     SpaceCategory = "other"
)

// Pricing describes the rate table of a space.
// Missing rates mean "free" for that unit, not an error.
// IsQuote marks spaces priced manually ("sur devis") - no automatic total.
type Pricing struct {
	HalfDay  *float64
	Day      *float64
	Month    *float64
	IsQuote  bool
	Currency string
}

// Space represents a bookable resource of the site.
// Created and edited by administrators; read-only for the booking engine.
type Space struct {
	ID          string
	Name        string
	Description string
	Category    SpaceCategory
	Capacity    int

	Pricing Pricing

	// MinDuration / MaxDuration bound the count of booked units:
	// day-count for single/range bookings, occurrence-count for recurring ones.
	MinDuration *int
	MaxDuration *int

	// AvailableSlots, when set, restricts which slot kinds may be selected.
	// nil means every slot kind is allowed.
	AvailableSlots []Slot

	// AutoApprove makes accepted bookings start as CONFIRMED instead of PENDING
	AutoApprove bool

	// ShowInCalendar controls whether reservations appear in the public calendar
	ShowInCalendar bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AllowsSlot returns true if the slot kind may be selected for this space
func (s *Space) AllowsSlot(slot Slot) bool {
	if s.AvailableSlots == nil {
		return true
	}
	for _, allowed := range s.AvailableSlots {
		if allowed == slot {
			return true
		}
	}
	return false
}

// HasMinDuration returns true if a lower bound on booked units is configured
func (s *Space) HasMinDuration() bool {
	return s.MinDuration != nil && *s.MinDuration > 0
}

// HasMaxDuration returns true if an upper bound on booked units is configured
func (s *Space) HasMaxDuration() bool {
	return s.MaxDuration != nil && *s.MaxDuration > 0
}
