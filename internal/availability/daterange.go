package availability

import (
	"time"

	"github.com/cimillas/CML-SpaceService/internal/domain"
)

// IsRangeAvailable reports whether every day in the closed interval
// [start, end] is bookable. A range booking always occupies the full day,
// so individual slots are not checked.
func IsRangeAvailable(space *domain.Space, start, end, today time.Time, reservations []*domain.Reservation) bool {
	if space == nil {
		return false
	}
	if start.IsZero() || end.IsZero() {
		return false
	}

	s := normalize(start)
	e := normalize(end)

	// Один заблокированный день делает недоступным весь период
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		if Evaluate(space, d, today, reservations).IsBlocked {
			return false
		}
	}

	return true
}
