package availability

import (
	"time"

	"github.com/cimillas/CML-SpaceService/internal/domain"
)

// RecurringDates expands a weekly recurrence rule into the ordered list of
// concrete dates: every day in [start, end] whose weekday belongs to
// daysOfWeek. The result is recomputed from inputs on every call.
//
// Обход ограничен domain.MaxRecurrenceIterations днями - защита по стоимости
// от дат конца далеко в будущем, а не бизнес-правило.
func RecurringDates(start, end time.Time, daysOfWeek []time.Weekday) []time.Time {
	dates := make([]time.Time, 0)

	if start.IsZero() || end.IsZero() || len(daysOfWeek) == 0 {
		return dates
	}

	s := normalize(start)
	e := normalize(end)
	if e.Before(s) {
		return dates
	}

	count := 0
	for d := s; !d.After(e) && count < domain.MaxRecurrenceIterations; d = d.AddDate(0, 0, 1) {
		if containsWeekday(daysOfWeek, d.Weekday()) {
			dates = append(dates, d)
		}
		count++
	}

	return dates
}
