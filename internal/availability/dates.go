package availability

import "time"

// normalize пересобирает календарные компоненты даты в полночь UTC.
// Граничные даты приходят распарсенными как UTC, а текущее время - в зоне
// сервера: сравнение инстантов в разных зонах сдвигает день. Единая зона
// сводит всё к сравнению календарных дат.
func normalize(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, today time.Time) bool {
	return normalize(date).Before(normalize(today))
}

// containsDay проверяет попадание дня в интервал [start, end] включительно
func containsDay(day, start, end time.Time) bool {
	return !day.Before(start) && !day.After(end)
}

// inclusiveDayCount возвращает число календарных дней в интервале [start, end]
// включительно. Перепутанные границы меняются местами.
func inclusiveDayCount(start, end time.Time) int {
	s := normalize(start)
	e := normalize(end)
	if e.Before(s) {
		s, e = e, s
	}
	// После нормализации в UTC разница всегда кратна суткам
	return int(e.Sub(s).Hours()/24) + 1
}

// containsWeekday проверяет членство дня недели в наборе правила повторяемости
func containsWeekday(days []time.Weekday, day time.Weekday) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
