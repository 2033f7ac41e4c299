package availability

import (
	"time"

	"github.com/cimillas/CML-SpaceService/internal/domain"
)

// Evaluate classifies one calendar day of one space against a reservation
// snapshot. Pure function of its inputs: no I/O, no caching, the caller
// supplies the current day.
//
// Правила (в порядке применения):
//   - отменённые брони и брони других пространств не учитываются;
//   - бронь попадает в день, если день лежит в [Date, EndDate] включительно;
//   - глобальная блокировка закрывает день целиком, независимо от слота;
//   - многодневная бронь всегда занимает полный день, даже если её слот
//     формально полудневный;
//   - утро + день == полный день; ровно один из двух == частичная занятость.
func Evaluate(space *domain.Space, date, today time.Time, reservations []*domain.Reservation) domain.DayStatus {
	if space == nil {
		return domain.DayStatus{IsBlocked: true}
	}

	day := normalize(date)
	isPast := isDateInPast(day, today)

	var isGlobalClosed bool

	// Отбираем брони этого пространства, затрагивающие запрошенный день
	dayReservations := make([]*domain.Reservation, 0)
	for _, r := range reservations {
		if r.IsCancelled() || r.SpaceID != space.ID {
			continue
		}

		rStart := normalize(r.Date)
		rEnd := normalize(r.LastDay())
		if !containsDay(day, rStart, rEnd) {
			continue
		}

		if r.IsGlobalClosure {
			isGlobalClosed = true
		}
		dayReservations = append(dayReservations, r)
	}

	var isFullDay, isPartiallyBooked bool
	if !isGlobalClosed {
		var hasFullRange, morningTaken, afternoonTaken bool
		for _, r := range dayReservations {
			if r.Slot == domain.SlotFullDay || r.IsMultiDay() {
				hasFullRange = true
			}
			// Полудневные слоты учитываются только для броней, начинающихся
			// ровно в этот день: многодневные уже покрыты hasFullRange
			if normalize(r.Date).Equal(day) {
				switch r.Slot {
				case domain.SlotMorning:
					morningTaken = true
				case domain.SlotAfternoon:
					afternoonTaken = true
				}
			}
		}

		isFullDay = hasFullRange || (morningTaken && afternoonTaken)
		isPartiallyBooked = !isFullDay && (morningTaken || afternoonTaken)
	}

	return domain.DayStatus{
		IsPast:            isPast,
		IsGlobalClosed:    isGlobalClosed,
		IsFullDay:         isFullDay,
		IsPartiallyBooked: isPartiallyBooked,
		IsBlocked:         isPast || isGlobalClosed || isFullDay,
	}
}
