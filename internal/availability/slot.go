package availability

import (
	"time"

	"github.com/cimillas/CML-SpaceService/internal/domain"
)

// IsSlotAvailable reports whether one specific slot on one date is bookable.
//
// Порядок проверок:
//  1. день целиком заблокирован (прошлое, глобальная блокировка, полный день);
//  2. слот не входит в whitelist пространства (если он задан);
//  3. точный конфликт слот-в-слот: непогашенная бронь с той же датой начала
//     и тем же слотом. Проверка авторитетна сама по себе и не полагается на
//     агрегатный статус дня.
func IsSlotAvailable(space *domain.Space, date time.Time, slot domain.Slot, today time.Time, reservations []*domain.Reservation) bool {
	if space == nil {
		return false
	}

	status := Evaluate(space, date, today, reservations)
	if status.IsBlocked {
		return false
	}

	if !space.AllowsSlot(slot) {
		return false
	}

	day := normalize(date)
	for _, r := range reservations {
		if r.IsCancelled() || r.SpaceID != space.ID {
			continue
		}
		// Сравниваем только дату начала: многодневные перекрытия уже
		// отражены в статусе дня
		if !normalize(r.Date).Equal(day) {
			continue
		}
		if r.Slot == slot {
			return false
		}
	}

	return true
}
