package availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/cimillas/CML-SpaceService/internal/domain"
)

// Сообщения для пользователя (сайт франкоязычный)
const (
	msgSpaceNotFound       = "Espace introuvable."
	msgSelectDate          = "Veuillez sélectionner une date."
	msgSlotUnavailable     = "Ce créneau n'est pas disponible."
	msgSelectStartEnd      = "Veuillez sélectionner une date de début et de fin."
	msgRangeUnavailable    = "Certains jours de la période sélectionnée ne sont pas disponibles."
	msgSelectStart         = "Veuillez sélectionner une date de début."
	msgSelectRecurrenceEnd = "Veuillez sélectionner une date de fin de récurrence."
	msgSelectWeekday       = "Veuillez sélectionner au moins un jour de la semaine."
	msgNoMatchingDates     = "Aucune date ne correspond à vos critères."

	maxConflictDatesInError = 3
)

// Result is the discriminated outcome of ValidateSelection: either valid,
// or invalid with one human-readable reason. Never both.
type Result struct {
	IsValid bool
	Error   string
}

func invalid(msg string) Result {
	return Result{IsValid: false, Error: msg}
}

// ValidateSelection accepts or rejects a full booking request against the
// reservation snapshot and the space's duration constraints. It always
// returns a Result - every failure mode is an expected business outcome,
// not an exceptional one.
func ValidateSelection(space *domain.Space, sel *domain.BookingSelection, today time.Time, reservations []*domain.Reservation) Result {
	if space == nil {
		return invalid(msgSpaceNotFound)
	}

	recurringDates := RecurringDates(sel.StartDate, sel.Recurrence.EndDate, sel.Recurrence.DaysOfWeek)

	switch sel.BookingType {
	case domain.BookingSingle:
		if !sel.HasStartDate() {
			return invalid(msgSelectDate)
		}
		if !IsSlotAvailable(space, sel.StartDate, sel.Slot, today, reservations) {
			return invalid(msgSlotUnavailable)
		}

	case domain.BookingRange:
		if !sel.HasStartDate() || !sel.HasEndDate() {
			return invalid(msgSelectStartEnd)
		}
		if !IsRangeAvailable(space, sel.StartDate, sel.EndDate, today, reservations) {
			return invalid(msgRangeUnavailable)
		}

	case domain.BookingRecurring:
		if !sel.HasStartDate() {
			return invalid(msgSelectStart)
		}
		if sel.Recurrence.EndDate.IsZero() {
			return invalid(msgSelectRecurrenceEnd)
		}
		if len(sel.Recurrence.DaysOfWeek) == 0 {
			return invalid(msgSelectWeekday)
		}
		if len(recurringDates) == 0 {
			return invalid(msgNoMatchingDates)
		}

		// Каждая сгенерированная дата проверяется отдельно; в ошибке
		// перечисляются максимум три конфликтных даты
		blocked := make([]string, 0)
		for _, d := range recurringDates {
			if !IsSlotAvailable(space, d, sel.Slot, today, reservations) {
				blocked = append(blocked, d.Format(domain.DateFormat))
			}
		}
		if len(blocked) > 0 {
			suffix := ""
			if len(blocked) > maxConflictDatesInError {
				suffix = "..."
				blocked = blocked[:maxConflictDatesInError]
			}
			return invalid(fmt.Sprintf("Conflit de disponibilité pour : %s%s.", strings.Join(blocked, ", "), suffix))
		}
	}

	// Ограничения длительности применяются после типоспецифичных проверок:
	// дни для single/range, вхождения для recurring
	duration := SelectionDuration(sel, recurringDates)

	if space.HasMinDuration() && duration < *space.MinDuration {
		return invalid(fmt.Sprintf("Le minimum pour cet espace est de %d %s.", *space.MinDuration, durationLabel(sel.BookingType)))
	}
	if space.HasMaxDuration() && duration > *space.MaxDuration {
		return invalid(fmt.Sprintf("Le maximum pour cet espace est de %d %s.", *space.MaxDuration, durationLabel(sel.BookingType)))
	}

	return Result{IsValid: true}
}

func durationLabel(t domain.BookingType) string {
	if t == domain.BookingRecurring {
		return "occurrences"
	}
	return "jours"
}
