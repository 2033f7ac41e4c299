package validate_selection

import (
	"fmt"

	"github.com/cimillas/CML-SpaceService/internal/domain"
)

// validateRequest проверяет структурную корректность запроса.
// Бизнес-проверки (доступность, длительность) выполняет движок -
// здесь отсекается только то, что не является осмысленным запросом.
func validateRequest(req *Request) error {
	if req.SpaceID == "" {
		return fmt.Errorf("%w: spaceId is required", ErrInvalidInput)
	}

	if !req.Selection.BookingType.IsValid() {
		return fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, req.Selection.BookingType)
	}

	// Для range слот не используется: многодневная бронь всегда занимает день целиком
	if req.Selection.BookingType != domain.BookingRange && !req.Selection.Slot.IsValid() {
		return fmt.Errorf("%w: unknown slot %q", ErrInvalidInput, req.Selection.Slot)
	}

	for _, d := range req.Selection.Recurrence.DaysOfWeek {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: day of week %d is out of range", ErrInvalidInput, d)
		}
	}

	return nil
}
