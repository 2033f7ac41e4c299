package validate_selection

import (
	"time"

	"github.com/cimillas/CML-SpaceService/internal/domain"
	validateSelection "github.com/cimillas/CML-SpaceService/internal/usecase/validate_selection"
)

// RecurrencePayload правило недельной повторяемости
type RecurrencePayload struct {
	DaysOfWeek []int   `json:"daysOfWeek"`        // 0 = воскресенье
	EndDate    *string `json:"endDate,omitempty"` // "2025-10-15"
}

// SelectionPayload выбор брони в HTTP запросе
type SelectionPayload struct {
	BookingType string             `json:"bookingType"` // single | range | recurring
	StartDate   *string            `json:"startDate,omitempty"`
	EndDate     *string            `json:"endDate,omitempty"`
	Slot        string             `json:"slot,omitempty"`
	Recurrence  *RecurrencePayload `json:"recurrence,omitempty"`
}

// ValidateSelectionRequest HTTP request model
type ValidateSelectionRequest struct {
	SpaceID   string           `json:"spaceId"`
	Selection SelectionPayload `json:"selection"`
}

// ValidateSelectionResponse HTTP response model
type ValidateSelectionResponse struct {
	IsValid        bool     `json:"isValid"`
	Error          *string  `json:"error,omitempty"`
	Duration       int      `json:"duration"`
	TotalPrice     *float64 `json:"totalPrice,omitempty"`
	Currency       string   `json:"currency,omitempty"`
	RecurringDates []string `json:"recurringDates,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateSelectionRequest) ToUseCaseRequest() (*validateSelection.Request, error) {
	selection, err := r.Selection.toDomainSelection()
	if err != nil {
		return nil, err
	}

	return &validateSelection.Request{
		SpaceID:   r.SpaceID,
		Selection: selection,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateSelection.Response) *ValidateSelectionResponse {
	out := &ValidateSelectionResponse{
		IsValid:    resp.IsValid,
		Error:      resp.Error,
		Duration:   resp.Duration,
		TotalPrice: resp.TotalPrice,
		Currency:   resp.Currency,
	}

	if len(resp.RecurringDates) > 0 {
		out.RecurringDates = make([]string, len(resp.RecurringDates))
		for i, d := range resp.RecurringDates {
			out.RecurringDates[i] = d.Format(domain.DateFormat)
		}
	}

	return out
}

// toDomainSelection парсит даты и собирает domain выбор
func (p *SelectionPayload) toDomainSelection() (domain.BookingSelection, error) {
	selection := domain.BookingSelection{
		BookingType: domain.BookingType(p.BookingType),
		Slot:        domain.Slot(p.Slot),
	}

	var err error
	if selection.StartDate, err = parseOptionalDate(p.StartDate); err != nil {
		return selection, err
	}
	if selection.EndDate, err = parseOptionalDate(p.EndDate); err != nil {
		return selection, err
	}

	if p.Recurrence != nil {
		if selection.Recurrence.EndDate, err = parseOptionalDate(p.Recurrence.EndDate); err != nil {
			return selection, err
		}
		selection.Recurrence.DaysOfWeek = make([]time.Weekday, len(p.Recurrence.DaysOfWeek))
		for i, d := range p.Recurrence.DaysOfWeek {
			selection.Recurrence.DaysOfWeek[i] = time.Weekday(d)
		}
	}

	return selection, nil
}

// parseOptionalDate парсит дату "YYYY-MM-DD"; nil или пустая строка = не выбрана
func parseOptionalDate(s *string) (time.Time, error) {
	if s == nil || *s == "" {
		return time.Time{}, nil
	}
	return time.Parse(domain.DateFormat, *s)
}
