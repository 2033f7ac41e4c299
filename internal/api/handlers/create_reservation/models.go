package create_reservation

import (
	"time"

	"github.com/cimillas/CML-SpaceService/internal/domain"
	createReservation "github.com/cimillas/CML-SpaceService/internal/usecase/create_reservation"
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

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	SpaceID   string           `json:"spaceId"`
	Selection SelectionPayload `json:"selection"`
	Purpose   *string          `json:"purpose,omitempty"`
}

// CreatedReservationPayload одна созданная запись брони
type CreatedReservationPayload struct {
	ID      int64   `json:"id"`
	Date    string  `json:"date"`
	EndDate *string `json:"endDate,omitempty"`
	Slot    string  `json:"slot"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	Reservations     []CreatedReservationPayload `json:"reservations"`
	Status           string                      `json:"status"`
	Duration         int                         `json:"duration"`
	TotalPrice       *float64                    `json:"totalPrice,omitempty"`
	Currency         string                      `json:"currency,omitempty"`
	RecurringGroupID *string                     `json:"recurringGroupId,omitempty"`
	CreatedAt        string                      `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	selection, err := r.Selection.toDomainSelection()
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:    userID,
		SpaceID:   r.SpaceID,
		Selection: selection,
		Purpose:   r.Purpose,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	reservations := make([]CreatedReservationPayload, 0, len(resp.Reservations))
	for _, res := range resp.Reservations {
		payload := CreatedReservationPayload{
			ID:   res.ID,
			Date: res.Date.Format(domain.DateFormat),
			Slot: res.Slot,
		}
		if res.EndDate != nil {
			endDate := res.EndDate.Format(domain.DateFormat)
			payload.EndDate = &endDate
		}
		reservations = append(reservations, payload)
	}

	return &CreateReservationResponse{
		Reservations:     reservations,
		Status:           resp.Status,
		Duration:         resp.Duration,
		TotalPrice:       resp.TotalPrice,
		Currency:         resp.Currency,
		RecurringGroupID: resp.RecurringGroupID,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
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
