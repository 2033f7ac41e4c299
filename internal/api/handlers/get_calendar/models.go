package get_calendar

import (
	"github.com/cimillas/CML-SpaceService/internal/domain"
	getCalendar "github.com/cimillas/CML-SpaceService/internal/usecase/get_calendar"
)

// DayPayload статус одного календарного дня
type DayPayload struct {
	Date              string `json:"date"` // "2025-10-15"
	IsPast            bool   `json:"isPast"`
	IsGlobalClosed    bool   `json:"isGlobalClosed"`
	IsFullDay         bool   `json:"isFullDay"`
	IsPartiallyBooked bool   `json:"isPartiallyBooked"`
	IsBlocked         bool   `json:"isBlocked"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	SpaceID string       `json:"spaceId"`
	Days    []DayPayload `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]DayPayload, 0, len(resp.Days))
	for _, day := range resp.Days {
		days = append(days, DayPayload{
			Date:              day.Date.Format(domain.DateFormat),
			IsPast:            day.Status.IsPast,
			IsGlobalClosed:    day.Status.IsGlobalClosed,
			IsFullDay:         day.Status.IsFullDay,
			IsPartiallyBooked: day.Status.IsPartiallyBooked,
			IsBlocked:         day.Status.IsBlocked,
		})
	}

	return &CalendarResponse{
		SpaceID: resp.SpaceID,
		Days:    days,
	}
}
