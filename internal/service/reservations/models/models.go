package models

import (
	"errors"
	"time"

	"github.com/cimillas/CML-SpaceService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену брони
type CancelReservationRequest struct {
	UserID             int64  `json:"userId"`
	IsAdmin            bool   `json:"-"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса брони
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetUserReservationsRequest запрос на получение броней пользователя
type GetUserReservationsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetSpaceReservationsRequest запрос на получение броней пространства
type GetSpaceReservationsRequest struct {
	SpaceID         string     `json:"spaceId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало окна (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец окна (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые брони
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetSpaceReservationsRequest) ToDomainFilter() (domain.SpaceReservationsFilter, error) {
	filter := domain.SpaceReservationsFilter{
		SpaceID:         r.SpaceID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID               int64    `json:"id"`
	SpaceID          string   `json:"spaceId"`
	UserID           int64    `json:"userId"`
	Date             string   `json:"date"`              // "2025-10-15"
	EndDate          *string  `json:"endDate,omitempty"` // Для многодневных броней
	Slot             string   `json:"slot"`
	Status           string   `json:"status"`
	IsGlobalClosure  bool     `json:"isGlobalClosure"`
	RecurringGroupID *string  `json:"recurringGroupId,omitempty"`
	TotalPrice       *float64 `json:"totalPrice,omitempty"`
	Purpose          *string  `json:"purpose,omitempty"`
	CustomTimeLabel  *string  `json:"customTimeLabel,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует domain бронь в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:               r.ID,
		SpaceID:          r.SpaceID,
		UserID:           r.UserID,
		Date:             r.Date.Format(domain.DateFormat),
		Slot:             string(r.Slot),
		Status:           string(r.Status),
		IsGlobalClosure:  r.IsGlobalClosure,
		RecurringGroupID: r.RecurringGroupID,
		TotalPrice:       r.TotalPrice,
		Purpose:          r.Purpose,
		CustomTimeLabel:  r.CustomTimeLabel,

		CancellationReason: r.CancellationReason,

		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}

	if r.EndDate != nil {
		endDate := r.EndDate.Format(domain.DateFormat)
		resp.EndDate = &endDate
	}
	if r.CancelledAt != nil {
		cancelledAt := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainReservationList конвертирует список domain броней в response
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	items := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		items = append(items, *FromDomainReservation(r))
	}

	return &ReservationListResponse{
		Reservations: items,
		Total:        len(items),
	}
}

// ToDomainReservationStatus конвертирует строку в domain статус
func ToDomainReservationStatus(s string) (domain.ReservationStatus, error) {
	switch domain.ReservationStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusDone, domain.StatusCancelled:
		return domain.ReservationStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
