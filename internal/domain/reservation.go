package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusDone      ReservationStatus = "DONE"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation represents a committed or pending occupation of a space.
// A reservation may span several calendar days (EndDate set) and, for
// recurring bookings, belongs to a group identified by RecurringGroupID.
type Reservation struct {
	ID      int64
	SpaceID string
	UserID  int64

	Date    time.Time  // Первый день брони (включительно)
	EndDate *time.Time // Последний день брони (включительно), nil = один день
	Slot    Slot

	Status ReservationStatus

	// IsGlobalClosure помечает административную блокировку: пространство
	// закрыто целиком на весь период, независимо от слота.
	IsGlobalClosure bool

	// RecurringGroupID связывает брони, созданные одним recurring-запросом
	RecurringGroupID *string

	// Denormalized data for history
	TotalPrice      *float64
	Purpose         *string
	CustomTimeLabel *string // Произвольная подпись времени для админских записей

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the reservation has been cancelled.
// Cancelled reservations never participate in conflict detection.
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// IsActive returns true if the reservation occupies its dates
func (r *Reservation) IsActive() bool {
	for _, s := range ActiveStatuses {
		if r.Status == s {
			return true
		}
	}
	return false
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsMultiDay returns true if the reservation spans more than one calendar day
func (r *Reservation) IsMultiDay() bool {
	return r.EndDate != nil && !r.EndDate.Equal(r.Date)
}

// LastDay returns the inclusive last day of the reservation
func (r *Reservation) LastDay() time.Time {
	if r.EndDate != nil {
		return *r.EndDate
	}
	return r.Date
}

// SpaceReservationsFilter фильтр для выборки броней пространства
type SpaceReservationsFilter struct {
	SpaceID         string             // Обязательный параметр
	StartDate       *time.Time         // Начало окна пересечения (опционально)
	EndDate         *time.Time         // Конец окна пересечения (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые брони
}
