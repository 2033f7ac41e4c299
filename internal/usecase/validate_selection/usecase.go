package validate_selection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cimillas/CML-SpaceService/internal/availability"
	"github.com/cimillas/CML-SpaceService/internal/domain"
	spaceRepo "github.com/cimillas/CML-SpaceService/internal/infra/storage/space"
)

// UseCase use case для проверки выбора брони без её создания.
// Используется фронтом на каждом шаге выбора дат.
type UseCase struct {
	spaceRepo       SpaceRepository
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	spaceRepo SpaceRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		spaceRepo:       spaceRepo,
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет проверку выбора брони.
// Отклонённый выбор - ожидаемый исход, а не ошибка: причина
// возвращается в Response.Error, err остаётся nil.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateSelection: space=%s, type=%s, slot=%s",
		req.SpaceID, req.Selection.BookingType, req.Selection.Slot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateSelection: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем пространство. Отсутствие - не ошибка: движок
	// вернёт фиксированное сообщение для nil-пространства
	space, err := uc.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("ValidateSelection: space id=%s not found", req.SpaceID)
			space = nil
		} else {
			uc.logger.Error("ValidateSelection: failed to get space id=%s: %v", req.SpaceID, err)
			return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
		}
	}

	// 4. Загружаем снапшот броней, пересекающих окно выбора
	var reservations []*domain.Reservation
	if space != nil && req.Selection.HasStartDate() {
		from, to := selectionWindow(&req.Selection)
		reservations, err = uc.reservationRepo.GetBySpaceWithFilter(ctx, domain.SpaceReservationsFilter{
			SpaceID:   req.SpaceID,
			StartDate: &from,
			EndDate:   &to,
		})
		if err != nil {
			uc.logger.Error("ValidateSelection: failed to get reservations for space=%s: %v", req.SpaceID, err)
			return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}
	}

	// 5. Прогоняем выбор через движок доступности
	result := availability.ValidateSelection(space, &req.Selection, now, reservations)

	// 6. Длительность и цена считаются и для отклонённого выбора
	recurringDates := availability.RecurringDates(
		req.Selection.StartDate, req.Selection.Recurrence.EndDate, req.Selection.Recurrence.DaysOfWeek)
	duration := availability.SelectionDuration(&req.Selection, recurringDates)
	totalPrice := availability.TotalPrice(space, req.Selection.BookingType, req.Selection.Slot, duration)

	resp := &Response{
		IsValid:        result.IsValid,
		Duration:       duration,
		TotalPrice:     totalPrice,
		RecurringDates: recurringDates,
	}
	if !result.IsValid {
		reason := result.Error
		resp.Error = &reason
		uc.logger.Info("ValidateSelection: space=%s rejected: %s", req.SpaceID, reason)
	}
	if space != nil {
		resp.Currency = space.Pricing.Currency
	}

	return resp, nil
}

// selectionWindow возвращает минимальное окно дат, покрывающее выбор.
// Брони вне окна не могут повлиять на результат проверки.
func selectionWindow(sel *domain.BookingSelection) (time.Time, time.Time) {
	from := sel.StartDate
	to := sel.StartDate

	if sel.HasEndDate() && sel.EndDate.After(to) {
		to = sel.EndDate
	}
	if !sel.Recurrence.EndDate.IsZero() && sel.Recurrence.EndDate.After(to) {
		to = sel.Recurrence.EndDate
	}

	return from, to
}
