package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cimillas/CML-SpaceService/internal/availability"
	"github.com/cimillas/CML-SpaceService/internal/domain"
	spaceRepo "github.com/cimillas/CML-SpaceService/internal/infra/storage/space"
	"github.com/cimillas/CML-SpaceService/pkg/ptr"
)

// UseCase use case для создания брони.
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// снапшот броней читается с блокировкой FOR UPDATE, движок перепроверяет
// доступность на свежих данных, и только потом выполняется вставка.
type UseCase struct {
	spaceRepo       SpaceRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	spaceRepo SpaceRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		spaceRepo:       spaceRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, space=%s, type=%s, slot=%s",
		req.UserID, req.SpaceID, req.Selection.BookingType, req.Selection.Slot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// Переменная для хранения результата
	var result *Response

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем пространство
		space, err := uc.spaceRepo.GetByID(txCtx, req.SpaceID)
		if err != nil {
			if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
				uc.logger.Warn("CreateReservation: space id=%s not found", req.SpaceID)
				return ErrSpaceNotFound
			}
			uc.logger.Error("CreateReservation: failed to get space id=%s: %v", req.SpaceID, err)
			return fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
		}

		// 3.2. Читаем снапшот броней в окне выбора с блокировкой (FOR UPDATE)
		from, to := selectionWindow(&req.Selection)
		reservations, err := uc.reservationRepo.GetBySpaceWithFilter(txCtx, domain.SpaceReservationsFilter{
			SpaceID:   req.SpaceID,
			StartDate: &from,
			EndDate:   &to,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations for space=%s: %v", req.SpaceID, err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 3.3. Перепроверяем выбор движком на свежем снапшоте
		check := availability.ValidateSelection(space, &req.Selection, now, reservations)
		if !check.IsValid {
			uc.logger.Warn("CreateReservation: space=%s rejected: %s", req.SpaceID, check.Error)
			return &RejectionError{Reason: check.Error}
		}

		// 3.4. Считаем длительность и цену
		recurringDates := availability.RecurringDates(
			req.Selection.StartDate, req.Selection.Recurrence.EndDate, req.Selection.Recurrence.DaysOfWeek)
		duration := availability.SelectionDuration(&req.Selection, recurringDates)
		totalPrice := availability.TotalPrice(space, req.Selection.BookingType, req.Selection.Slot, duration)

		// 3.5. Статус по политике пространства
		status := domain.StatusPending
		if space.AutoApprove {
			status = domain.StatusConfirmed
		}

		// 3.6. Собираем записи: одна для single/range, по записи на дату для recurring
		rows := buildReservations(req, space, status, recurringDates)

		// 3.7. Сохраняем записи
		created := make([]CreatedReservation, 0, len(rows))
		var createdAt time.Time
		for _, row := range rows {
			saved, err := uc.reservationRepo.Create(txCtx, row)
			if err != nil {
				uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
				return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
			}
			created = append(created, CreatedReservation{
				ID:      saved.ID,
				Date:    saved.Date,
				EndDate: saved.EndDate,
				Slot:    string(saved.Slot),
			})
			createdAt = saved.CreatedAt
		}

		result = &Response{
			Reservations: created,
			Status:       string(status),
			Duration:     duration,
			TotalPrice:   totalPrice,
			Currency:     space.Pricing.Currency,
			CreatedAt:    createdAt,
		}
		if len(rows) > 0 && rows[0].RecurringGroupID != nil {
			result.RecurringGroupID = rows[0].RecurringGroupID
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created %d reservation(s) for user=%d, space=%s",
		len(result.Reservations), req.UserID, req.SpaceID)

	return result, nil
}

// buildReservations разворачивает проверенный выбор в записи для вставки
func buildReservations(req *Request, space *domain.Space, status domain.ReservationStatus, recurringDates []time.Time) []*domain.Reservation {
	sel := &req.Selection

	switch sel.BookingType {
	case domain.BookingRange:
		endDate := sel.EndDate
		duration := availability.SelectionDuration(sel, nil)
		return []*domain.Reservation{{
			SpaceID:    req.SpaceID,
			UserID:     req.UserID,
			Date:       sel.StartDate,
			EndDate:    &endDate,
			Slot:       domain.SlotFullDay,
			Status:     status,
			TotalPrice: availability.TotalPrice(space, domain.BookingRange, domain.SlotFullDay, duration),
			Purpose:    req.Purpose,
		}}

	case domain.BookingRecurring:
		// Каждая дата - отдельная запись; группа связана общим ID,
		// цена денормализуется по вхождению
		groupID := ptr.Ptr(uuid.NewString())
		perOccurrence := availability.TotalPrice(space, domain.BookingSingle, sel.Slot, 1)

		rows := make([]*domain.Reservation, 0, len(recurringDates))
		for _, d := range recurringDates {
			rows = append(rows, &domain.Reservation{
				SpaceID:          req.SpaceID,
				UserID:           req.UserID,
				Date:             d,
				Slot:             sel.Slot,
				Status:           status,
				RecurringGroupID: groupID,
				TotalPrice:       perOccurrence,
				Purpose:          req.Purpose,
			})
		}
		return rows

	default: // domain.BookingSingle
		return []*domain.Reservation{{
			SpaceID:    req.SpaceID,
			UserID:     req.UserID,
			Date:       sel.StartDate,
			Slot:       sel.Slot,
			Status:     status,
			TotalPrice: availability.TotalPrice(space, domain.BookingSingle, sel.Slot, 1),
			Purpose:    req.Purpose,
		}}
	}
}

// selectionWindow возвращает минимальное окно дат, покрывающее выбор
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
