package get_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/cimillas/CML-SpaceService/internal/availability"
	"github.com/cimillas/CML-SpaceService/internal/domain"
	spaceRepo "github.com/cimillas/CML-SpaceService/internal/infra/storage/space"
)

// maxWindowDays ограничивает размер запрашиваемого окна календаря
const maxWindowDays = 366

// UseCase use case для построения календаря доступности пространства.
// Снапшот броней читается один раз на всё окно, статус каждого дня
// считается движком на этом снапшоте.
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

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: space=%s, from=%s, to=%s",
		req.SpaceID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем пространство
	space, err := uc.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("GetCalendar: space id=%s not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("GetCalendar: failed to get space id=%s: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	// 4. Читаем снапшот броней, пересекающих окно
	reservations, err := uc.reservationRepo.GetBySpaceWithFilter(ctx, domain.SpaceReservationsFilter{
		SpaceID:   req.SpaceID,
		StartDate: &req.From,
		EndDate:   &req.To,
	})
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get reservations for space=%s: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Считаем статус каждого дня окна
	days := make([]Day, 0)
	for d := req.From; !d.After(req.To); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{
			Date:   d,
			Status: availability.Evaluate(space, d, now, reservations),
		})
	}

	return &Response{
		SpaceID: req.SpaceID,
		Days:    days,
	}, nil
}

// validateRequest проверяет корректность запрошенного окна
func validateRequest(req *Request) error {
	if req.SpaceID == "" {
		return fmt.Errorf("%w: spaceId is required", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}

	if req.To.Sub(req.From).Hours() > 24*maxWindowDays {
		return fmt.Errorf("%w: window exceeds %d days", ErrInvalidInput, maxWindowDays)
	}

	return nil
}
