package spaces

import (
	"context"
	"errors"
	"fmt"

	"github.com/cimillas/CML-SpaceService/internal/domain"
	spaceRepo "github.com/cimillas/CML-SpaceService/internal/infra/storage/space"
	"github.com/cimillas/CML-SpaceService/internal/service/spaces/models"
)

// Service сервис для работы с каталогом пространств
type Service struct {
	spaceRepo       SpaceRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса пространств
func NewService(
	spaceRepo SpaceRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		spaceRepo:       spaceRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// List получает каталог пространств
func (s *Service) List(ctx context.Context) (*models.SpaceListResponse, error) {
	s.logger.Info("List: fetching space catalog")

	spaces, err := s.spaceRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d spaces", len(spaces))
	return models.FromDomainSpaceList(spaces), nil
}

// GetByID получает пространство по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.SpaceResponse, error) {
	s.logger.Info("GetByID: fetching space id=%s", id)

	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("GetByID: space id=%s not found", id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("GetByID: repository error for space id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpace(space), nil
}

// Create создает новое пространство
// Доступ ограничен администраторами на уровне маршрута
func (s *Service) Create(ctx context.Context, req *models.CreateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Create: creating space id=%s, name=%s", req.ID, req.Name)

	if err := validateSpacePayload(req.ID, req.Name, req.Capacity); err != nil {
		s.logger.Warn("Create: validation failed for space id=%s: %v", req.ID, err)
		return nil, err
	}

	space, err := req.ToDomainSpace()
	if err != nil {
		s.logger.Warn("Create: invalid payload for space id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.spaceRepo.Create(ctx, space)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceAlreadyExists) {
			s.logger.Warn("Create: space id=%s already exists", req.ID)
			return nil, ErrSpaceAlreadyExists
		}
		s.logger.Error("Create: repository error for space id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created space id=%s", created.ID)
	return models.FromDomainSpace(created), nil
}

// Update обновляет пространство целиком
// Доступ ограничен администраторами на уровне маршрута
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Update: updating space id=%s", id)

	if err := validateSpacePayload(id, req.Name, req.Capacity); err != nil {
		s.logger.Warn("Update: validation failed for space id=%s: %v", id, err)
		return nil, err
	}

	space, err := req.ToDomainSpace(id)
	if err != nil {
		s.logger.Warn("Update: invalid payload for space id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.spaceRepo.Update(ctx, space); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("Update: space id=%s not found", id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("Update: repository error for space id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated space id=%s", id)
	return s.GetByID(ctx, id)
}

// CreateClosure создает административное закрытие пространства.
// Закрытие хранится как подтверждённая бронь с пометкой is_global_closure:
// движок доступности блокирует весь период целиком, независимо от слота.
func (s *Service) CreateClosure(ctx context.Context, req *models.CreateClosureRequest) (*models.ReservationID, error) {
	s.logger.Info("CreateClosure: closing space=%s from %s by user=%d",
		req.SpaceID, req.Date.Format(domain.DateFormat), req.UserID)

	if req.SpaceID == "" {
		return nil, fmt.Errorf("%w: spaceId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.EndDate != nil && req.EndDate.Before(req.Date) {
		return nil, fmt.Errorf("%w: endDate is before date", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxPurposeLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxPurposeLength)
	}
	if req.Label != nil && len(*req.Label) > domain.MaxCustomTimeLabelLength {
		return nil, fmt.Errorf("%w: label exceeds %d characters", ErrInvalidInput, domain.MaxCustomTimeLabelLength)
	}

	// Проверяем, что пространство существует
	if _, err := s.spaceRepo.GetByID(ctx, req.SpaceID); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("CreateClosure: space id=%s not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("CreateClosure: repository error for space id=%s: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: CreateClosure - repository error: %v", ErrInternal, err)
	}

	closure := &domain.Reservation{
		SpaceID:         req.SpaceID,
		UserID:          req.UserID,
		Date:            req.Date,
		EndDate:         req.EndDate,
		Slot:            domain.SlotFullDay,
		Status:          domain.StatusConfirmed,
		IsGlobalClosure: true,
		Purpose:         req.Reason,
		CustomTimeLabel: req.Label,
	}

	created, err := s.reservationRepo.Create(ctx, closure)
	if err != nil {
		s.logger.Error("CreateClosure: failed to create closure for space=%s: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: CreateClosure - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateClosure: successfully closed space=%s, reservation id=%d", req.SpaceID, created.ID)
	return &models.ReservationID{ID: created.ID}, nil
}

// validateSpacePayload проверяет общие для создания и обновления поля
func validateSpacePayload(id, name string, capacity int) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", ErrInvalidInput)
	}
	return nil
}
