package spaces

import (
	"context"

	"github.com/cimillas/CML-SpaceService/internal/domain"
)

// SpaceRepository интерфейс репозитория пространств
type SpaceRepository interface {
	Create(ctx context.Context, space *domain.Space) (*domain.Space, error)
	Update(ctx context.Context, space *domain.Space) error
	GetByID(ctx context.Context, id string) (*domain.Space, error)
	List(ctx context.Context) ([]*domain.Space, error)
}

// ReservationRepository интерфейс репозитория броней.
// Нужен для административных закрытий: закрытие хранится как бронь
// с пометкой is_global_closure.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
