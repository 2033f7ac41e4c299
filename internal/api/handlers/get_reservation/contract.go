package get_reservation

import (
	"context"

	"github.com/cimillas/CML-SpaceService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetByID(ctx context.Context, id int64, userID int64, isAdmin bool) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
