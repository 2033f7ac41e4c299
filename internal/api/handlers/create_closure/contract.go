package create_closure

import (
	"context"

	"github.com/cimillas/CML-SpaceService/internal/service/spaces/models"
)

type SpacesService interface {
	CreateClosure(ctx context.Context, req *models.CreateClosureRequest) (*models.ReservationID, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
