package validate_selection

import (
	"context"

	validateSelection "github.com/cimillas/CML-SpaceService/internal/usecase/validate_selection"
)

type ValidateSelectionUseCase interface {
	Execute(ctx context.Context, req *validateSelection.Request) (*validateSelection.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
