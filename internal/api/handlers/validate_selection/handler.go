package validate_selection

import (
	"errors"
	"net/http"

	"github.com/cimillas/CML-SpaceService/internal/api/handlers"
	validateSelection "github.com/cimillas/CML-SpaceService/internal/usecase/validate_selection"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры выбора"
)

type Handler struct {
	useCase ValidateSelectionUseCase
	logger  Logger
}

func NewHandler(useCase ValidateSelectionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/validate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validateSelection.ErrInvalidInput):
			h.logger.Warn("POST /bookings/validate - Invalid input: space_id=%s, error=%v", req.SpaceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/validate - Failed to validate selection: space_id=%s, error=%v",
				req.SpaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/validate - Selection validated: space_id=%s, is_valid=%t",
		req.SpaceID, result.IsValid)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
