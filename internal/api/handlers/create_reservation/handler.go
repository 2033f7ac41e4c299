package create_reservation

import (
	"errors"
	"net/http"

	"github.com/cimillas/CML-SpaceService/internal/api/handlers"
	"github.com/cimillas/CML-SpaceService/internal/api/middleware"
	createReservation "github.com/cimillas/CML-SpaceService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры брони"
	msgSpaceNotFound      = "пространство не найдено"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Отказ движка доступности несёт готовое сообщение для пользователя
		var rejection *createReservation.RejectionError
		if errors.As(err, &rejection) {
			h.logger.Warn("POST /bookings - Selection rejected: user_id=%d, space_id=%s, reason=%s",
				userID, req.SpaceID, rejection.Reason)
			handlers.RespondConflict(w, rejection.Reason)
			return
		}

		switch {
		case errors.Is(err, createReservation.ErrSpaceNotFound):
			h.logger.Warn("POST /bookings - Space not found: space_id=%s", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, space_id=%s, error=%v",
				userID, req.SpaceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create reservation: user_id=%d, space_id=%s, error=%v",
				userID, req.SpaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Reservation created: user_id=%d, space_id=%s, count=%d",
		userID, req.SpaceID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
