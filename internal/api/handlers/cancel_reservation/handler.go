package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cimillas/CML-SpaceService/internal/api/handlers"
	"github.com/cimillas/CML-SpaceService/internal/api/middleware"
	"github.com/cimillas/CML-SpaceService/internal/service/reservations"
	"github.com/cimillas/CML-SpaceService/internal/service/reservations/models"
)

const (
	msgInvalidID           = "некорректный ID брони"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgReservationNotFound = "бронь не найдена"
	msgAccessDenied        = "нет доступа к этой брони"
	msgCannotCancel        = "бронь не может быть отменена"
	msgInvalidInput        = "некорректные параметры отмены"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	isAdmin := middleware.IsAdminFromContext(r.Context())

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Cancel(r.Context(), id, &models.CancelReservationRequest{
		UserID:             userID,
		IsAdmin:            isAdmin,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/cancel - Invalid input: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /bookings/{id}/cancel - Reservation not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/cancel - Access denied: id=%d, user_id=%d", id, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("POST /bookings/{id}/cancel - Cannot cancel: id=%d", id)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("POST /bookings/{id}/cancel - Failed to cancel reservation: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancel - Reservation cancelled: id=%d, user_id=%d", id, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
