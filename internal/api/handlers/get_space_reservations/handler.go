package get_space_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/cimillas/CML-SpaceService/internal/api/handlers"
	"github.com/cimillas/CML-SpaceService/internal/domain"
	"github.com/cimillas/CML-SpaceService/internal/service/reservations"
	"github.com/cimillas/CML-SpaceService/internal/service/reservations/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/spaces/{spaceId}/bookings?startDate=&endDate=&status=&includeInactive=
// Доступно только администраторам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceID := mux.Vars(r)["spaceId"]
	query := r.URL.Query()

	req := &models.GetSpaceReservationsRequest{
		SpaceID:         spaceID,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /spaces/{spaceId}/bookings - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /spaces/{spaceId}/bookings - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	result, err := h.service.GetSpaceReservations(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /spaces/{spaceId}/bookings - Invalid filter: space_id=%s", spaceID)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /spaces/{spaceId}/bookings - Failed to get reservations: space_id=%s, error=%v",
				spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
