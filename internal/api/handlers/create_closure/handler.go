package create_closure

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cimillas/CML-SpaceService/internal/api/handlers"
	"github.com/cimillas/CML-SpaceService/internal/api/middleware"
	"github.com/cimillas/CML-SpaceService/internal/service/spaces"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры закрытия"
	msgSpaceNotFound      = "пространство не найдено"
)

type Handler struct {
	service SpacesService
	logger  Logger
}

func NewHandler(service SpacesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/spaces/{spaceId}/closures
// Доступно только администраторам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceID := mux.Vars(r)["spaceId"]
	userID := middleware.UserIDFromContext(r.Context())

	var req CreateClosureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /spaces/{spaceId}/closures - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(spaceID, userID)
	if err != nil {
		h.logger.Warn("POST /spaces/{spaceId}/closures - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreateClosure(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("POST /spaces/{spaceId}/closures - Space not found: space_id=%s", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, spaces.ErrInvalidInput):
			h.logger.Warn("POST /spaces/{spaceId}/closures - Invalid input: space_id=%s, error=%v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /spaces/{spaceId}/closures - Failed to create closure: space_id=%s, error=%v",
				spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /spaces/{spaceId}/closures - Closure created: space_id=%s, reservation_id=%d",
		spaceID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
