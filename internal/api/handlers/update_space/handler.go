package update_space

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cimillas/CML-SpaceService/internal/api/handlers"
	"github.com/cimillas/CML-SpaceService/internal/service/spaces"
	"github.com/cimillas/CML-SpaceService/internal/service/spaces/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные пространства"
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

// Handle PUT /api/v1/spaces/{spaceId}
// Доступно только администраторам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceID := mux.Vars(r)["spaceId"]

	var req models.UpdateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /spaces/{spaceId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), spaceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("PUT /spaces/{spaceId} - Space not found: space_id=%s", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, spaces.ErrInvalidInput):
			h.logger.Warn("PUT /spaces/{spaceId} - Invalid input: space_id=%s, error=%v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /spaces/{spaceId} - Failed to update space: space_id=%s, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /spaces/{spaceId} - Space updated: space_id=%s", spaceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
