package get_space

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cimillas/CML-SpaceService/internal/api/handlers"
	"github.com/cimillas/CML-SpaceService/internal/service/spaces"
)

const (
	msgSpaceNotFound = "пространство не найдено"
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

// Handle GET /api/v1/spaces/{spaceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceID := mux.Vars(r)["spaceId"]

	result, err := h.service.GetByID(r.Context(), spaceID)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/{spaceId} - Space not found: space_id=%s", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		default:
			h.logger.Error("GET /spaces/{spaceId} - Failed to get space: space_id=%s, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
