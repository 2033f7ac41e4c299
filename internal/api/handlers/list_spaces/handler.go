package list_spaces

import (
	"net/http"

	"github.com/cimillas/CML-SpaceService/internal/api/handlers"
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

// Handle GET /api/v1/spaces
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /spaces - Failed to list spaces: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
