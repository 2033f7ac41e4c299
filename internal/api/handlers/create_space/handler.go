package create_space

import (
	"errors"
	"net/http"

	"github.com/cimillas/CML-SpaceService/internal/api/handlers"
	"github.com/cimillas/CML-SpaceService/internal/service/spaces"
	"github.com/cimillas/CML-SpaceService/internal/service/spaces/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные пространства"
	msgAlreadyExists      = "пространство с таким ID уже существует"
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

// Handle POST /api/v1/spaces
// Доступно только администраторам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /spaces - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceAlreadyExists):
			h.logger.Warn("POST /spaces - Space already exists: space_id=%s", req.ID)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, spaces.ErrInvalidInput):
			h.logger.Warn("POST /spaces - Invalid input: space_id=%s, error=%v", req.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /spaces - Failed to create space: space_id=%s, error=%v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /spaces - Space created: space_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
