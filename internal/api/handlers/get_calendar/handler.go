package get_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/cimillas/CML-SpaceService/internal/api/handlers"
	"github.com/cimillas/CML-SpaceService/internal/domain"
	getCalendar "github.com/cimillas/CML-SpaceService/internal/usecase/get_calendar"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidWindow = "некорректное окно календаря"
	msgSpaceNotFound = "пространство не найдено"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/calendar?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceID := mux.Vars(r)["spaceId"]

	from, err := time.Parse(domain.DateFormat, r.URL.Query().Get("from"))
	if err != nil {
		h.logger.Warn("GET /spaces/{spaceId}/calendar - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := time.Parse(domain.DateFormat, r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /spaces/{spaceId}/calendar - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		SpaceID: spaceID,
		From:    from,
		To:      to,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/{spaceId}/calendar - Space not found: space_id=%s", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /spaces/{spaceId}/calendar - Invalid window: space_id=%s, error=%v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /spaces/{spaceId}/calendar - Failed to build calendar: space_id=%s, error=%v",
				spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /spaces/{spaceId}/calendar - Calendar built: space_id=%s, days=%d",
		spaceID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
