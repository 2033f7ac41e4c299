package get_calendar

import (
	"time"

	"github.com/cimillas/CML-SpaceService/internal/domain"
)

// Request модель запроса календаря доступности
type Request struct {
	SpaceID string    // ID пространства (slug)
	From    time.Time // Первый день окна (включительно)
	To      time.Time // Последний день окна (включительно)
}

// Day статус одного календарного дня
type Day struct {
	Date   time.Time
	Status domain.DayStatus
}

// Response модель ответа: по записи на каждый день окна, по возрастанию дат
type Response struct {
	SpaceID string
	Days    []Day
}
