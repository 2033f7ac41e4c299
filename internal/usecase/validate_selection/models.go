package validate_selection

import (
	"time"

	"github.com/cimillas/CML-SpaceService/internal/domain"
)

// Request модель запроса на проверку выбора брони
type Request struct {
	SpaceID   string                  // ID пространства (slug)
	Selection domain.BookingSelection // Выбор пользователя
}

// Response модель ответа с результатом проверки.
// Длительность, цена и сгенерированные даты возвращаются всегда,
// даже для отклонённого выбора - фронт показывает их в процессе выбора.
type Response struct {
	IsValid bool    // Прошёл ли выбор все проверки
	Error   *string // Причина отказа (на французском), nil если IsValid

	Duration       int         // Дни для single/range, вхождения для recurring
	TotalPrice     *float64    // nil для пространств "на запрос"
	Currency       string      // Валюта цены
	RecurringDates []time.Time // Сгенерированные даты для recurring, иначе пусто
}
