package create_reservation

import (
	"time"

	"github.com/cimillas/CML-SpaceService/internal/domain"
)

// Request модель запроса на создание брони
type Request struct {
	UserID    int64                   // ID пользователя
	SpaceID   string                  // ID пространства (slug)
	Selection domain.BookingSelection // Выбор пользователя
	Purpose   *string                 // Назначение брони (опционально)
}

// CreatedReservation одна созданная запись брони
type CreatedReservation struct {
	ID      int64
	Date    time.Time
	EndDate *time.Time
	Slot    string
}

// Response модель ответа с созданными бронями.
// Single и range создают одну запись, recurring - по записи на дату.
type Response struct {
	Reservations     []CreatedReservation
	Status           string   // Статус всех созданных записей
	Duration         int      // Дни для single/range, вхождения для recurring
	TotalPrice       *float64 // Итог за весь запрос, nil для "на запрос"
	Currency         string
	RecurringGroupID *string // Общий ID группы для recurring, иначе nil

	CreatedAt time.Time
}
