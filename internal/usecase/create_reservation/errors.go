package create_reservation

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда пространство не найдено
	ErrSpaceNotFound = errors.New("create_reservation: space not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// RejectionError возвращается, когда движок доступности отклонил выбор.
// Reason - готовое сообщение для пользователя (на французском).
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return "create_reservation: selection rejected: " + e.Reason
}
