package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MaxRecurrenceIterations ограничивает обход календаря при разворачивании
// правила повторяемости. Это защита от патологических входных данных
// (дата конца далеко в будущем), а не бизнес-правило.
const MaxRecurrenceIterations = 365

// Business validation constants
const (
	MaxPurposeLength            = 500
	MaxCancellationReasonLength = 500
	MaxCustomTimeLabelLength    = 100
)

// InactiveStatuses список статусов, не занимающих даты.
// Используется при фильтрации снапшота броней для расчёта доступности.
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих даты
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusDone,
}
