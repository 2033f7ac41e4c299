package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cimillas/CML-SpaceService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func testSpace() *domain.Space {
	return &domain.Space{
		ID:   "studio-creatif",
		Name: "Studio Créatif",
		Pricing: domain.Pricing{
			Currency: "€",
		},
	}
}

var today = date(2025, time.February, 15)

func TestEvaluate_NilSpaceIsBlocked(t *testing.T) {
	status := Evaluate(nil, date(2025, time.February, 20), today, nil)

	assert.True(t, status.IsBlocked)
	assert.False(t, status.IsPast)
	assert.False(t, status.IsFullDay)
}

func TestEvaluate_PastDateIsBlocked(t *testing.T) {
	status := Evaluate(testSpace(), date(2025, time.February, 14), today, nil)

	assert.True(t, status.IsPast)
	assert.True(t, status.IsBlocked)
	assert.False(t, status.IsGlobalClosed)
}

func TestEvaluate_TodayIsNotPast(t *testing.T) {
	status := Evaluate(testSpace(), today, today, nil)

	assert.False(t, status.IsPast)
	assert.False(t, status.IsBlocked)
}

func TestEvaluate_FreeDayIsNotBlocked(t *testing.T) {
	status := Evaluate(testSpace(), date(2025, time.February, 20), today, nil)

	assert.False(t, status.IsBlocked)
	assert.False(t, status.IsFullDay)
	assert.False(t, status.IsPartiallyBooked)
}

func TestEvaluate_GlobalClosureBlocksEveryDayOfSpan(t *testing.T) {
	space := testSpace()
	reservations := []*domain.Reservation{
		{
			ID:              1,
			SpaceID:         space.ID,
			Date:            date(2025, time.February, 18),
			EndDate:         datePtr(2025, time.February, 20),
			Slot:            domain.SlotMorning,
			Status:          domain.StatusConfirmed,
			IsGlobalClosure: true,
		},
	}

	for d := date(2025, time.February, 18); !d.After(date(2025, time.February, 20)); d = d.AddDate(0, 0, 1) {
		status := Evaluate(space, d, today, reservations)
		assert.True(t, status.IsGlobalClosed, "day %s", d.Format(domain.DateFormat))
		assert.True(t, status.IsBlocked, "day %s", d.Format(domain.DateFormat))
	}

	// Соседние дни не затронуты
	assert.False(t, Evaluate(space, date(2025, time.February, 17), today, reservations).IsBlocked)
	assert.False(t, Evaluate(space, date(2025, time.February, 21), today, reservations).IsBlocked)
}

func TestEvaluate_FullDayReservationBlocksDay(t *testing.T) {
	space := testSpace()
	reservations := []*domain.Reservation{
		{ID: 1, SpaceID: space.ID, Date: date(2025, time.February, 20), Slot: domain.SlotFullDay, Status: domain.StatusConfirmed},
	}

	status := Evaluate(space, date(2025, time.February, 20), today, reservations)

	assert.True(t, status.IsFullDay)
	assert.True(t, status.IsBlocked)
	assert.False(t, status.IsPartiallyBooked)
}

func TestEvaluate_MorningAndAfternoonMakeFullDay(t *testing.T) {
	space := testSpace()
	reservations := []*domain.Reservation{
		{ID: 1, SpaceID: space.ID, Date: date(2025, time.February, 20), Slot: domain.SlotMorning, Status: domain.StatusConfirmed},
		{ID: 2, SpaceID: space.ID, Date: date(2025, time.February, 20), Slot: domain.SlotAfternoon, Status: domain.StatusPending},
	}

	status := Evaluate(space, date(2025, time.February, 20), today, reservations)

	assert.True(t, status.IsFullDay)
	assert.True(t, status.IsBlocked)
	assert.False(t, status.IsPartiallyBooked)
}

func TestEvaluate_SingleHalfDayIsPartiallyBooked(t *testing.T) {
	space := testSpace()
	reservations := []*domain.Reservation{
		{ID: 1, SpaceID: space.ID, Date: date(2025, time.February, 20), Slot: domain.SlotMorning, Status: domain.StatusConfirmed},
	}

	status := Evaluate(space, date(2025, time.February, 20), today, reservations)

	assert.True(t, status.IsPartiallyBooked)
	assert.False(t, status.IsFullDay)
	assert.False(t, status.IsBlocked)
}

func TestEvaluate_MultiDayReservationIsFullRangeForEveryDay(t *testing.T) {
	space := testSpace()
	// Слот полудневный, но бронь многодневная: каждый день занят целиком
	reservations := []*domain.Reservation{
		{
			ID:      1,
			SpaceID: space.ID,
			Date:    date(2025, time.February, 18),
			EndDate: datePtr(2025, time.February, 20),
			Slot:    domain.SlotMorning,
			Status:  domain.StatusConfirmed,
		},
	}

	for d := date(2025, time.February, 18); !d.After(date(2025, time.February, 20)); d = d.AddDate(0, 0, 1) {
		status := Evaluate(space, d, today, reservations)
		assert.True(t, status.IsFullDay, "day %s", d.Format(domain.DateFormat))
		assert.True(t, status.IsBlocked, "day %s", d.Format(domain.DateFormat))
	}
}

func TestEvaluate_CancelledReservationIsIgnored(t *testing.T) {
	space := testSpace()
	reservations := []*domain.Reservation{
		{ID: 1, SpaceID: space.ID, Date: date(2025, time.February, 20), Slot: domain.SlotFullDay, Status: domain.StatusCancelled},
	}

	status := Evaluate(space, date(2025, time.February, 20), today, reservations)

	assert.False(t, status.IsFullDay)
	assert.False(t, status.IsBlocked)
}

func TestEvaluate_OtherSpaceReservationIsIgnored(t *testing.T) {
	space := testSpace()
	reservations := []*domain.Reservation{
		{ID: 1, SpaceID: "kiosque-4", Date: date(2025, time.February, 20), Slot: domain.SlotFullDay, Status: domain.StatusConfirmed},
		{ID: 2, SpaceID: "kiosque-4", Date: date(2025, time.February, 20), Slot: domain.SlotMorning, Status: domain.StatusConfirmed, IsGlobalClosure: true},
	}

	status := Evaluate(space, date(2025, time.February, 20), today, reservations)

	assert.False(t, status.IsBlocked)
	assert.False(t, status.IsGlobalClosed)
}

func TestEvaluate_TodayParsedAsUTCIsNotPastInWesternZone(t *testing.T) {
	// Граничные даты парсятся как полночь UTC, а текущее время живёт в зоне
	// сервера. В зоне западнее UTC сегодняшний день не должен считаться прошедшим.
	day, err := time.Parse(domain.DateFormat, "2025-02-15")
	assert.NoError(t, err)

	west := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2025, time.February, 15, 10, 0, 0, 0, west)

	status := Evaluate(testSpace(), day, now, nil)

	assert.False(t, status.IsPast)
	assert.False(t, status.IsBlocked)
}

func TestEvaluate_TimeComponentDoesNotShiftDays(t *testing.T) {
	space := testSpace()
	// Дата брони с поздним компонентом времени не должна вылезать на соседний день
	reservations := []*domain.Reservation{
		{
			ID:      1,
			SpaceID: space.ID,
			Date:    time.Date(2025, time.February, 20, 23, 30, 0, 0, time.UTC),
			Slot:    domain.SlotFullDay,
			Status:  domain.StatusConfirmed,
		},
	}

	assert.True(t, Evaluate(space, date(2025, time.February, 20), today, reservations).IsBlocked)
	assert.False(t, Evaluate(space, date(2025, time.February, 21), today, reservations).IsBlocked)
}
