package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cimillas/CML-SpaceService/internal/domain"
)

func TestIsSlotAvailable_FreeDay(t *testing.T) {
	ok := IsSlotAvailable(testSpace(), date(2025, time.February, 20), domain.SlotMorning, today, nil)

	assert.True(t, ok)
}

func TestIsSlotAvailable_NilSpace(t *testing.T) {
	ok := IsSlotAvailable(nil, date(2025, time.February, 20), domain.SlotMorning, today, nil)

	assert.False(t, ok)
}

func TestIsSlotAvailable_BlockedDay(t *testing.T) {
	space := testSpace()
	reservations := []*domain.Reservation{
		{ID: 1, SpaceID: space.ID, Date: date(2025, time.February, 20), Slot: domain.SlotFullDay, Status: domain.StatusConfirmed},
	}

	assert.False(t, IsSlotAvailable(space, date(2025, time.February, 20), domain.SlotMorning, today, reservations))
	assert.False(t, IsSlotAvailable(space, date(2025, time.February, 20), domain.SlotAfternoon, today, reservations))
}

func TestIsSlotAvailable_PastDay(t *testing.T) {
	ok := IsSlotAvailable(testSpace(), date(2025, time.February, 10), domain.SlotFullDay, today, nil)

	assert.False(t, ok)
}

func TestIsSlotAvailable_SlotWhitelist(t *testing.T) {
	space := testSpace()
	space.AvailableSlots = []domain.Slot{domain.SlotFullDay}

	assert.True(t, IsSlotAvailable(space, date(2025, time.February, 20), domain.SlotFullDay, today, nil))
	assert.False(t, IsSlotAvailable(space, date(2025, time.February, 20), domain.SlotMorning, today, nil))
	assert.False(t, IsSlotAvailable(space, date(2025, time.February, 20), domain.SlotAfternoon, today, nil))
}

func TestIsSlotAvailable_SameSlotConflict(t *testing.T) {
	space := testSpace()
	reservations := []*domain.Reservation{
		{ID: 1, SpaceID: space.ID, Date: date(2025, time.February, 20), Slot: domain.SlotMorning, Status: domain.StatusPending},
	}

	assert.False(t, IsSlotAvailable(space, date(2025, time.February, 20), domain.SlotMorning, today, reservations))
	// Второй полудневный слот остаётся свободным
	assert.True(t, IsSlotAvailable(space, date(2025, time.February, 20), domain.SlotAfternoon, today, reservations))
}

func TestIsSlotAvailable_CancelledConflictIsIgnored(t *testing.T) {
	space := testSpace()
	reservations := []*domain.Reservation{
		{ID: 1, SpaceID: space.ID, Date: date(2025, time.February, 20), Slot: domain.SlotMorning, Status: domain.StatusCancelled},
	}

	assert.True(t, IsSlotAvailable(space, date(2025, time.February, 20), domain.SlotMorning, today, reservations))
}

func TestIsRangeAvailable_AllDaysFree(t *testing.T) {
	ok := IsRangeAvailable(testSpace(), date(2025, time.February, 18), date(2025, time.February, 22), today, nil)

	assert.True(t, ok)
}

func TestIsRangeAvailable_MissingBounds(t *testing.T) {
	space := testSpace()

	assert.False(t, IsRangeAvailable(space, time.Time{}, date(2025, time.February, 22), today, nil))
	assert.False(t, IsRangeAvailable(space, date(2025, time.February, 18), time.Time{}, today, nil))
}

func TestIsRangeAvailable_OneBlockedDayBreaksRange(t *testing.T) {
	space := testSpace()
	reservations := []*domain.Reservation{
		{ID: 1, SpaceID: space.ID, Date: date(2025, time.February, 20), Slot: domain.SlotFullDay, Status: domain.StatusConfirmed},
	}

	assert.False(t, IsRangeAvailable(space, date(2025, time.February, 18), date(2025, time.February, 22), today, reservations))
	// Период, не задевающий занятый день, доступен
	assert.True(t, IsRangeAvailable(space, date(2025, time.February, 21), date(2025, time.February, 22), today, reservations))
}

func TestIsRangeAvailable_HalfDayDoesNotBlockRange(t *testing.T) {
	space := testSpace()
	// Частично занятый день не блокирует период: блокирует только полный день
	reservations := []*domain.Reservation{
		{ID: 1, SpaceID: space.ID, Date: date(2025, time.February, 20), Slot: domain.SlotMorning, Status: domain.StatusConfirmed},
	}

	assert.True(t, IsRangeAvailable(space, date(2025, time.February, 18), date(2025, time.February, 22), today, reservations))
}

func TestIsRangeAvailable_RangeTouchingPastIsBlocked(t *testing.T) {
	ok := IsRangeAvailable(testSpace(), date(2025, time.February, 14), date(2025, time.February, 16), today, nil)

	assert.False(t, ok)
}
