package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cimillas/CML-SpaceService/internal/domain"
	spaceRepo "github.com/cimillas/CML-SpaceService/internal/infra/storage/space"
	"github.com/cimillas/CML-SpaceService/pkg/ptr"
)

type fakeSpaceRepo struct {
	space *domain.Space
}

func (f *fakeSpaceRepo) GetByID(_ context.Context, id string) (*domain.Space, error) {
	if f.space == nil || f.space.ID != id {
		return nil, spaceRepo.ErrSpaceNotFound
	}
	return f.space, nil
}

type fakeReservationRepo struct {
	existing []*domain.Reservation
	created  []*domain.Reservation
	nextID   int64
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.nextID++
	res.ID = f.nextID
	res.CreatedAt = time.Now()
	res.UpdatedAt = res.CreatedAt
	f.created = append(f.created, res)
	return res, nil
}

func (f *fakeReservationRepo) GetBySpaceWithFilter(_ context.Context, filter domain.SpaceReservationsFilter) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, r := range f.existing {
		if r.SpaceID == filter.SpaceID {
			result = append(result, r)
		}
	}
	return result, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func testSpace() *domain.Space {
	return &domain.Space{
		ID:       "studio-creatif",
		Name:     "Studio créatif",
		Category: domain.CategoryCreative,
		Capacity: 10,
		Pricing: domain.Pricing{
			HalfDay:  ptr.Ptr(20.0),
			Day:      ptr.Ptr(35.0),
			Currency: "EUR",
		},
	}
}

func newTestUseCase(space *domain.Space, repo *fakeReservationRepo) *UseCase {
	uc := NewUseCase(&fakeSpaceRepo{space: space}, repo, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: date(2025, time.February, 15)}
	return uc
}

func TestExecute_SingleReservation(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(testSpace(), repo)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:  42,
		SpaceID: "studio-creatif",
		Selection: domain.BookingSelection{
			BookingType: domain.BookingSingle,
			StartDate:   date(2025, time.February, 20),
			Slot:        domain.SlotFullDay,
		},
		Purpose: ptr.Ptr("Atelier photo"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 1, resp.Duration)
	require.NotNil(t, resp.TotalPrice)
	assert.Equal(t, 35.0, *resp.TotalPrice)
	assert.Equal(t, "EUR", resp.Currency)
	assert.Nil(t, resp.RecurringGroupID)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, int64(42), created.UserID)
	assert.Equal(t, domain.SlotFullDay, created.Slot)
	assert.Equal(t, ptr.Ptr("Atelier photo"), created.Purpose)
}

func TestExecute_AutoApproveStartsConfirmed(t *testing.T) {
	space := testSpace()
	space.AutoApprove = true
	uc := newTestUseCase(space, &fakeReservationRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:  42,
		SpaceID: "studio-creatif",
		Selection: domain.BookingSelection{
			BookingType: domain.BookingSingle,
			StartDate:   date(2025, time.February, 20),
			Slot:        domain.SlotMorning,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_RangeCreatesSingleRow(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(testSpace(), repo)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:  42,
		SpaceID: "studio-creatif",
		Selection: domain.BookingSelection{
			BookingType: domain.BookingRange,
			StartDate:   date(2025, time.February, 20),
			EndDate:     date(2025, time.February, 22),
		},
	})

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, 3, resp.Duration)
	require.NotNil(t, resp.TotalPrice)
	assert.Equal(t, 105.0, *resp.TotalPrice)

	created := repo.created[0]
	assert.Equal(t, domain.SlotFullDay, created.Slot)
	require.NotNil(t, created.EndDate)
	assert.Equal(t, date(2025, time.February, 22), *created.EndDate)
}

func TestExecute_RecurringSharesGroupID(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(testSpace(), repo)

	// Понедельники февраля 2025: 17, 24 (после "сегодня" 15-го)
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:  42,
		SpaceID: "studio-creatif",
		Selection: domain.BookingSelection{
			BookingType: domain.BookingRecurring,
			StartDate:   date(2025, time.February, 16),
			Slot:        domain.SlotMorning,
			Recurrence: domain.RecurrenceConfig{
				DaysOfWeek: []time.Weekday{time.Monday},
				EndDate:    date(2025, time.February, 28),
			},
		},
	})

	require.NoError(t, err)
	require.Len(t, repo.created, 2)
	assert.Equal(t, 2, resp.Duration)
	require.NotNil(t, resp.TotalPrice)
	assert.Equal(t, 40.0, *resp.TotalPrice)
	require.NotNil(t, resp.RecurringGroupID)

	for _, created := range repo.created {
		require.NotNil(t, created.RecurringGroupID)
		assert.Equal(t, *resp.RecurringGroupID, *created.RecurringGroupID)
		require.NotNil(t, created.TotalPrice)
		assert.Equal(t, 20.0, *created.TotalPrice)
	}
	assert.Equal(t, date(2025, time.February, 17), repo.created[0].Date)
	assert.Equal(t, date(2025, time.February, 24), repo.created[1].Date)
}

func TestExecute_RejectsConflictingSlot(t *testing.T) {
	repo := &fakeReservationRepo{
		existing: []*domain.Reservation{{
			ID:      1,
			SpaceID: "studio-creatif",
			UserID:  7,
			Date:    date(2025, time.February, 20),
			Slot:    domain.SlotMorning,
			Status:  domain.StatusConfirmed,
		}},
	}
	uc := newTestUseCase(testSpace(), repo)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:  42,
		SpaceID: "studio-creatif",
		Selection: domain.BookingSelection{
			BookingType: domain.BookingSingle,
			StartDate:   date(2025, time.February, 20),
			Slot:        domain.SlotMorning,
		},
	})

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "Ce créneau n'est pas disponible.", rejection.Reason)
	assert.Empty(t, repo.created)
}

func TestExecute_SpaceNotFound(t *testing.T) {
	uc := newTestUseCase(nil, &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:  42,
		SpaceID: "inconnu",
		Selection: domain.BookingSelection{
			BookingType: domain.BookingSingle,
			StartDate:   date(2025, time.February, 20),
			Slot:        domain.SlotMorning,
		},
	})

	assert.True(t, errors.Is(err, ErrSpaceNotFound))
}

func TestExecute_InvalidBookingType(t *testing.T) {
	uc := newTestUseCase(testSpace(), &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:  42,
		SpaceID: "studio-creatif",
		Selection: domain.BookingSelection{
			BookingType: "monthly",
			StartDate:   date(2025, time.February, 20),
			Slot:        domain.SlotMorning,
		},
	})

	assert.True(t, errors.Is(err, ErrInvalidInput))
}
