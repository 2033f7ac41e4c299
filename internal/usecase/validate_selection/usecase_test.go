package validate_selection

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
	uc := NewUseCase(&fakeSpaceRepo{space: space}, repo, nopLogger{})
	uc.timeProvider = fixedTime{now: date(2025, time.February, 15)}
	return uc
}

func TestExecute_ValidSingleSelection(t *testing.T) {
	uc := newTestUseCase(testSpace(), &fakeReservationRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID: "studio-creatif",
		Selection: domain.BookingSelection{
			BookingType: domain.BookingSingle,
			StartDate:   date(2025, time.February, 20),
			Slot:        domain.SlotFullDay,
		},
	})

	require.NoError(t, err)
	assert.True(t, resp.IsValid)
	assert.Nil(t, resp.Error)
	assert.Equal(t, 1, resp.Duration)
	require.NotNil(t, resp.TotalPrice)
	assert.Equal(t, 35.0, *resp.TotalPrice)
	assert.Equal(t, "EUR", resp.Currency)
}

func TestExecute_UnknownSpaceRejectedWithMessage(t *testing.T) {
	uc := newTestUseCase(nil, &fakeReservationRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID: "inconnu",
		Selection: domain.BookingSelection{
			BookingType: domain.BookingSingle,
			StartDate:   date(2025, time.February, 20),
			Slot:        domain.SlotFullDay,
		},
	})

	require.NoError(t, err)
	assert.False(t, resp.IsValid)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Espace introuvable.", *resp.Error)
	assert.Nil(t, resp.TotalPrice)
}

func TestExecute_ConflictIsAnOutcomeNotAnError(t *testing.T) {
	repo := &fakeReservationRepo{
		existing: []*domain.Reservation{{
			ID:      1,
			SpaceID: "studio-creatif",
			UserID:  7,
			Date:    date(2025, time.February, 20),
			Slot:    domain.SlotFullDay,
			Status:  domain.StatusConfirmed,
		}},
	}
	uc := newTestUseCase(testSpace(), repo)

	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID: "studio-creatif",
		Selection: domain.BookingSelection{
			BookingType: domain.BookingSingle,
			StartDate:   date(2025, time.February, 20),
			Slot:        domain.SlotMorning,
		},
	})

	require.NoError(t, err)
	assert.False(t, resp.IsValid)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Ce créneau n'est pas disponible.", *resp.Error)
}

func TestExecute_RecurringReturnsGeneratedDates(t *testing.T) {
	uc := newTestUseCase(testSpace(), &fakeReservationRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
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
	assert.True(t, resp.IsValid)
	require.Len(t, resp.RecurringDates, 2)
	assert.Equal(t, date(2025, time.February, 17), resp.RecurringDates[0])
	assert.Equal(t, date(2025, time.February, 24), resp.RecurringDates[1])
	assert.Equal(t, 2, resp.Duration)
	require.NotNil(t, resp.TotalPrice)
	assert.Equal(t, 40.0, *resp.TotalPrice)
}

func TestExecute_InvalidBookingType(t *testing.T) {
	uc := newTestUseCase(testSpace(), &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		SpaceID: "studio-creatif",
		Selection: domain.BookingSelection{
			BookingType: "monthly",
			Slot:        domain.SlotMorning,
		},
	})

	assert.True(t, errors.Is(err, ErrInvalidInput))
}
