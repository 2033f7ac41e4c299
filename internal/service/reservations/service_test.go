package reservations

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cimillas/CML-SpaceService/internal/domain"
	reservationRepo "github.com/cimillas/CML-SpaceService/internal/infra/storage/reservation"
	"github.com/cimillas/CML-SpaceService/internal/service/reservations/models"
)

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation
	cancelled    map[int64]string
}

func newFakeReservationRepo(reservations ...*domain.Reservation) *fakeReservationRepo {
	repo := &fakeReservationRepo{
		reservations: make(map[int64]*domain.Reservation),
		cancelled:    make(map[int64]string),
	}
	for _, r := range reservations {
		repo.reservations[r.ID] = r
	}
	return repo
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeReservationRepo) GetByUserID(_ context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.UserID != userID {
			continue
		}
		if status != nil && r.Status != *status {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeReservationRepo) GetBySpaceWithFilter(_ context.Context, filter domain.SpaceReservationsFilter) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, r := range f.reservations {
		if r.SpaceID == filter.SpaceID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	r, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.Status = status
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64, reason string) error {
	r, ok := f.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.Status = domain.StatusCancelled
	f.cancelled[id] = reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func testReservation(id, userID int64, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:      id,
		SpaceID: "studio-creatif",
		UserID:  userID,
		Date:    date(2025, time.February, 20),
		Slot:    domain.SlotFullDay,
		Status:  status,
	}
}

func TestCancel_OwnerCancelsPendingReservation(t *testing.T) {
	repo := newFakeReservationRepo(testReservation(1, 42, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{
		UserID:             42,
		CancellationReason: "Changement de programme",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.reservations[1].Status)
	assert.Equal(t, "Changement de programme", repo.cancelled[1])
}

func TestCancel_ReasonTooLongIsRejected(t *testing.T) {
	repo := newFakeReservationRepo(testReservation(1, 42, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{
		UserID:             42,
		CancellationReason: strings.Repeat("x", domain.MaxCancellationReasonLength+1),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, domain.StatusPending, repo.reservations[1].Status)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_ForeignReservationIsDenied(t *testing.T) {
	repo := newFakeReservationRepo(testReservation(1, 42, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 7})

	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusPending, repo.reservations[1].Status)
}

func TestCancel_AdminCancelsForeignReservation(t *testing.T) {
	repo := newFakeReservationRepo(testReservation(1, 42, domain.StatusConfirmed))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 7, IsAdmin: true})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.reservations[1].Status)
}

func TestCancel_DoneReservationCannotBeCancelled(t *testing.T) {
	repo := newFakeReservationRepo(testReservation(1, 42, domain.StatusDone))
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 42})

	require.ErrorIs(t, err, ErrCannotCancel)
}
