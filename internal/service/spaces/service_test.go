package spaces

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cimillas/CML-SpaceService/internal/domain"
	spaceRepo "github.com/cimillas/CML-SpaceService/internal/infra/storage/space"
	"github.com/cimillas/CML-SpaceService/internal/service/spaces/models"
	"github.com/cimillas/CML-SpaceService/pkg/ptr"
)

type fakeSpaceRepo struct {
	space *domain.Space
}

func (f *fakeSpaceRepo) Create(_ context.Context, space *domain.Space) (*domain.Space, error) {
	f.space = space
	return space, nil
}

func (f *fakeSpaceRepo) Update(_ context.Context, space *domain.Space) error {
	if f.space == nil || f.space.ID != space.ID {
		return spaceRepo.ErrSpaceNotFound
	}
	f.space = space
	return nil
}

func (f *fakeSpaceRepo) GetByID(_ context.Context, id string) (*domain.Space, error) {
	if f.space == nil || f.space.ID != id {
		return nil, spaceRepo.ErrSpaceNotFound
	}
	return f.space, nil
}

func (f *fakeSpaceRepo) List(_ context.Context) ([]*domain.Space, error) {
	if f.space == nil {
		return nil, nil
	}
	return []*domain.Space{f.space}, nil
}

type fakeReservationRepo struct {
	created []*domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	res.ID = int64(len(f.created) + 1)
	f.created = append(f.created, res)
	return res, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

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
			Day:      ptr.Ptr(35.0),
			Currency: "EUR",
		},
	}
}

func TestCreateClosure_ClosureStoredAsGlobalClosureReservation(t *testing.T) {
	reservations := &fakeReservationRepo{}
	svc := NewService(&fakeSpaceRepo{space: testSpace()}, reservations, nopLogger{})

	end := date(2025, time.August, 20)
	resp, err := svc.CreateClosure(context.Background(), &models.CreateClosureRequest{
		UserID:  1,
		SpaceID: "studio-creatif",
		Date:    date(2025, time.August, 1),
		EndDate: &end,
		Reason:  ptr.Ptr("Fermeture estivale"),
		Label:   ptr.Ptr("Tout l'été"),
	})

	require.NoError(t, err)
	require.Len(t, reservations.created, 1)
	closure := reservations.created[0]
	assert.Equal(t, resp.ID, closure.ID)
	assert.True(t, closure.IsGlobalClosure)
	assert.Equal(t, domain.SlotFullDay, closure.Slot)
	assert.Equal(t, domain.StatusConfirmed, closure.Status)
	assert.Equal(t, "Fermeture estivale", *closure.Purpose)
	assert.Equal(t, "Tout l'été", *closure.CustomTimeLabel)
}

func TestCreateClosure_ReasonTooLongIsRejected(t *testing.T) {
	reservations := &fakeReservationRepo{}
	svc := NewService(&fakeSpaceRepo{space: testSpace()}, reservations, nopLogger{})

	_, err := svc.CreateClosure(context.Background(), &models.CreateClosureRequest{
		UserID:  1,
		SpaceID: "studio-creatif",
		Date:    date(2025, time.August, 1),
		Reason:  ptr.Ptr(strings.Repeat("x", domain.MaxPurposeLength+1)),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, reservations.created)
}

func TestCreateClosure_LabelTooLongIsRejected(t *testing.T) {
	reservations := &fakeReservationRepo{}
	svc := NewService(&fakeSpaceRepo{space: testSpace()}, reservations, nopLogger{})

	_, err := svc.CreateClosure(context.Background(), &models.CreateClosureRequest{
		UserID:  1,
		SpaceID: "studio-creatif",
		Date:    date(2025, time.August, 1),
		Label:   ptr.Ptr(strings.Repeat("x", domain.MaxCustomTimeLabelLength+1)),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, reservations.created)
}

func TestCreateClosure_UnknownSpaceIsRejected(t *testing.T) {
	reservations := &fakeReservationRepo{}
	svc := NewService(&fakeSpaceRepo{}, reservations, nopLogger{})

	_, err := svc.CreateClosure(context.Background(), &models.CreateClosureRequest{
		UserID:  1,
		SpaceID: "kiosque-4",
		Date:    date(2025, time.August, 1),
	})

	require.ErrorIs(t, err, ErrSpaceNotFound)
	assert.Empty(t, reservations.created)
}

func TestCreateClosure_EndDateBeforeDateIsRejected(t *testing.T) {
	reservations := &fakeReservationRepo{}
	svc := NewService(&fakeSpaceRepo{space: testSpace()}, reservations, nopLogger{})

	end := date(2025, time.July, 20)
	_, err := svc.CreateClosure(context.Background(), &models.CreateClosureRequest{
		UserID:  1,
		SpaceID: "studio-creatif",
		Date:    date(2025, time.August, 1),
		EndDate: &end,
	})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, reservations.created)
}
