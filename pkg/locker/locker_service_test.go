package locker

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/internal/mocks"
	"Groeneweide-Backend/pkg/patch"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockLockerRepository struct {
	mock.Mock
}

func (m *mockLockerRepository) CreateLocker(ctx context.Context, locker *entities.Locker) error {
	return m.Called(ctx, locker).Error(0)
}

func (m *mockLockerRepository) GetLockers(ctx context.Context) ([]*entities.Locker, error) {
	args := m.Called(ctx)
	lockers, _ := args.Get(0).([]*entities.Locker)
	return lockers, args.Error(1)
}

func (m *mockLockerRepository) UpdateLocker(ctx context.Context, id uint, changes *patch.ChangeSet) (int64, error) {
	args := m.Called(ctx, id, changes)
	return args.Get(0).(int64), args.Error(1)
}

func ptr[T any](v T) *T {
	return &v
}

func newTestService() (LockerService, *mocks.Gateway, *mockLockerRepository) {
	gw := new(mocks.Gateway)
	repo := new(mockLockerRepository)
	return NewLockerService(gw, repo, zap.NewNop()), gw, repo
}

func TestCreateLocker(t *testing.T) {
	t.Run("free locker needs no booking check", func(t *testing.T) {
		svc, gw, repo := newTestService()
		repo.On("CreateLocker", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { args.Get(1).(*entities.Locker).LockerID = 1 }).
			Return(nil)

		res, err := svc.CreateLocker(context.Background(), domain.LockerRequest{})
		require.NoError(t, err)
		assert.Equal(t, uint(1), res.LockerID)
		assert.Nil(t, res.BookingID)
		gw.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, gw, repo := newTestService()
		gw.On("Exists", mock.Anything, entities.TableBookings, entities.ColBookingID, uint(10)).Return(false, nil)

		_, err := svc.CreateLocker(context.Background(), domain.LockerRequest{BookingID: ptr(uint(10))})
		assert.ErrorIs(t, err, domain.ErrInvalidBooking)
		repo.AssertNotCalled(t, "CreateLocker", mock.Anything, mock.Anything)
	})
}

func TestAssignLocker(t *testing.T) {
	t.Run("links booking", func(t *testing.T) {
		svc, gw, repo := newTestService()
		gw.On("Exists", mock.Anything, entities.TableLockers, entities.ColLockerID, uint(1)).Return(true, nil)
		gw.On("Exists", mock.Anything, entities.TableBookings, entities.ColBookingID, uint(10)).Return(true, nil)
		repo.On("UpdateLocker", mock.Anything, uint(1), mock.MatchedBy(func(cs *patch.ChangeSet) bool {
			v, _ := cs.Value(entities.ColBookingID)
			id, ok := v.(*uint)
			return ok && *id == 10
		})).Return(int64(1), nil)

		require.NoError(t, svc.AssignLocker(context.Background(), 1, domain.LockerRequest{BookingID: ptr(uint(10))}))
	})

	t.Run("clears booking", func(t *testing.T) {
		svc, gw, repo := newTestService()
		gw.On("Exists", mock.Anything, entities.TableLockers, entities.ColLockerID, uint(1)).Return(true, nil)
		repo.On("UpdateLocker", mock.Anything, uint(1), mock.MatchedBy(func(cs *patch.ChangeSet) bool {
			v, ok := cs.Value(entities.ColBookingID)
			return ok && v.(*uint) == nil
		})).Return(int64(1), nil)

		require.NoError(t, svc.AssignLocker(context.Background(), 1, domain.LockerRequest{}))
	})

	t.Run("unknown locker", func(t *testing.T) {
		svc, gw, _ := newTestService()
		gw.On("Exists", mock.Anything, entities.TableLockers, entities.ColLockerID, uint(3)).Return(false, nil)

		err := svc.AssignLocker(context.Background(), 3, domain.LockerRequest{})
		assert.ErrorIs(t, err, domain.ErrLockerNotFound)
	})
}
