package order

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/internal/mocks"
	"Groeneweide-Backend/pkg/events"
	"Groeneweide-Backend/pkg/patch"
	"Groeneweide-Backend/pkg/store"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepository) GetOrderByID(ctx context.Context, id uint) (*entities.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*entities.Order)
	return order, args.Error(1)
}

func (m *mockOrderRepository) GetOrders(ctx context.Context) ([]*entities.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*entities.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepository) UpdateOrder(ctx context.Context, id uint, changes *patch.ChangeSet) (int64, error) {
	args := m.Called(ctx, id, changes)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepository) DeleteOrder(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepository) DeleteOrderLines(ctx context.Context, orderID uint) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event events.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockPublisher) Close() error {
	return nil
}

func ptr[T any](v T) *T {
	return &v
}

func linked(lockerID, bookingID uint) store.Where {
	return store.Where{entities.ColLockerID: lockerID, entities.ColBookingID: bookingID}
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(e events.Event) bool { return e.Type == eventType })
}

func newTestService() (OrderService, *mocks.Gateway, *mockOrderRepository, *mockPublisher) {
	gw := new(mocks.Gateway)
	repo := new(mockOrderRepository)
	pub := new(mockPublisher)
	return NewOrderService(gw, repo, pub, zap.NewNop()), gw, repo, pub
}

var created = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestCreateOrder_Success(t *testing.T) {
	svc, gw, repo, pub := newTestService()

	gw.On("Exists", mock.Anything, entities.TableLockers, entities.ColLockerID, uint(1)).Return(true, nil)
	gw.On("Exists", mock.Anything, entities.TableBookings, entities.ColBookingID, uint(10)).Return(true, nil)
	gw.On("ExistsWhere", mock.Anything, entities.TableLockers, linked(1, 10)).Return(true, nil)
	repo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*entities.Order")).
		Run(func(args mock.Arguments) { args.Get(1).(*entities.Order).OrderID = 77 }).
		Return(nil)
	pub.On("Publish", mock.Anything, eventOfType(events.OrderCreated)).Return(nil)

	res, err := svc.CreateOrder(context.Background(), domain.OrderRequest{
		LockerID: 1, BookingID: 10, Price: 1599, MomentCreated: created,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(77), res.OrderID)
	assert.Equal(t, 1, gw.Transactions)
	pub.AssertExpectations(t)
}

func TestCreateOrder_BookingWithoutLocker(t *testing.T) {
	svc, gw, repo, pub := newTestService()

	gw.On("Exists", mock.Anything, entities.TableLockers, entities.ColLockerID, uint(1)).Return(true, nil)
	gw.On("Exists", mock.Anything, entities.TableBookings, entities.ColBookingID, uint(11)).Return(true, nil)
	gw.On("ExistsWhere", mock.Anything, entities.TableLockers, linked(1, 11)).Return(false, nil)

	_, err := svc.CreateOrder(context.Background(), domain.OrderRequest{LockerID: 1, BookingID: 11, MomentCreated: created})
	assert.ErrorIs(t, err, domain.ErrNoLockerForBooking)
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
	repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateOrder_InvalidLockerShortCircuits(t *testing.T) {
	svc, gw, repo, _ := newTestService()

	gw.On("Exists", mock.Anything, entities.TableLockers, entities.ColLockerID, uint(9)).Return(false, nil)

	_, err := svc.CreateOrder(context.Background(), domain.OrderRequest{LockerID: 9, BookingID: 10, MomentCreated: created})
	assert.ErrorIs(t, err, domain.ErrInvalidLocker)
	gw.AssertNotCalled(t, "Exists", mock.Anything, entities.TableBookings, mock.Anything, mock.Anything)
	gw.AssertNotCalled(t, "ExistsWhere", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrder_InvalidBooking(t *testing.T) {
	svc, gw, repo, _ := newTestService()

	gw.On("Exists", mock.Anything, entities.TableLockers, entities.ColLockerID, uint(1)).Return(true, nil)
	gw.On("Exists", mock.Anything, entities.TableBookings, entities.ColBookingID, uint(99)).Return(false, nil)

	_, err := svc.CreateOrder(context.Background(), domain.OrderRequest{LockerID: 1, BookingID: 99, MomentCreated: created})
	assert.ErrorIs(t, err, domain.ErrInvalidBooking)
	repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrder_PublishFailureIsNotReturned(t *testing.T) {
	svc, gw, repo, pub := newTestService()

	gw.On("Exists", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	gw.On("ExistsWhere", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	repo.On("CreateOrder", mock.Anything, mock.Anything).Return(nil)
	pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	_, err := svc.CreateOrder(context.Background(), domain.OrderRequest{LockerID: 1, BookingID: 10, MomentCreated: created})
	assert.NoError(t, err)
}

func TestReplaceOrder(t *testing.T) {
	req := domain.OrderRequest{LockerID: 2, BookingID: 12, Price: 800, MomentCreated: created}

	t.Run("unknown order", func(t *testing.T) {
		svc, gw, repo, _ := newTestService()
		gw.On("Exists", mock.Anything, entities.TableOrders, entities.ColOrderID, uint(5)).Return(false, nil)

		err := svc.ReplaceOrder(context.Background(), 5, req)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		repo.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("zero rows", func(t *testing.T) {
		svc, gw, repo, _ := newTestService()
		gw.On("Exists", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
		gw.On("ExistsWhere", mock.Anything, entities.TableLockers, linked(2, 12)).Return(true, nil)
		repo.On("UpdateOrder", mock.Anything, uint(5), mock.MatchedBy(func(cs *patch.ChangeSet) bool {
			return cs.Len() == 6
		})).Return(int64(0), nil)

		err := svc.ReplaceOrder(context.Background(), 5, req)
		assert.ErrorIs(t, err, domain.ErrOrderNotUpdated)
		assert.ErrorIs(t, err, domain.ErrNoRowsChanged)
	})

	t.Run("replaced", func(t *testing.T) {
		svc, gw, repo, pub := newTestService()
		gw.On("Exists", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
		gw.On("ExistsWhere", mock.Anything, entities.TableLockers, linked(2, 12)).Return(true, nil)
		repo.On("UpdateOrder", mock.Anything, uint(5), mock.Anything).Return(int64(1), nil)
		pub.On("Publish", mock.Anything, eventOfType(events.OrderUpdated)).Return(nil)

		require.NoError(t, svc.ReplaceOrder(context.Background(), 5, req))
	})
}

func TestPatchOrder_EmptyPatchIssuesNoStoreCalls(t *testing.T) {
	svc, gw, repo, _ := newTestService()

	err := svc.PatchOrder(context.Background(), 5, domain.OrderPatch{})
	assert.ErrorIs(t, err, domain.ErrNoFieldsProvided)
	assert.Zero(t, gw.Transactions)
	assert.Empty(t, gw.Calls)
	assert.Empty(t, repo.Calls)
}

func TestPatchOrder_NonReferenceFieldsSkipReferenceChecks(t *testing.T) {
	svc, gw, repo, pub := newTestService()

	repo.On("GetOrderByID", mock.Anything, uint(5)).Return(&entities.Order{OrderID: 5, LockerID: 1, BookingID: 10}, nil)
	repo.On("UpdateOrder", mock.Anything, uint(5), mock.Anything).Return(int64(1), nil)
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.PatchOrder(context.Background(), 5, domain.OrderPatch{MomentGathered: ptr(created)}))
	assert.Empty(t, gw.Calls)
}

func TestPatchOrder_BookingOnlyChecksMergedPair(t *testing.T) {
	svc, gw, repo, _ := newTestService()

	repo.On("GetOrderByID", mock.Anything, uint(5)).Return(&entities.Order{OrderID: 5, LockerID: 1, BookingID: 10}, nil)
	gw.On("Exists", mock.Anything, entities.TableBookings, entities.ColBookingID, uint(11)).Return(true, nil)
	gw.On("ExistsWhere", mock.Anything, entities.TableLockers, linked(1, 11)).Return(false, nil)

	err := svc.PatchOrder(context.Background(), 5, domain.OrderPatch{BookingID: ptr(uint(11))})
	assert.ErrorIs(t, err, domain.ErrNoLockerForBooking)
	gw.AssertNotCalled(t, "Exists", mock.Anything, entities.TableLockers, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestPatchOrder_UnknownOrder(t *testing.T) {
	svc, _, repo, _ := newTestService()
	repo.On("GetOrderByID", mock.Anything, uint(5)).Return(nil, domain.ErrOrderNotFound)

	err := svc.PatchOrder(context.Background(), 5, domain.OrderPatch{Price: ptr(int64(100))})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteOrderCascade_RemovesOrderAndLines(t *testing.T) {
	svc, gw, repo, pub := newTestService()

	gw.On("Exists", mock.Anything, entities.TableOrders, entities.ColOrderID, uint(5)).Return(true, nil)
	gw.On("CountDependents", mock.Anything, entities.TableOrderedProducts, entities.ColOrderID, uint(5)).Return(int64(3), nil)
	repo.On("DeleteOrderLines", mock.Anything, uint(5)).Return(int64(3), nil)
	repo.On("DeleteOrder", mock.Anything, uint(5)).Return(int64(1), nil)
	pub.On("Publish", mock.Anything, eventOfType(events.OrderDeleted)).Return(nil)

	res, err := svc.DeleteOrderCascade(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, &domain.CascadeResult{OrderID: 5, LinesRemoved: 3}, res)
	repo.AssertExpectations(t)
}

func TestDeleteOrderCascade_NoLinesLeavesOrder(t *testing.T) {
	svc, gw, repo, pub := newTestService()

	gw.On("Exists", mock.Anything, entities.TableOrders, entities.ColOrderID, uint(5)).Return(true, nil)
	gw.On("CountDependents", mock.Anything, entities.TableOrderedProducts, entities.ColOrderID, uint(5)).Return(int64(0), nil)

	_, err := svc.DeleteOrderCascade(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrNoDependents)
	repo.AssertNotCalled(t, "DeleteOrderLines", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteOrder", mock.Anything, mock.Anything)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestDeleteOrderCascade_UnknownOrder(t *testing.T) {
	svc, gw, repo, _ := newTestService()
	gw.On("Exists", mock.Anything, entities.TableOrders, entities.ColOrderID, uint(5)).Return(false, nil)

	_, err := svc.DeleteOrderCascade(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	gw.AssertNotCalled(t, "CountDependents", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteOrderLines", mock.Anything, mock.Anything)
}

func TestDeleteOrderCascade_CountMismatchAborts(t *testing.T) {
	svc, gw, repo, _ := newTestService()

	gw.On("Exists", mock.Anything, entities.TableOrders, entities.ColOrderID, uint(5)).Return(true, nil)
	gw.On("CountDependents", mock.Anything, entities.TableOrderedProducts, entities.ColOrderID, uint(5)).Return(int64(3), nil)
	repo.On("DeleteOrderLines", mock.Anything, uint(5)).Return(int64(2), nil)

	_, err := svc.DeleteOrderCascade(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrCascadeIncomplete)
	repo.AssertNotCalled(t, "DeleteOrder", mock.Anything, mock.Anything)
}
