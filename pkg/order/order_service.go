package order

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/internal/utils"
	"Groeneweide-Backend/pkg/events"
	"Groeneweide-Backend/pkg/store"
	"context"
	"fmt"

	"go.uber.org/zap"
)

const entity = "order"

type (
	OrderService interface {
		CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderResponse, error)
		GetOrder(ctx context.Context, id uint) (*domain.OrderResponse, error)
		GetOrders(ctx context.Context) ([]domain.OrderResponse, error)
		ReplaceOrder(ctx context.Context, id uint, req domain.OrderRequest) error
		PatchOrder(ctx context.Context, id uint, p domain.OrderPatch) error
		DeleteOrderCascade(ctx context.Context, id uint) (*domain.CascadeResult, error)
	}

	orderService struct {
		gateway         store.Gateway
		orderRepository OrderRepository
		publisher       events.Publisher
		logger          *zap.Logger
	}
)

func NewOrderService(gateway store.Gateway, orderRepository OrderRepository, publisher events.Publisher, logger *zap.Logger) OrderService {
	return &orderService{
		gateway:         gateway,
		orderRepository: orderRepository,
		publisher:       publisher,
		logger:          logger,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req domain.OrderRequest) (res *domain.OrderResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "create")
	defer func() { utils.EndOperation(span, s.logger, entity, "create", err) }()

	err = s.gateway.Transaction(ctx, func(ctx context.Context) error {
		if err := s.checkReferences(ctx, &req.LockerID, &req.BookingID, req.LockerID, req.BookingID); err != nil {
			return err
		}

		order := &entities.Order{
			LockerID:        req.LockerID,
			BookingID:       req.BookingID,
			Price:           req.Price,
			MomentCreated:   req.MomentCreated,
			MomentDelivered: req.MomentDelivered,
			MomentGathered:  req.MomentGathered,
		}
		if err := s.orderRepository.CreateOrder(ctx, order); err != nil {
			return err
		}
		created := domain.NewOrderResponse(order)
		res = &created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewEvent(events.OrderCreated, res.OrderID, res))
	return res, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (res *domain.OrderResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "get")
	defer func() { utils.EndOperation(span, s.logger, entity, "get", err) }()

	order, err := s.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	found := domain.NewOrderResponse(order)
	return &found, nil
}

func (s *orderService) GetOrders(ctx context.Context) (res []domain.OrderResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "list")
	defer func() { utils.EndOperation(span, s.logger, entity, "list", err) }()

	orders, err := s.orderRepository.GetOrders(ctx)
	if err != nil {
		return nil, err
	}
	res = make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, domain.NewOrderResponse(o))
	}
	return res, nil
}

// ReplaceOrder overwrites every column of an existing order after running the
// same reference checks as CreateOrder on the new values.
func (s *orderService) ReplaceOrder(ctx context.Context, id uint, req domain.OrderRequest) (err error) {
	ctx, span := utils.StartOperation(ctx, entity, "replace")
	defer func() { utils.EndOperation(span, s.logger, entity, "replace", err) }()

	err = s.gateway.Transaction(ctx, func(ctx context.Context) error {
		found, err := s.gateway.Exists(ctx, entities.TableOrders, entities.ColOrderID, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrOrderNotFound
		}

		if err := s.checkReferences(ctx, &req.LockerID, &req.BookingID, req.LockerID, req.BookingID); err != nil {
			return err
		}

		affected, err := s.orderRepository.UpdateOrder(ctx, id, req.Changes())
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrOrderNotUpdated
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.NewEvent(events.OrderUpdated, id, req))
	return nil
}

// PatchOrder applies the present fields only. Reference checks run for the
// locker and booking fields that are present, and the linkage check runs
// against the order's locker/booking pair as it will be after the patch.
func (s *orderService) PatchOrder(ctx context.Context, id uint, p domain.OrderPatch) (err error) {
	ctx, span := utils.StartOperation(ctx, entity, "patch")
	defer func() { utils.EndOperation(span, s.logger, entity, "patch", err) }()

	changes := p.Changes()
	if changes.Empty() {
		return domain.ErrNoFieldsProvided
	}

	err = s.gateway.Transaction(ctx, func(ctx context.Context) error {
		current, err := s.orderRepository.GetOrderByID(ctx, id)
		if err != nil {
			return err
		}

		if p.TouchesReferences() {
			lockerID, bookingID := current.LockerID, current.BookingID
			if p.LockerID != nil {
				lockerID = *p.LockerID
			}
			if p.BookingID != nil {
				bookingID = *p.BookingID
			}
			if err := s.checkReferences(ctx, p.LockerID, p.BookingID, lockerID, bookingID); err != nil {
				return err
			}
		}

		affected, err := s.orderRepository.UpdateOrder(ctx, id, changes)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrOrderNotUpdated
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.NewEvent(events.OrderUpdated, id, changes.Map()))
	return nil
}

// DeleteOrderCascade removes an order and all of its ordered products in one
// transaction. An order without lines is rejected with ErrNoOrderedProducts
// and left in place.
func (s *orderService) DeleteOrderCascade(ctx context.Context, id uint) (res *domain.CascadeResult, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "delete_cascade")
	defer func() {
		result := "deleted"
		if err != nil {
			result = domain.KindOf(err)
		}
		utils.CascadeDeletes.WithLabelValues(result).Inc()
		utils.EndOperation(span, s.logger, entity, "delete_cascade", err)
	}()

	err = s.gateway.Transaction(ctx, func(ctx context.Context) error {
		found, err := s.gateway.Exists(ctx, entities.TableOrders, entities.ColOrderID, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrOrderNotFound
		}

		lines, err := s.gateway.CountDependents(ctx, entities.TableOrderedProducts, entities.ColOrderID, id)
		if err != nil {
			return err
		}
		if lines == 0 {
			return domain.ErrNoOrderedProducts
		}

		removed, err := s.orderRepository.DeleteOrderLines(ctx, id)
		if err != nil {
			return err
		}
		if removed != lines {
			return fmt.Errorf("%w: counted %d, removed %d", domain.ErrCascadeIncomplete, lines, removed)
		}

		deleted, err := s.orderRepository.DeleteOrder(ctx, id)
		if err != nil {
			return err
		}
		if deleted != 1 {
			return domain.ErrOrderNotFound
		}

		res = &domain.CascadeResult{OrderID: id, LinesRemoved: removed}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewEvent(events.OrderDeleted, id, res))
	return res, nil
}

// checkReferences validates the locker and booking when their pointer is
// set, then requires lockerID to be linked to bookingID.
func (s *orderService) checkReferences(ctx context.Context, locker, booking *uint, lockerID, bookingID uint) error {
	if locker != nil {
		found, err := s.gateway.Exists(ctx, entities.TableLockers, entities.ColLockerID, *locker)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrInvalidLocker
		}
	}

	if booking != nil {
		found, err := s.gateway.Exists(ctx, entities.TableBookings, entities.ColBookingID, *booking)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrInvalidBooking
		}
	}

	linked, err := s.gateway.ExistsWhere(ctx, entities.TableLockers, store.Where{
		entities.ColLockerID:  lockerID,
		entities.ColBookingID: bookingID,
	})
	if err != nil {
		return err
	}
	if !linked {
		return domain.ErrNoLockerForBooking
	}
	return nil
}

// publish runs after commit; a failed publish does not undo the write.
func (s *orderService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish order event",
			zap.String("type", event.Type),
			zap.Uint("order_id", event.OrderID),
			zap.Error(err),
		)
	}
}
