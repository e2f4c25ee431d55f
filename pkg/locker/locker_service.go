package locker

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/internal/utils"
	"Groeneweide-Backend/pkg/patch"
	"Groeneweide-Backend/pkg/store"
	"context"

	"go.uber.org/zap"
)

const entity = "locker"

type (
	LockerService interface {
		CreateLocker(ctx context.Context, req domain.LockerRequest) (*domain.LockerResponse, error)
		AssignLocker(ctx context.Context, id uint, req domain.LockerRequest) error
		GetLockers(ctx context.Context) ([]domain.LockerResponse, error)
	}

	lockerService struct {
		gateway          store.Gateway
		lockerRepository LockerRepository
		logger           *zap.Logger
	}
)

func NewLockerService(gateway store.Gateway, lockerRepository LockerRepository, logger *zap.Logger) LockerService {
	return &lockerService{
		gateway:          gateway,
		lockerRepository: lockerRepository,
		logger:           logger,
	}
}

func (s *lockerService) CreateLocker(ctx context.Context, req domain.LockerRequest) (res *domain.LockerResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "create")
	defer func() { utils.EndOperation(span, s.logger, entity, "create", err) }()

	err = s.gateway.Transaction(ctx, func(ctx context.Context) error {
		if err := s.checkBooking(ctx, req.BookingID); err != nil {
			return err
		}
		locker := &entities.Locker{BookingID: req.BookingID}
		if err := s.lockerRepository.CreateLocker(ctx, locker); err != nil {
			return err
		}
		res = &domain.LockerResponse{LockerID: locker.LockerID, BookingID: locker.BookingID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// AssignLocker links the locker to a booking, or frees it when BookingID is
// nil. Whether a locker may serve several open orders is not checked here.
func (s *lockerService) AssignLocker(ctx context.Context, id uint, req domain.LockerRequest) (err error) {
	ctx, span := utils.StartOperation(ctx, entity, "assign")
	defer func() { utils.EndOperation(span, s.logger, entity, "assign", err) }()

	return s.gateway.Transaction(ctx, func(ctx context.Context) error {
		found, err := s.gateway.Exists(ctx, entities.TableLockers, entities.ColLockerID, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrLockerNotFound
		}
		if err := s.checkBooking(ctx, req.BookingID); err != nil {
			return err
		}

		affected, err := s.lockerRepository.UpdateLocker(ctx, id, patch.New().Set(entities.ColBookingID, req.BookingID))
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrLockerNotUpdated
		}
		return nil
	})
}

func (s *lockerService) GetLockers(ctx context.Context) (res []domain.LockerResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "list")
	defer func() { utils.EndOperation(span, s.logger, entity, "list", err) }()

	lockers, err := s.lockerRepository.GetLockers(ctx)
	if err != nil {
		return nil, err
	}
	res = make([]domain.LockerResponse, 0, len(lockers))
	for _, l := range lockers {
		res = append(res, domain.LockerResponse{LockerID: l.LockerID, BookingID: l.BookingID})
	}
	return res, nil
}

func (s *lockerService) checkBooking(ctx context.Context, bookingID *uint) error {
	if bookingID == nil {
		return nil
	}
	found, err := s.gateway.Exists(ctx, entities.TableBookings, entities.ColBookingID, *bookingID)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrInvalidBooking
	}
	return nil
}
