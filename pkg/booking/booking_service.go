package booking

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/internal/utils"
	"context"

	"go.uber.org/zap"
)

const entity = "booking"

type (
	BookingService interface {
		CreateBooking(ctx context.Context, req domain.CreateBookingRequest) (*domain.BookingResponse, error)
		GetBooking(ctx context.Context, id uint) (*domain.BookingResponse, error)
		GetBookings(ctx context.Context) ([]domain.BookingResponse, error)
	}

	bookingService struct {
		bookingRepository BookingRepository
		logger            *zap.Logger
	}
)

func NewBookingService(bookingRepository BookingRepository, logger *zap.Logger) BookingService {
	return &bookingService{
		bookingRepository: bookingRepository,
		logger:            logger,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req domain.CreateBookingRequest) (res *domain.BookingResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "create")
	defer func() { utils.EndOperation(span, s.logger, entity, "create", err) }()

	booking := &entities.Booking{MomentStart: req.MomentStart, MomentEnd: req.MomentEnd}
	if err = s.bookingRepository.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}
	created := toResponse(booking)
	return &created, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (res *domain.BookingResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "get")
	defer func() { utils.EndOperation(span, s.logger, entity, "get", err) }()

	booking, err := s.bookingRepository.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	found := toResponse(booking)
	return &found, nil
}

func (s *bookingService) GetBookings(ctx context.Context) (res []domain.BookingResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "list")
	defer func() { utils.EndOperation(span, s.logger, entity, "list", err) }()

	bookings, err := s.bookingRepository.GetBookings(ctx)
	if err != nil {
		return nil, err
	}
	res = make([]domain.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		res = append(res, toResponse(b))
	}
	return res, nil
}

func toResponse(b *entities.Booking) domain.BookingResponse {
	return domain.BookingResponse{BookingID: b.BookingID, MomentStart: b.MomentStart, MomentEnd: b.MomentEnd}
}
