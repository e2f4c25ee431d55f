package booking

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/pkg/store"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	BookingRepository interface {
		CreateBooking(ctx context.Context, booking *entities.Booking) error
		GetBookingByID(ctx context.Context, id uint) (*entities.Booking, error)
		GetBookings(ctx context.Context) ([]*entities.Booking, error)
	}

	bookingRepository struct {
		db *gorm.DB
	}
)

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) CreateBooking(ctx context.Context, booking *entities.Booking) error {
	return store.Wrap(store.Conn(ctx, r.db).Create(booking).Error, "insert booking")
}

func (r *bookingRepository) GetBookingByID(ctx context.Context, id uint) (*entities.Booking, error) {
	var booking entities.Booking
	if err := store.Conn(ctx, r.db).Where("booking_id = ?", id).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, store.Wrap(err, "select booking")
	}
	return &booking, nil
}

func (r *bookingRepository) GetBookings(ctx context.Context) ([]*entities.Booking, error) {
	var bookings []*entities.Booking
	if err := store.Conn(ctx, r.db).Order("moment_start asc").Find(&bookings).Error; err != nil {
		return nil, store.Wrap(err, "select bookings")
	}
	return bookings, nil
}
