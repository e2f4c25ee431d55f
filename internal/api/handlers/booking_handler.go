package handlers

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/internal/api/presenters"
	"Groeneweide-Backend/pkg/booking"
	"Groeneweide-Backend/pkg/locker"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BookingHandler interface {
		CreateBooking(c *fiber.Ctx) error
		GetBookings(c *fiber.Ctx) error
		GetBooking(c *fiber.Ctx) error

		CreateLocker(c *fiber.Ctx) error
		GetLockers(c *fiber.Ctx) error
		AssignLocker(c *fiber.Ctx) error
	}

	bookingHandler struct {
		bookingService booking.BookingService
		lockerService  locker.LockerService
		validator      *validator.Validate
	}
)

func NewBookingHandler(bookingService booking.BookingService, lockerService locker.LockerService, validator *validator.Validate) BookingHandler {
	return &bookingHandler{
		bookingService: bookingService,
		lockerService:  lockerService,
		validator:      validator,
	}
}

func (h *bookingHandler) CreateBooking(c *fiber.Ctx) error {
	req := new(domain.CreateBookingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateBooking, err)
	}

	res, err := h.bookingService.CreateBooking(c.UserContext(), *req)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedCreateBooking, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateBooking)
}

func (h *bookingHandler) GetBookings(c *fiber.Ctx) error {
	res, err := h.bookingService.GetBookings(c.UserContext())
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedGetBookings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBookings)
}

func (h *bookingHandler) GetBooking(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	res, err := h.bookingService.GetBooking(c.UserContext(), id)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedGetBooking, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBooking)
}

func (h *bookingHandler) CreateLocker(c *fiber.Ctx) error {
	req := new(domain.LockerRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateLocker, err)
	}

	res, err := h.lockerService.CreateLocker(c.UserContext(), *req)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedCreateLocker, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateLocker)
}

func (h *bookingHandler) GetLockers(c *fiber.Ctx) error {
	res, err := h.lockerService.GetLockers(c.UserContext())
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedGetLockers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLockers)
}

// AssignLocker points a locker at a booking, or frees it when booking_id is null.
func (h *bookingHandler) AssignLocker(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}
	req := new(domain.LockerRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAssignLocker, err)
	}

	if err := h.lockerService.AssignLocker(c.UserContext(), id, *req); err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedAssignLocker, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAssignLocker)
}
