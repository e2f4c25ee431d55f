package handlers

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/internal/api/presenters"
	"Groeneweide-Backend/pkg/order"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		CreateOrder(c *fiber.Ctx) error
		GetOrders(c *fiber.Ctx) error
		GetOrder(c *fiber.Ctx) error
		ReplaceOrder(c *fiber.Ctx) error
		PatchOrder(c *fiber.Ctx) error
		DeleteOrder(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func (h *orderHandler) CreateOrder(c *fiber.Ctx) error {
	req := new(domain.OrderRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrder, err)
	}

	res, err := h.orderService.CreateOrder(c.UserContext(), *req)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedCreateOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateOrder)
}

func (h *orderHandler) GetOrders(c *fiber.Ctx) error {
	res, err := h.orderService.GetOrders(c.UserContext())
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedGetOrders, err)
	}
	if len(res) == 0 {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetOrders, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	res, err := h.orderService.GetOrder(c.UserContext(), id)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedGetOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrder)
}

func (h *orderHandler) ReplaceOrder(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}
	req := new(domain.OrderRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrder, err)
	}

	if err := h.orderService.ReplaceOrder(c.UserContext(), id, *req); err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedUpdateOrder, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateOrder)
}

func (h *orderHandler) PatchOrder(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}
	req := new(domain.OrderPatch)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrder, err)
	}

	if err := h.orderService.PatchOrder(c.UserContext(), id, *req); err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedUpdateOrder, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateOrder)
}

// DeleteOrder removes the order together with every ordered product on it.
func (h *orderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	res, err := h.orderService.DeleteOrderCascade(c.UserContext(), id)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedDeleteOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteOrder)
}
