package handlers

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/internal/api/presenters"
	"Groeneweide-Backend/pkg/orderedproduct"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderedProductHandler interface {
		CreateOrderedProduct(c *fiber.Ctx) error
		GetOrderedProducts(c *fiber.Ctx) error
		GetOrderedProductsByOrder(c *fiber.Ctx) error
		PatchOrderedProduct(c *fiber.Ctx) error
		DeleteOrderedProduct(c *fiber.Ctx) error
	}

	orderedProductHandler struct {
		orderedProductService orderedproduct.OrderedProductService
		validator             *validator.Validate
	}
)

func NewOrderedProductHandler(orderedProductService orderedproduct.OrderedProductService, validator *validator.Validate) OrderedProductHandler {
	return &orderedProductHandler{
		orderedProductService: orderedProductService,
		validator:             validator,
	}
}

func (h *orderedProductHandler) CreateOrderedProduct(c *fiber.Ctx) error {
	req := new(domain.CreateOrderedProductRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrderedProduct, err)
	}

	res, err := h.orderedProductService.CreateOrderedProduct(c.UserContext(), *req)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedCreateOrderedProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateOrderedProduct)
}

func (h *orderedProductHandler) GetOrderedProducts(c *fiber.Ctx) error {
	res, err := h.orderedProductService.GetOrderedProducts(c.UserContext())
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedGetOrderedProducts, err)
	}
	if len(res) == 0 {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetOrderedProducts, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrderedProducts)
}

func (h *orderedProductHandler) GetOrderedProductsByOrder(c *fiber.Ctx) error {
	orderID, err := paramID(c, "orderId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	res, err := h.orderedProductService.GetOrderedProductsByOrder(c.UserContext(), orderID)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedGetOrderedProducts, err)
	}
	if len(res) == 0 {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetOrderedProducts, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrderedProducts)
}

func (h *orderedProductHandler) PatchOrderedProduct(c *fiber.Ctx) error {
	orderID, productID, err := compositeKey(c, "orderId", "productId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}
	req := new(domain.OrderedProductPatch)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateOrderedProduct, err)
	}

	if err := h.orderedProductService.PatchOrderedProduct(c.UserContext(), orderID, productID, *req); err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedUpdateOrderedProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateOrderedProduct)
}

func (h *orderedProductHandler) DeleteOrderedProduct(c *fiber.Ctx) error {
	orderID, productID, err := compositeKey(c, "orderId", "productId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	if err := h.orderedProductService.DeleteOrderedProduct(c.UserContext(), orderID, productID); err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedDeleteOrderedProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteOrderedProduct)
}
