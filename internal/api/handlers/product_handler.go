package handlers

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/internal/api/presenters"
	"Groeneweide-Backend/pkg/product"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		CreateProduct(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
		GetProduct(c *fiber.Ctx) error
		PatchProduct(c *fiber.Ctx) error
		DeleteProduct(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		validator:      validator,
	}
}

func (h *productHandler) CreateProduct(c *fiber.Ctx) error {
	req := new(domain.CreateProductRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProduct, err)
	}

	res, err := h.productService.CreateProduct(c.UserContext(), *req)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedCreateProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateProduct)
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	res, err := h.productService.GetProducts(c.UserContext())
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) GetProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	res, err := h.productService.GetProduct(c.UserContext(), id)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedGetProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProduct)
}

func (h *productHandler) PatchProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}
	req := new(domain.ProductPatch)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	if err := h.productService.PatchProduct(c.UserContext(), id, *req); err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedUpdateProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateProduct)
}

func (h *productHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	if err := h.productService.DeleteProduct(c.UserContext(), id); err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedDeleteProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProduct)
}
