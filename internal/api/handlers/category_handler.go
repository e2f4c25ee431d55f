package handlers

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/internal/api/presenters"
	"Groeneweide-Backend/pkg/category"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CategoryHandler interface {
		CreateCategory(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		GetCategoryProducts(c *fiber.Ctx) error
		RenameCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
	}

	categoryHandler struct {
		categoryService category.CategoryService
		validator       *validator.Validate
	}
)

func NewCategoryHandler(categoryService category.CategoryService, validator *validator.Validate) CategoryHandler {
	return &categoryHandler{
		categoryService: categoryService,
		validator:       validator,
	}
}

func (h *categoryHandler) CreateCategory(c *fiber.Ctx) error {
	req := new(domain.CategoryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
	}

	res, err := h.categoryService.CreateCategory(c.UserContext(), *req)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedCreateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *categoryHandler) GetCategories(c *fiber.Ctx) error {
	res, err := h.categoryService.GetCategories(c.UserContext())
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedGetCategories, err)
	}
	if len(res) == 0 {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetCategories, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *categoryHandler) GetCategoryProducts(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	res, err := h.categoryService.GetProductsByCategory(c.UserContext(), id)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedGetCategoryItems, err)
	}
	if len(res) == 0 {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetCategoryItems, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategoryItems)
}

func (h *categoryHandler) RenameCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}
	req := new(domain.CategoryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	if err := h.categoryService.RenameCategory(c.UserContext(), id, *req); err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedUpdateCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCategory)
}

func (h *categoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	if err := h.categoryService.DeleteCategory(c.UserContext(), id); err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedDeleteCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}
