package handlers

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/internal/api/presenters"
	"Groeneweide-Backend/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		GetRecipe(c *fiber.Ctx) error
		PatchRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error

		CreateRecipePart(c *fiber.Ctx) error
		GetRecipeParts(c *fiber.Ctx) error
		PatchRecipePart(c *fiber.Ctx) error
		DeleteRecipePart(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.UserContext(), *req)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipes(c.UserContext())
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipe(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	res, err := h.recipeService.GetRecipe(c.UserContext(), id)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedGetRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipe)
}

func (h *recipeHandler) PatchRecipe(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}
	req := new(domain.RecipePatch)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	if err := h.recipeService.PatchRecipe(c.UserContext(), id, *req); err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	if err := h.recipeService.DeleteRecipe(c.UserContext(), id); err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) CreateRecipePart(c *fiber.Ctx) error {
	req := new(domain.CreateRecipePartRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipePart, err)
	}

	res, err := h.recipeService.CreateRecipePart(c.UserContext(), *req)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedCreateRecipePart, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipePart)
}

// GetRecipeParts lists the parts of the recipe named by :recipeId.
func (h *recipeHandler) GetRecipeParts(c *fiber.Ctx) error {
	recipeID, err := paramID(c, "recipeId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	res, err := h.recipeService.GetRecipeParts(c.UserContext(), recipeID)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedGetRecipeParts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeParts)
}

func (h *recipeHandler) PatchRecipePart(c *fiber.Ctx) error {
	recipeID, productID, err := compositeKey(c, "recipeId", "productId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}
	req := new(domain.RecipePartPatch)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipePart, err)
	}

	if err := h.recipeService.PatchRecipePart(c.UserContext(), recipeID, productID, *req); err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedUpdateRecipePart, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateRecipePart)
}

func (h *recipeHandler) DeleteRecipePart(c *fiber.Ctx) error {
	recipeID, productID, err := compositeKey(c, "recipeId", "productId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	if err := h.recipeService.DeleteRecipePart(c.UserContext(), recipeID, productID); err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedDeleteRecipePart, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipePart)
}
