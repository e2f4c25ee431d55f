package handlers

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/internal/api/presenters"
	"Groeneweide-Backend/pkg/assets"

	"github.com/gofiber/fiber/v2"
)

type (
	AssetHandler interface {
		UploadProductAsset(c *fiber.Ctx) error
		UploadRecipeAsset(c *fiber.Ctx) error
	}

	assetHandler struct {
		assetService assets.AssetService
	}
)

func NewAssetHandler(assetService assets.AssetService) AssetHandler {
	return &assetHandler{assetService: assetService}
}

func (h *assetHandler) UploadProductAsset(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.assetService.UploadProductAsset(c.UserContext(), id, file)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedUploadAsset, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadAsset)
}

func (h *assetHandler) UploadRecipeAsset(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.assetService.UploadRecipeAsset(c.UserContext(), id, file)
	if err != nil {
		return presenters.RuleErrorResponse(c, domain.MessageFailedUploadAsset, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadAsset)
}
