package domain

import (
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/pkg/patch"
)

var (
	MessageSuccessCreateRecipe = "recipe created successfully"
	MessageSuccessGetRecipes   = "success get recipes"
	MessageSuccessGetRecipe    = "success get recipe detail"
	MessageSuccessUpdateRecipe = "recipe updated successfully"
	MessageSuccessDeleteRecipe = "recipe is deleted"

	MessageFailedCreateRecipe = "failed to create recipe"
	MessageFailedGetRecipes   = "failed to get recipes"
	MessageFailedGetRecipe    = "failed to get recipe detail"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"

	MessageSuccessCreateRecipePart = "recipe part created successfully"
	MessageSuccessGetRecipeParts   = "success get recipe parts"
	MessageSuccessUpdateRecipePart = "recipe part updated successfully"
	MessageSuccessDeleteRecipePart = "recipe part deleted successfully"

	MessageFailedCreateRecipePart = "failed to create recipe part"
	MessageFailedGetRecipeParts   = "failed to get recipe parts"
	MessageFailedUpdateRecipePart = "failed to update recipe part"
	MessageFailedDeleteRecipePart = "failed to delete recipe part"

	ErrRecipeNotFound       = NewRuleError(ErrNotFound, "no recipe found with given ID")
	ErrInvalidRecipe        = NewRuleError(ErrInvalidReference, "no recipe found with given recipe ID")
	ErrRecipeExists         = NewRuleError(ErrAlreadyExists, "recipe name already exists")
	ErrRecipeNotUpdated     = NewRuleError(ErrNoRowsChanged, "no data updated")
	ErrRecipePartNotFound   = NewRuleError(ErrNotFound, "recipe part not found")
	ErrDuplicateRecipePart  = NewRuleError(ErrDuplicatePair, "product is already part of the recipe")
	ErrRecipePartNotUpdated = NewRuleError(ErrNoRowsChanged, "recipe part not updated")
)

type (
	CreateRecipeRequest struct {
		Name         string `json:"name" validate:"required,max=100"`
		AssetsURL    string `json:"assets_url" validate:"max=255"`
		PeopleServed int    `json:"people_served" validate:"min=0"`
		PrepTime     int    `json:"prep_time" validate:"min=0"`
	}

	RecipePatch struct {
		Name         *string `json:"name" validate:"omitempty,min=1,max=100"`
		AssetsURL    *string `json:"assets_url" validate:"omitempty,max=255"`
		PeopleServed *int    `json:"people_served" validate:"omitempty,min=0"`
		PrepTime     *int    `json:"prep_time" validate:"omitempty,min=0"`
	}

	RecipeResponse struct {
		RecipeID     uint                 `json:"recipe_id"`
		Name         string               `json:"name"`
		AssetsURL    string               `json:"assets_url"`
		PeopleServed int                  `json:"people_served"`
		PrepTime     int                  `json:"prep_time"`
		Parts        []RecipePartResponse `json:"parts,omitempty"`
	}

	CreateRecipePartRequest struct {
		RecipeID  uint `json:"recipe_id" validate:"required"`
		ProductID uint `json:"product_id" validate:"required"`
		Amount    int  `json:"amount" validate:"required,min=1"`
	}

	// RecipePartPatch may move the part to another product of the same recipe.
	RecipePartPatch struct {
		ProductID *uint `json:"product_id" validate:"omitempty,min=1"`
		Amount    *int  `json:"amount" validate:"omitempty,min=1"`
	}

	RecipePartResponse struct {
		RecipeID  uint `json:"recipe_id"`
		ProductID uint `json:"product_id"`
		Amount    int  `json:"amount"`
	}
)

func (p RecipePatch) Changes() *patch.ChangeSet {
	cs := patch.New()
	patch.Field(cs, entities.ColName, p.Name)
	patch.Field(cs, entities.ColAssetsURL, p.AssetsURL)
	patch.Field(cs, entities.ColPeopleServed, p.PeopleServed)
	patch.Field(cs, entities.ColPrepTime, p.PrepTime)
	return cs
}

func (p RecipePartPatch) Changes() *patch.ChangeSet {
	cs := patch.New()
	patch.Field(cs, entities.ColProductID, p.ProductID)
	patch.Field(cs, entities.ColAmount, p.Amount)
	return cs
}

func NewRecipeResponse(r *entities.Recipe) RecipeResponse {
	res := RecipeResponse{
		RecipeID:     r.RecipeID,
		Name:         r.Name,
		AssetsURL:    r.AssetsURL,
		PeopleServed: r.PeopleServed,
		PrepTime:     r.PrepTime,
	}
	for i := range r.Parts {
		res.Parts = append(res.Parts, NewRecipePartResponse(&r.Parts[i]))
	}
	return res
}

func NewRecipePartResponse(p *entities.RecipePart) RecipePartResponse {
	return RecipePartResponse{
		RecipeID:  p.RecipeID,
		ProductID: p.ProductID,
		Amount:    p.Amount,
	}
}
