package recipe

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/internal/utils"
	"Groeneweide-Backend/pkg/store"
	"context"
	"errors"

	"go.uber.org/zap"
)

const (
	entityRecipe = "recipe"
	entityPart   = "recipe_part"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (*domain.RecipeResponse, error)
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		GetRecipe(ctx context.Context, id uint) (*domain.RecipeResponse, error)
		PatchRecipe(ctx context.Context, id uint, p domain.RecipePatch) error
		DeleteRecipe(ctx context.Context, id uint) error

		CreateRecipePart(ctx context.Context, req domain.CreateRecipePartRequest) (*domain.RecipePartResponse, error)
		GetRecipeParts(ctx context.Context, recipeID uint) ([]domain.RecipePartResponse, error)
		PatchRecipePart(ctx context.Context, recipeID, productID uint, p domain.RecipePartPatch) error
		DeleteRecipePart(ctx context.Context, recipeID, productID uint) error
	}

	recipeService struct {
		gateway          store.Gateway
		recipeRepository RecipeRepository
		logger           *zap.Logger
	}
)

func NewRecipeService(gateway store.Gateway, recipeRepository RecipeRepository, logger *zap.Logger) RecipeService {
	return &recipeService{
		gateway:          gateway,
		recipeRepository: recipeRepository,
		logger:           logger,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (res *domain.RecipeResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entityRecipe, "create")
	defer func() { utils.EndOperation(span, s.logger, entityRecipe, "create", err) }()

	err = s.gateway.Transaction(ctx, func(ctx context.Context) error {
		taken, err := s.gateway.ExistsByAttribute(ctx, entities.TableRecipes, entities.ColName, req.Name)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrRecipeExists
		}

		recipe := &entities.Recipe{
			Name:         req.Name,
			AssetsURL:    req.AssetsURL,
			PeopleServed: req.PeopleServed,
			PrepTime:     req.PrepTime,
		}
		if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrRecipeExists
			}
			return err
		}
		created := domain.NewRecipeResponse(recipe)
		res = &created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *recipeService) GetRecipes(ctx context.Context) (res []domain.RecipeResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entityRecipe, "list")
	defer func() { utils.EndOperation(span, s.logger, entityRecipe, "list", err) }()

	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}
	res = make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, domain.NewRecipeResponse(r))
	}
	return res, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id uint) (res *domain.RecipeResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entityRecipe, "get")
	defer func() { utils.EndOperation(span, s.logger, entityRecipe, "get", err) }()

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	found := domain.NewRecipeResponse(recipe)
	return &found, nil
}

func (s *recipeService) PatchRecipe(ctx context.Context, id uint, p domain.RecipePatch) (err error) {
	ctx, span := utils.StartOperation(ctx, entityRecipe, "patch")
	defer func() { utils.EndOperation(span, s.logger, entityRecipe, "patch", err) }()

	changes := p.Changes()
	if changes.Empty() {
		return domain.ErrNoFieldsProvided
	}

	return s.gateway.Transaction(ctx, func(ctx context.Context) error {
		found, err := s.gateway.Exists(ctx, entities.TableRecipes, entities.ColRecipeID, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrRecipeNotFound
		}

		if p.Name != nil {
			taken, err := s.gateway.ExistsByAttributeExcept(ctx, entities.TableRecipes, entities.ColName, *p.Name, entities.ColRecipeID, id)
			if err != nil {
				return err
			}
			if taken {
				return domain.ErrRecipeExists
			}
		}

		affected, err := s.recipeRepository.UpdateRecipe(ctx, id, changes)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrRecipeExists
			}
			return err
		}
		if affected == 0 {
			return domain.ErrRecipeNotUpdated
		}
		return nil
	})
}

// DeleteRecipe removes the recipe together with its parts.
func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) (err error) {
	ctx, span := utils.StartOperation(ctx, entityRecipe, "delete")
	defer func() { utils.EndOperation(span, s.logger, entityRecipe, "delete", err) }()

	return s.gateway.Transaction(ctx, func(ctx context.Context) error {
		found, err := s.gateway.Exists(ctx, entities.TableRecipes, entities.ColRecipeID, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrRecipeNotFound
		}

		if _, err := s.recipeRepository.DeleteRecipeParts(ctx, id); err != nil {
			return err
		}
		affected, err := s.recipeRepository.DeleteRecipe(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrRecipeNotFound
		}
		return nil
	})
}

// CreateRecipePart checks the product, then the recipe, then the pair.
func (s *recipeService) CreateRecipePart(ctx context.Context, req domain.CreateRecipePartRequest) (res *domain.RecipePartResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entityPart, "create")
	defer func() { utils.EndOperation(span, s.logger, entityPart, "create", err) }()

	err = s.gateway.Transaction(ctx, func(ctx context.Context) error {
		if err := s.checkProduct(ctx, req.ProductID); err != nil {
			return err
		}

		found, err := s.gateway.Exists(ctx, entities.TableRecipes, entities.ColRecipeID, req.RecipeID)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrInvalidRecipe
		}

		if err := s.checkPairFree(ctx, req.RecipeID, req.ProductID); err != nil {
			return err
		}

		part := &entities.RecipePart{RecipeID: req.RecipeID, ProductID: req.ProductID, Amount: req.Amount}
		if err := s.recipeRepository.CreateRecipePart(ctx, part); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrDuplicateRecipePart
			}
			return err
		}
		created := domain.NewRecipePartResponse(part)
		res = &created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *recipeService) GetRecipeParts(ctx context.Context, recipeID uint) (res []domain.RecipePartResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entityPart, "list")
	defer func() { utils.EndOperation(span, s.logger, entityPart, "list", err) }()

	parts, err := s.recipeRepository.GetRecipeParts(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	res = make([]domain.RecipePartResponse, 0, len(parts))
	for _, p := range parts {
		res = append(res, domain.NewRecipePartResponse(p))
	}
	return res, nil
}

func (s *recipeService) PatchRecipePart(ctx context.Context, recipeID, productID uint, p domain.RecipePartPatch) (err error) {
	ctx, span := utils.StartOperation(ctx, entityPart, "patch")
	defer func() { utils.EndOperation(span, s.logger, entityPart, "patch", err) }()

	changes := p.Changes()
	if changes.Empty() {
		return domain.ErrNoFieldsProvided
	}

	return s.gateway.Transaction(ctx, func(ctx context.Context) error {
		found, err := s.gateway.ExistsWhere(ctx, entities.TableRecipeParts, recipePartKey(recipeID, productID))
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrRecipePartNotFound
		}

		if p.ProductID != nil && *p.ProductID != productID {
			if err := s.checkProduct(ctx, *p.ProductID); err != nil {
				return err
			}
			if err := s.checkPairFree(ctx, recipeID, *p.ProductID); err != nil {
				return err
			}
		}

		affected, err := s.recipeRepository.UpdateRecipePart(ctx, recipeID, productID, changes)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrDuplicateRecipePart
			}
			return err
		}
		if affected == 0 {
			return domain.ErrRecipePartNotUpdated
		}
		return nil
	})
}

func (s *recipeService) DeleteRecipePart(ctx context.Context, recipeID, productID uint) (err error) {
	ctx, span := utils.StartOperation(ctx, entityPart, "delete")
	defer func() { utils.EndOperation(span, s.logger, entityPart, "delete", err) }()

	return s.gateway.Transaction(ctx, func(ctx context.Context) error {
		found, err := s.gateway.ExistsWhere(ctx, entities.TableRecipeParts, recipePartKey(recipeID, productID))
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrRecipePartNotFound
		}

		affected, err := s.recipeRepository.DeleteRecipePart(ctx, recipeID, productID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrRecipePartNotFound
		}
		return nil
	})
}

func (s *recipeService) checkProduct(ctx context.Context, productID uint) error {
	found, err := s.gateway.Exists(ctx, entities.TableProducts, entities.ColProductID, productID)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrInvalidProduct
	}
	return nil
}

func (s *recipeService) checkPairFree(ctx context.Context, recipeID, productID uint) error {
	taken, err := s.gateway.ExistsWhere(ctx, entities.TableRecipeParts, recipePartKey(recipeID, productID))
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrDuplicateRecipePart
	}
	return nil
}

func recipePartKey(recipeID, productID uint) store.Where {
	return store.Where{entities.ColRecipeID: recipeID, entities.ColProductID: productID}
}
