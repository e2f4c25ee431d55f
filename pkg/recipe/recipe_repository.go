package recipe

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/pkg/patch"
	"Groeneweide-Backend/pkg/store"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, id uint, changes *patch.ChangeSet) (int64, error)
		DeleteRecipe(ctx context.Context, id uint) (int64, error)

		CreateRecipePart(ctx context.Context, part *entities.RecipePart) error
		GetRecipeParts(ctx context.Context, recipeID uint) ([]*entities.RecipePart, error)
		UpdateRecipePart(ctx context.Context, recipeID, productID uint, changes *patch.ChangeSet) (int64, error)
		DeleteRecipePart(ctx context.Context, recipeID, productID uint) (int64, error)
		DeleteRecipeParts(ctx context.Context, recipeID uint) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return store.Wrap(store.Conn(ctx, r.db).Omit("Parts").Create(recipe).Error, "insert recipe")
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := store.Conn(ctx, r.db).
		Preload("Parts", func(db *gorm.DB) *gorm.DB { return db.Order("product_id asc") }).
		Where("recipe_id = ?", id).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, store.Wrap(err, "select recipe")
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := store.Conn(ctx, r.db).Order("recipe_id asc").Find(&recipes).Error; err != nil {
		return nil, store.Wrap(err, "select recipes")
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, id uint, changes *patch.ChangeSet) (int64, error) {
	stmt, args, err := changes.UpdateStatement(entities.TableRecipes, patch.Key{Column: entities.ColRecipeID, Value: id})
	if err != nil {
		return 0, err
	}
	res := store.Conn(ctx, r.db).Exec(stmt, args...)
	return res.RowsAffected, store.Wrap(res.Error, "update recipe")
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) (int64, error) {
	res := store.Conn(ctx, r.db).Delete(&entities.Recipe{}, id)
	return res.RowsAffected, store.Wrap(res.Error, "delete recipe")
}

func (r *recipeRepository) CreateRecipePart(ctx context.Context, part *entities.RecipePart) error {
	return store.Wrap(store.Conn(ctx, r.db).Create(part).Error, "insert recipe part")
}

func (r *recipeRepository) GetRecipeParts(ctx context.Context, recipeID uint) ([]*entities.RecipePart, error) {
	var parts []*entities.RecipePart
	if err := store.Conn(ctx, r.db).Where("recipe_id = ?", recipeID).Order("product_id asc").Find(&parts).Error; err != nil {
		return nil, store.Wrap(err, "select recipe parts")
	}
	return parts, nil
}

func (r *recipeRepository) UpdateRecipePart(ctx context.Context, recipeID, productID uint, changes *patch.ChangeSet) (int64, error) {
	stmt, args, err := changes.UpdateStatement(entities.TableRecipeParts,
		patch.Key{Column: entities.ColRecipeID, Value: recipeID},
		patch.Key{Column: entities.ColProductID, Value: productID},
	)
	if err != nil {
		return 0, err
	}
	res := store.Conn(ctx, r.db).Exec(stmt, args...)
	return res.RowsAffected, store.Wrap(res.Error, "update recipe part")
}

func (r *recipeRepository) DeleteRecipePart(ctx context.Context, recipeID, productID uint) (int64, error) {
	res := store.Conn(ctx, r.db).
		Where("recipe_id = ? AND product_id = ?", recipeID, productID).
		Delete(&entities.RecipePart{})
	return res.RowsAffected, store.Wrap(res.Error, "delete recipe part")
}

func (r *recipeRepository) DeleteRecipeParts(ctx context.Context, recipeID uint) (int64, error) {
	res := store.Conn(ctx, r.db).Where("recipe_id = ?", recipeID).Delete(&entities.RecipePart{})
	return res.RowsAffected, store.Wrap(res.Error, "delete recipe parts")
}
