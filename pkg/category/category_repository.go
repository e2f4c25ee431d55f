package category

import (
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/pkg/patch"
	"Groeneweide-Backend/pkg/store"
	"context"

	"gorm.io/gorm"
)

type (
	CategoryRepository interface {
		CreateCategory(ctx context.Context, category *entities.Category) error
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		UpdateCategory(ctx context.Context, id uint, changes *patch.ChangeSet) (int64, error)
		DeleteCategory(ctx context.Context, id uint) (int64, error)
		GetProductsByCategory(ctx context.Context, id uint) ([]*entities.Product, error)
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return store.Wrap(store.Conn(ctx, r.db).Create(category).Error, "insert category")
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := store.Conn(ctx, r.db).Order("category_id asc").Find(&categories).Error; err != nil {
		return nil, store.Wrap(err, "select categories")
	}
	return categories, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, id uint, changes *patch.ChangeSet) (int64, error) {
	stmt, args, err := changes.UpdateStatement(entities.TableCategories, patch.Key{Column: entities.ColCategoryID, Value: id})
	if err != nil {
		return 0, err
	}
	res := store.Conn(ctx, r.db).Exec(stmt, args...)
	return res.RowsAffected, store.Wrap(res.Error, "update category")
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id uint) (int64, error) {
	res := store.Conn(ctx, r.db).Delete(&entities.Category{}, id)
	return res.RowsAffected, store.Wrap(res.Error, "delete category")
}

func (r *categoryRepository) GetProductsByCategory(ctx context.Context, id uint) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := store.Conn(ctx, r.db).Where("category_id = ?", id).Order("product_id asc").Find(&products).Error; err != nil {
		return nil, store.Wrap(err, "select products by category")
	}
	return products, nil
}
