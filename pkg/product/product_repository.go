package product

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
	ProductRepository interface {
		CreateProduct(ctx context.Context, product *entities.Product) error
		GetProductByID(ctx context.Context, id uint) (*entities.Product, error)
		GetProducts(ctx context.Context) ([]*entities.Product, error)
		UpdateProduct(ctx context.Context, id uint, changes *patch.ChangeSet) (int64, error)
		DeleteProduct(ctx context.Context, id uint) (int64, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	return store.Wrap(store.Conn(ctx, r.db).Create(product).Error, "insert product")
}

func (r *productRepository) GetProductByID(ctx context.Context, id uint) (*entities.Product, error) {
	var product entities.Product
	if err := store.Conn(ctx, r.db).Where("product_id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, store.Wrap(err, "select product")
	}
	return &product, nil
}

func (r *productRepository) GetProducts(ctx context.Context) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := store.Conn(ctx, r.db).Order("product_id asc").Find(&products).Error; err != nil {
		return nil, store.Wrap(err, "select products")
	}
	return products, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, id uint, changes *patch.ChangeSet) (int64, error) {
	stmt, args, err := changes.UpdateStatement(entities.TableProducts, patch.Key{Column: entities.ColProductID, Value: id})
	if err != nil {
		return 0, err
	}
	res := store.Conn(ctx, r.db).Exec(stmt, args...)
	return res.RowsAffected, store.Wrap(res.Error, "update product")
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uint) (int64, error) {
	res := store.Conn(ctx, r.db).Delete(&entities.Product{}, id)
	return res.RowsAffected, store.Wrap(res.Error, "delete product")
}
