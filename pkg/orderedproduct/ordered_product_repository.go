package orderedproduct

import (
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/pkg/patch"
	"Groeneweide-Backend/pkg/store"
	"context"

	"gorm.io/gorm"
)

type (
	OrderedProductRepository interface {
		CreateOrderedProduct(ctx context.Context, line *entities.OrderedProduct) error
		GetOrderedProducts(ctx context.Context) ([]*entities.OrderedProduct, error)
		GetOrderedProductsByOrder(ctx context.Context, orderID uint) ([]*entities.OrderedProduct, error)
		UpdateOrderedProduct(ctx context.Context, orderID, productID uint, changes *patch.ChangeSet) (int64, error)
		DeleteOrderedProduct(ctx context.Context, orderID, productID uint) (int64, error)
	}

	orderedProductRepository struct {
		db *gorm.DB
	}
)

func NewOrderedProductRepository(db *gorm.DB) OrderedProductRepository {
	return &orderedProductRepository{db: db}
}

func (r *orderedProductRepository) CreateOrderedProduct(ctx context.Context, line *entities.OrderedProduct) error {
	return store.Wrap(store.Conn(ctx, r.db).Create(line).Error, "insert ordered product")
}

func (r *orderedProductRepository) GetOrderedProducts(ctx context.Context) ([]*entities.OrderedProduct, error) {
	var lines []*entities.OrderedProduct
	if err := store.Conn(ctx, r.db).Order("order_id asc, product_id asc").Find(&lines).Error; err != nil {
		return nil, store.Wrap(err, "select ordered products")
	}
	return lines, nil
}

func (r *orderedProductRepository) GetOrderedProductsByOrder(ctx context.Context, orderID uint) ([]*entities.OrderedProduct, error) {
	var lines []*entities.OrderedProduct
	if err := store.Conn(ctx, r.db).Where("order_id = ?", orderID).Order("product_id asc").Find(&lines).Error; err != nil {
		return nil, store.Wrap(err, "select ordered products by order")
	}
	return lines, nil
}

func (r *orderedProductRepository) UpdateOrderedProduct(ctx context.Context, orderID, productID uint, changes *patch.ChangeSet) (int64, error) {
	stmt, args, err := changes.UpdateStatement(entities.TableOrderedProducts,
		patch.Key{Column: entities.ColOrderID, Value: orderID},
		patch.Key{Column: entities.ColProductID, Value: productID},
	)
	if err != nil {
		return 0, err
	}
	res := store.Conn(ctx, r.db).Exec(stmt, args...)
	return res.RowsAffected, store.Wrap(res.Error, "update ordered product")
}

func (r *orderedProductRepository) DeleteOrderedProduct(ctx context.Context, orderID, productID uint) (int64, error) {
	res := store.Conn(ctx, r.db).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Delete(&entities.OrderedProduct{})
	return res.RowsAffected, store.Wrap(res.Error, "delete ordered product")
}
