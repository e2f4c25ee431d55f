package order

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
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id uint) (*entities.Order, error)
		GetOrders(ctx context.Context) ([]*entities.Order, error)
		UpdateOrder(ctx context.Context, id uint, changes *patch.ChangeSet) (int64, error)
		DeleteOrder(ctx context.Context, id uint) (int64, error)
		DeleteOrderLines(ctx context.Context, orderID uint) (int64, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return store.Wrap(store.Conn(ctx, r.db).Omit("Lines").Create(order).Error, "insert order")
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uint) (*entities.Order, error) {
	var order entities.Order
	err := store.Conn(ctx, r.db).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("product_id asc") }).
		Where("order_id = ?", id).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, store.Wrap(err, "select order")
	}
	return &order, nil
}

func (r *orderRepository) GetOrders(ctx context.Context) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := store.Conn(ctx, r.db).Order("moment_created desc").Find(&orders).Error; err != nil {
		return nil, store.Wrap(err, "select orders")
	}
	return orders, nil
}

func (r *orderRepository) UpdateOrder(ctx context.Context, id uint, changes *patch.ChangeSet) (int64, error) {
	stmt, args, err := changes.UpdateStatement(entities.TableOrders, patch.Key{Column: entities.ColOrderID, Value: id})
	if err != nil {
		return 0, err
	}
	res := store.Conn(ctx, r.db).Exec(stmt, args...)
	return res.RowsAffected, store.Wrap(res.Error, "update order")
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id uint) (int64, error) {
	res := store.Conn(ctx, r.db).Delete(&entities.Order{}, id)
	return res.RowsAffected, store.Wrap(res.Error, "delete order")
}

func (r *orderRepository) DeleteOrderLines(ctx context.Context, orderID uint) (int64, error) {
	res := store.Conn(ctx, r.db).Where("order_id = ?", orderID).Delete(&entities.OrderedProduct{})
	return res.RowsAffected, store.Wrap(res.Error, "delete ordered products")
}
