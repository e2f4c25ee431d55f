package orderedproduct

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/internal/utils"
	"Groeneweide-Backend/pkg/store"
	"context"
	"errors"

	"go.uber.org/zap"
)

const entity = "ordered_product"

type (
	OrderedProductService interface {
		CreateOrderedProduct(ctx context.Context, req domain.CreateOrderedProductRequest) (*domain.OrderedProductResponse, error)
		GetOrderedProducts(ctx context.Context) ([]domain.OrderedProductResponse, error)
		GetOrderedProductsByOrder(ctx context.Context, orderID uint) ([]domain.OrderedProductResponse, error)
		PatchOrderedProduct(ctx context.Context, orderID, productID uint, p domain.OrderedProductPatch) error
		DeleteOrderedProduct(ctx context.Context, orderID, productID uint) error
	}

	orderedProductService struct {
		gateway                  store.Gateway
		orderedProductRepository OrderedProductRepository
		logger                   *zap.Logger
	}
)

func NewOrderedProductService(gateway store.Gateway, orderedProductRepository OrderedProductRepository, logger *zap.Logger) OrderedProductService {
	return &orderedProductService{
		gateway:                  gateway,
		orderedProductRepository: orderedProductRepository,
		logger:                   logger,
	}
}

func (s *orderedProductService) CreateOrderedProduct(ctx context.Context, req domain.CreateOrderedProductRequest) (res *domain.OrderedProductResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "create")
	defer func() { utils.EndOperation(span, s.logger, entity, "create", err) }()

	err = s.gateway.Transaction(ctx, func(ctx context.Context) error {
		if err := s.checkOrder(ctx, req.OrderID); err != nil {
			return err
		}
		if err := s.checkProduct(ctx, req.ProductID); err != nil {
			return err
		}
		if err := s.checkPairFree(ctx, req.OrderID, req.ProductID); err != nil {
			return err
		}

		line := &entities.OrderedProduct{OrderID: req.OrderID, ProductID: req.ProductID, Amount: req.Amount}
		if err := s.orderedProductRepository.CreateOrderedProduct(ctx, line); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrDuplicateOrderedProduct
			}
			return err
		}
		created := domain.NewOrderedProductResponse(line)
		res = &created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *orderedProductService) GetOrderedProducts(ctx context.Context) (res []domain.OrderedProductResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "list")
	defer func() { utils.EndOperation(span, s.logger, entity, "list", err) }()

	lines, err := s.orderedProductRepository.GetOrderedProducts(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(lines), nil
}

func (s *orderedProductService) GetOrderedProductsByOrder(ctx context.Context, orderID uint) (res []domain.OrderedProductResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "list_by_order")
	defer func() { utils.EndOperation(span, s.logger, entity, "list_by_order", err) }()

	lines, err := s.orderedProductRepository.GetOrderedProductsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toResponses(lines), nil
}

// PatchOrderedProduct re-validates only the references the patch changes and
// checks the target pair only when it differs from the current one.
func (s *orderedProductService) PatchOrderedProduct(ctx context.Context, orderID, productID uint, p domain.OrderedProductPatch) (err error) {
	ctx, span := utils.StartOperation(ctx, entity, "patch")
	defer func() { utils.EndOperation(span, s.logger, entity, "patch", err) }()

	changes := p.Changes()
	if changes.Empty() {
		return domain.ErrNoFieldsProvided
	}

	return s.gateway.Transaction(ctx, func(ctx context.Context) error {
		found, err := s.gateway.ExistsWhere(ctx, entities.TableOrderedProducts, lineKey(orderID, productID))
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrOrderedProductNotFound
		}

		targetOrder, targetProduct := p.Target(orderID, productID)
		if targetOrder != orderID {
			if err := s.checkOrder(ctx, targetOrder); err != nil {
				return err
			}
		}
		if targetProduct != productID {
			if err := s.checkProduct(ctx, targetProduct); err != nil {
				return err
			}
		}
		if targetOrder != orderID || targetProduct != productID {
			if err := s.checkPairFree(ctx, targetOrder, targetProduct); err != nil {
				return err
			}
		}

		affected, err := s.orderedProductRepository.UpdateOrderedProduct(ctx, orderID, productID, changes)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrDuplicateOrderedProduct
			}
			return err
		}
		if affected == 0 {
			return domain.ErrOrderedProductNotUpdated
		}
		return nil
	})
}

func (s *orderedProductService) DeleteOrderedProduct(ctx context.Context, orderID, productID uint) (err error) {
	ctx, span := utils.StartOperation(ctx, entity, "delete")
	defer func() { utils.EndOperation(span, s.logger, entity, "delete", err) }()

	return s.gateway.Transaction(ctx, func(ctx context.Context) error {
		key := lineKey(orderID, productID)
		found, err := s.gateway.ExistsWhere(ctx, entities.TableOrderedProducts, key)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrOrderedProductNotFound
		}

		if _, err := s.orderedProductRepository.DeleteOrderedProduct(ctx, orderID, productID); err != nil {
			return err
		}

		still, err := s.gateway.ExistsWhere(ctx, entities.TableOrderedProducts, key)
		if err != nil {
			return err
		}
		if still {
			return domain.ErrOrderedProductNotDeleted
		}
		return nil
	})
}

func (s *orderedProductService) checkOrder(ctx context.Context, orderID uint) error {
	found, err := s.gateway.Exists(ctx, entities.TableOrders, entities.ColOrderID, orderID)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrInvalidOrder
	}
	return nil
}

func (s *orderedProductService) checkProduct(ctx context.Context, productID uint) error {
	found, err := s.gateway.Exists(ctx, entities.TableProducts, entities.ColProductID, productID)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrInvalidProduct
	}
	return nil
}

func (s *orderedProductService) checkPairFree(ctx context.Context, orderID, productID uint) error {
	taken, err := s.gateway.ExistsWhere(ctx, entities.TableOrderedProducts, lineKey(orderID, productID))
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrDuplicateOrderedProduct
	}
	return nil
}

func lineKey(orderID, productID uint) store.Where {
	return store.Where{entities.ColOrderID: orderID, entities.ColProductID: productID}
}

func toResponses(lines []*entities.OrderedProduct) []domain.OrderedProductResponse {
	res := make([]domain.OrderedProductResponse, 0, len(lines))
	for _, l := range lines {
		res = append(res, domain.NewOrderedProductResponse(l))
	}
	return res
}
