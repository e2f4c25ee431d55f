package product

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/internal/utils"
	"Groeneweide-Backend/pkg/store"
	"context"
	"errors"

	"go.uber.org/zap"
)

const entity = "product"

type (
	ProductService interface {
		CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.ProductResponse, error)
		GetProduct(ctx context.Context, id uint) (*domain.ProductResponse, error)
		GetProducts(ctx context.Context) ([]domain.ProductResponse, error)
		PatchProduct(ctx context.Context, id uint, p domain.ProductPatch) error
		DeleteProduct(ctx context.Context, id uint) error
	}

	productService struct {
		gateway           store.Gateway
		productRepository ProductRepository
		logger            *zap.Logger
	}
)

func NewProductService(gateway store.Gateway, productRepository ProductRepository, logger *zap.Logger) ProductService {
	return &productService{
		gateway:           gateway,
		productRepository: productRepository,
		logger:            logger,
	}
}

func (s *productService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (res *domain.ProductResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "create")
	defer func() { utils.EndOperation(span, s.logger, entity, "create", err) }()

	err = s.gateway.Transaction(ctx, func(ctx context.Context) error {
		taken, err := s.gateway.ExistsByAttribute(ctx, entities.TableProducts, entities.ColName, req.Name)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrProductExists
		}

		product := &entities.Product{
			CategoryID:    req.CategoryID,
			AssetsURL:     req.AssetsURL,
			Name:          req.Name,
			Price:         req.Price,
			Size:          req.Size,
			AmountInStock: req.AmountInStock,
		}
		if err := s.productRepository.CreateProduct(ctx, product); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrProductExists
			}
			return err
		}
		created := domain.NewProductResponse(product)
		res = &created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *productService) GetProduct(ctx context.Context, id uint) (res *domain.ProductResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "get")
	defer func() { utils.EndOperation(span, s.logger, entity, "get", err) }()

	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	found := domain.NewProductResponse(product)
	return &found, nil
}

func (s *productService) GetProducts(ctx context.Context) (res []domain.ProductResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "list")
	defer func() { utils.EndOperation(span, s.logger, entity, "list", err) }()

	products, err := s.productRepository.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	res = make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, domain.NewProductResponse(p))
	}
	return res, nil
}

// PatchProduct checks name uniqueness only when the patch renames the product.
func (s *productService) PatchProduct(ctx context.Context, id uint, p domain.ProductPatch) (err error) {
	ctx, span := utils.StartOperation(ctx, entity, "patch")
	defer func() { utils.EndOperation(span, s.logger, entity, "patch", err) }()

	changes := p.Changes()
	if changes.Empty() {
		return domain.ErrNoFieldsProvided
	}

	return s.gateway.Transaction(ctx, func(ctx context.Context) error {
		found, err := s.gateway.Exists(ctx, entities.TableProducts, entities.ColProductID, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrProductNotFound
		}

		if p.Name != nil {
			taken, err := s.gateway.ExistsByAttributeExcept(ctx, entities.TableProducts, entities.ColName, *p.Name, entities.ColProductID, id)
			if err != nil {
				return err
			}
			if taken {
				return domain.ErrProductExists
			}
		}

		affected, err := s.productRepository.UpdateProduct(ctx, id, changes)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrProductExists
			}
			return err
		}
		if affected == 0 {
			return domain.ErrProductNotUpdated
		}
		return nil
	})
}

// DeleteProduct refuses to remove a product still referenced by an order
// line or a recipe part.
func (s *productService) DeleteProduct(ctx context.Context, id uint) (err error) {
	ctx, span := utils.StartOperation(ctx, entity, "delete")
	defer func() { utils.EndOperation(span, s.logger, entity, "delete", err) }()

	return s.gateway.Transaction(ctx, func(ctx context.Context) error {
		found, err := s.gateway.Exists(ctx, entities.TableProducts, entities.ColProductID, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrProductNotFound
		}

		for _, table := range []string{entities.TableOrderedProducts, entities.TableRecipeParts} {
			n, err := s.gateway.CountDependents(ctx, table, entities.ColProductID, id)
			if err != nil {
				return err
			}
			if n > 0 {
				return domain.ErrProductInUse
			}
		}

		affected, err := s.productRepository.DeleteProduct(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrProductNotFound
		}
		return nil
	})
}
