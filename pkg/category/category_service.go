package category

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/internal/utils"
	"Groeneweide-Backend/pkg/patch"
	"Groeneweide-Backend/pkg/store"
	"context"
	"errors"

	"go.uber.org/zap"
)

const entity = "category"

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, req domain.CategoryRequest) (*domain.CategoryResponse, error)
		RenameCategory(ctx context.Context, id uint, req domain.CategoryRequest) error
		DeleteCategory(ctx context.Context, id uint) error
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		GetProductsByCategory(ctx context.Context, id uint) ([]domain.ProductResponse, error)
	}

	categoryService struct {
		gateway            store.Gateway
		categoryRepository CategoryRepository
		logger             *zap.Logger
	}
)

func NewCategoryService(gateway store.Gateway, categoryRepository CategoryRepository, logger *zap.Logger) CategoryService {
	return &categoryService{
		gateway:            gateway,
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CategoryRequest) (res *domain.CategoryResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "create")
	defer func() { utils.EndOperation(span, s.logger, entity, "create", err) }()

	err = s.gateway.Transaction(ctx, func(ctx context.Context) error {
		taken, err := s.gateway.ExistsByAttribute(ctx, entities.TableCategories, entities.ColName, req.Name)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrCategoryExists
		}

		category := &entities.Category{Name: req.Name}
		if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrCategoryExists
			}
			return err
		}
		res = &domain.CategoryResponse{CategoryID: category.CategoryID, Name: category.Name}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// RenameCategory keeps names unique across rows; renaming a category to its
// own current name is allowed.
func (s *categoryService) RenameCategory(ctx context.Context, id uint, req domain.CategoryRequest) (err error) {
	ctx, span := utils.StartOperation(ctx, entity, "rename")
	defer func() { utils.EndOperation(span, s.logger, entity, "rename", err) }()

	return s.gateway.Transaction(ctx, func(ctx context.Context) error {
		taken, err := s.gateway.ExistsByAttributeExcept(ctx, entities.TableCategories, entities.ColName, req.Name, entities.ColCategoryID, id)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrCategoryExists
		}

		affected, err := s.categoryRepository.UpdateCategory(ctx, id, patch.New().Set(entities.ColName, req.Name))
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrCategoryExists
			}
			return err
		}
		if affected == 0 {
			return domain.ErrCategoryNotFound
		}
		return nil
	})
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uint) (err error) {
	ctx, span := utils.StartOperation(ctx, entity, "delete")
	defer func() { utils.EndOperation(span, s.logger, entity, "delete", err) }()

	return s.gateway.Transaction(ctx, func(ctx context.Context) error {
		found, err := s.gateway.Exists(ctx, entities.TableCategories, entities.ColCategoryID, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrCategoryNotFound
		}

		affected, err := s.categoryRepository.DeleteCategory(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrCategoryNotFound
		}
		return nil
	})
}

func (s *categoryService) GetCategories(ctx context.Context) (res []domain.CategoryResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "list")
	defer func() { utils.EndOperation(span, s.logger, entity, "list", err) }()

	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	res = make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, domain.CategoryResponse{CategoryID: c.CategoryID, Name: c.Name})
	}
	return res, nil
}

func (s *categoryService) GetProductsByCategory(ctx context.Context, id uint) (res []domain.ProductResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "list_products")
	defer func() { utils.EndOperation(span, s.logger, entity, "list_products", err) }()

	products, err := s.categoryRepository.GetProductsByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	res = make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, domain.NewProductResponse(p))
	}
	return res, nil
}
