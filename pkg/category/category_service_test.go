package category

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/internal/mocks"
	"Groeneweide-Backend/pkg/patch"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]*entities.Category)
	return categories, args.Error(1)
}

func (m *mockCategoryRepository) UpdateCategory(ctx context.Context, id uint, changes *patch.ChangeSet) (int64, error) {
	args := m.Called(ctx, id, changes)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepository) DeleteCategory(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepository) GetProductsByCategory(ctx context.Context, id uint) ([]*entities.Product, error) {
	args := m.Called(ctx, id)
	products, _ := args.Get(0).([]*entities.Product)
	return products, args.Error(1)
}

func newTestService() (CategoryService, *mocks.Gateway, *mockCategoryRepository) {
	gw := new(mocks.Gateway)
	repo := new(mockCategoryRepository)
	return NewCategoryService(gw, repo, zap.NewNop()), gw, repo
}

func TestCategoryLifecycle(t *testing.T) {
	svc, gw, repo := newTestService()
	ctx := context.Background()

	gw.On("ExistsByAttribute", mock.Anything, entities.TableCategories, entities.ColName, "Zuivel").Return(false, nil).Once()
	repo.On("CreateCategory", mock.Anything, mock.AnythingOfType("*entities.Category")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entities.Category).CategoryID = 1
		}).
		Return(nil).Once()

	created, err := svc.CreateCategory(ctx, domain.CategoryRequest{Name: "Zuivel"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.CategoryID)
	assert.Equal(t, "Zuivel", created.Name)

	gw.On("ExistsByAttribute", mock.Anything, entities.TableCategories, entities.ColName, "Zuivel").Return(true, nil).Once()

	_, err = svc.CreateCategory(ctx, domain.CategoryRequest{Name: "Zuivel"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.ErrorIs(t, err, domain.ErrCategoryExists)
	repo.AssertNumberOfCalls(t, "CreateCategory", 1)

	gw.On("Exists", mock.Anything, entities.TableCategories, entities.ColCategoryID, uint(1)).Return(true, nil).Once()
	repo.On("DeleteCategory", mock.Anything, uint(1)).Return(int64(1), nil).Once()
	require.NoError(t, svc.DeleteCategory(ctx, 1))

	gw.On("Exists", mock.Anything, entities.TableCategories, entities.ColCategoryID, uint(1)).Return(false, nil).Once()
	err = svc.DeleteCategory(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNumberOfCalls(t, "DeleteCategory", 1)

	gw.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCreateCategory_ConstraintRaceReportsAlreadyExists(t *testing.T) {
	svc, gw, repo := newTestService()

	gw.On("ExistsByAttribute", mock.Anything, entities.TableCategories, entities.ColName, "Groente").Return(false, nil)
	repo.On("CreateCategory", mock.Anything, mock.Anything).Return(fmt.Errorf("%w: insert category", domain.ErrAlreadyExists))

	_, err := svc.CreateCategory(context.Background(), domain.CategoryRequest{Name: "Groente"})
	assert.ErrorIs(t, err, domain.ErrCategoryExists)
}

func TestRenameCategory(t *testing.T) {
	t.Run("to own name succeeds", func(t *testing.T) {
		svc, gw, repo := newTestService()
		gw.On("ExistsByAttributeExcept", mock.Anything, entities.TableCategories, entities.ColName, "Zuivel", entities.ColCategoryID, uint(3)).
			Return(false, nil)
		repo.On("UpdateCategory", mock.Anything, uint(3), mock.MatchedBy(func(cs *patch.ChangeSet) bool {
			v, ok := cs.Value(entities.ColName)
			return ok && v == "Zuivel" && cs.Len() == 1
		})).Return(int64(1), nil)

		assert.NoError(t, svc.RenameCategory(context.Background(), 3, domain.CategoryRequest{Name: "Zuivel"}))
	})

	t.Run("to another row's name is rejected", func(t *testing.T) {
		svc, gw, repo := newTestService()
		gw.On("ExistsByAttributeExcept", mock.Anything, entities.TableCategories, entities.ColName, "Brood", entities.ColCategoryID, uint(3)).
			Return(true, nil)

		err := svc.RenameCategory(context.Background(), 3, domain.CategoryRequest{Name: "Brood"})
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
		repo.AssertNotCalled(t, "UpdateCategory", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, gw, repo := newTestService()
		gw.On("ExistsByAttributeExcept", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(false, nil)
		repo.On("UpdateCategory", mock.Anything, uint(99), mock.Anything).Return(int64(0), nil)

		err := svc.RenameCategory(context.Background(), 99, domain.CategoryRequest{Name: "Fruit"})
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})
}

func TestGetCategories(t *testing.T) {
	svc, _, repo := newTestService()
	repo.On("GetCategories", mock.Anything).Return([]*entities.Category{
		{CategoryID: 1, Name: "Zuivel"},
		{CategoryID: 2, Name: "Brood"},
	}, nil)

	res, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.CategoryResponse{
		{CategoryID: 1, Name: "Zuivel"},
		{CategoryID: 2, Name: "Brood"},
	}, res)
}

func TestGetProductsByCategory(t *testing.T) {
	svc, _, repo := newTestService()
	repo.On("GetProductsByCategory", mock.Anything, uint(1)).Return([]*entities.Product{
		{ProductID: 5, CategoryID: 1, Name: "Melk", Price: 129},
	}, nil)

	res, err := svc.GetProductsByCategory(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Melk", res[0].Name)
	assert.Equal(t, int64(129), res[0].Price)
}
