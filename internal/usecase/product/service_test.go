package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/foodfast/foodfast-backend/internal/httperr"
	"github.com/foodfast/foodfast-backend/internal/models"
	"github.com/foodfast/foodfast-backend/internal/testmetrics"
)

// MockProductRepository is a mock implementation of product.Repository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Save(ctx context.Context, p *models.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateProduct(t *testing.T) {
	testmetrics.Watch(t)

	repo := &MockProductRepository{}
	svc := NewService(repo)

	p := &models.Product{Name: "Burger", Price: 5.99, Quantity: 100}
	repo.On("Save", mock.Anything, p).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Product).ID = 1
	}).Return(nil)

	created, err := svc.Create(context.Background(), p)

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Burger", created.Name)
	assert.Equal(t, 5.99, created.Price)
	repo.AssertNumberOfCalls(t, "Save", 1)
}

func TestGetAllProducts(t *testing.T) {
	testmetrics.Watch(t)

	repo := &MockProductRepository{}
	svc := NewService(repo)

	repo.On("FindAll", mock.Anything).Return([]models.Product{
		{ID: 1, Name: "Burger", Price: 5.99, Quantity: 100},
		{ID: 2, Name: "Pizza", Price: 8.99, Quantity: 50},
	}, nil)

	products, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestGetProductByIDMissIsEmptyNotError(t *testing.T) {
	testmetrics.Watch(t)

	repo := &MockProductRepository{}
	svc := NewService(repo)

	repo.On("FindByID", mock.Anything, uint(999)).Return(nil, nil)

	p, err := svc.GetByID(context.Background(), 999)

	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestUpdateProduct(t *testing.T) {
	testmetrics.Watch(t)

	repo := &MockProductRepository{}
	svc := NewService(repo)

	repo.On("ExistsByID", mock.Anything, uint(1)).Return(true, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == 1 && p.Name == "Updated Burger"
	})).Return(nil)

	updated, err := svc.Update(context.Background(), 1, &models.Product{
		Name:     "Updated Burger",
		Price:    6.99,
		Quantity: 120,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), updated.ID)
	assert.Equal(t, "Updated Burger", updated.Name)
}

func TestUpdateProductNotFound(t *testing.T) {
	testmetrics.Watch(t)

	repo := &MockProductRepository{}
	svc := NewService(repo)

	repo.On("ExistsByID", mock.Anything, uint(999)).Return(false, nil)

	_, err := svc.Update(context.Background(), 999, &models.Product{Name: "Ghost"})

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeProductNotFound))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDeleteProduct(t *testing.T) {
	testmetrics.Watch(t)

	repo := &MockProductRepository{}
	svc := NewService(repo)

	repo.On("DeleteByID", mock.Anything, uint(1)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 1))
	repo.AssertNumberOfCalls(t, "DeleteByID", 1)
}

func TestCreateProductWithZeroQuantity(t *testing.T) {
	testmetrics.Watch(t)

	repo := &MockProductRepository{}
	svc := NewService(repo)

	p := &models.Product{Name: "Out of Stock", Price: 10.00, Quantity: 0}
	repo.On("Save", mock.Anything, p).Return(nil)

	created, err := svc.Create(context.Background(), p)

	require.NoError(t, err)
	assert.Zero(t, created.Quantity)
}
