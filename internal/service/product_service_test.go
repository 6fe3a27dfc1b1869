package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shophub/internal/errors"
	"shophub/internal/model"
	"shophub/internal/repository"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, filter repository.ListFilter) ([]model.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, id string, product *model.Product) (*model.Product, error) {
	args := m.Called(ctx, id, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func storedProduct(title string, createdAt time.Time) model.Product {
	return model.Product{
		ID:               primitive.NewObjectID(),
		Title:            title,
		ShortDescription: "A short description",
		FullDescription:  "A product description with enough length.",
		Price:            9.99,
		Category:         "Electronics",
		Stock:            10,
		ImageURL:         "https://example.com/p.jpg",
		CreatedBy:        "admin",
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
	}
}

func TestProductService_ListProducts_NormalizesResults(t *testing.T) {
	mockRepo := new(MockProductRepository)
	now := time.Now().UTC()

	// Repository returns newest-first; the service must keep that order
	// and hand back canonical display views.
	mockRepo.On("List", mock.Anything, repository.ListFilter{Search: "cable", Category: "Electronics"}).
		Return([]model.Product{
			storedProduct("Newest Cable", now),
			storedProduct("Older Cable", now.Add(-time.Hour)),
		}, nil)

	svc := NewProductService(mockRepo)
	views, err := svc.ListProducts(context.Background(), "cable", "Electronics")
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "Newest Cable", views[0].Name)
	assert.Equal(t, "Older Cable", views[1].Name)
	assert.Equal(t, "A short description", views[0].Description)
	assert.Equal(t, "https://example.com/p.jpg", views[0].Image)
	// Alias fields are cleared in the normalized view.
	assert.Empty(t, views[0].Title)
	assert.Empty(t, views[0].ShortDescription)
	assert.Empty(t, views[0].ImageURL)

	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("FindByID", mock.Anything, "missing").Return(nil, errors.ErrProductNotFound)

	svc := NewProductService(mockRepo)
	view, err := svc.GetProduct(context.Background(), "missing")

	assert.Nil(t, view)
	assert.ErrorIs(t, err, errors.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_PersistsValidatedRecord(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)

	svc := NewProductService(mockRepo)
	input := validInput()
	input.Title = "  USB Cable  "

	product, err := svc.CreateProduct(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "USB Cable", product.Title)
	assert.Equal(t, 9.99, product.Price)
	assert.Equal(t, 100, product.Stock)

	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_InvalidInputNeverReachesStorage(t *testing.T) {
	mockRepo := new(MockProductRepository)

	svc := NewProductService(mockRepo)
	input := validInput()
	price := -5.0
	input.Price = &price
	input.Category = "Gadgets"

	product, err := svc.CreateProduct(context.Background(), input)
	assert.Nil(t, product)

	ve, ok := errors.AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Fields, 2)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_MergesPatch(t *testing.T) {
	mockRepo := new(MockProductRepository)
	existing := storedProduct("USB Cable", time.Now().UTC())
	id := existing.ID.Hex()

	mockRepo.On("FindByID", mock.Anything, id).Return(&existing, nil)
	mockRepo.On("Update", mock.Anything, id, mock.MatchedBy(func(p *model.Product) bool {
		return p.Price == 12.5 && p.Title == "USB Cable"
	})).Return(&existing, nil)

	svc := NewProductService(mockRepo)
	newPrice := 12.5
	_, err := svc.UpdateProduct(context.Background(), id, model.ProductPatch{Price: &newPrice})
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_NotFoundDoesNotCreate(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("FindByID", mock.Anything, "missing").Return(nil, errors.ErrProductNotFound)

	svc := NewProductService(mockRepo)
	newPrice := 12.5
	product, err := svc.UpdateProduct(context.Background(), "missing", model.ProductPatch{Price: &newPrice})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, errors.ErrProductNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_UpdateProduct_InvalidPatch(t *testing.T) {
	mockRepo := new(MockProductRepository)
	existing := storedProduct("USB Cable", time.Now().UTC())
	id := existing.ID.Hex()
	mockRepo.On("FindByID", mock.Anything, id).Return(&existing, nil)

	svc := NewProductService(mockRepo)
	badCategory := "Gadgets"
	_, err := svc.UpdateProduct(context.Background(), id, model.ProductPatch{Category: &badCategory})

	_, ok := errors.AsValidationError(err)
	assert.True(t, ok)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	deleted := storedProduct("USB Cable", time.Now().UTC())
	mockRepo.On("Delete", mock.Anything, deleted.ID.Hex()).Return(&deleted, nil)

	svc := NewProductService(mockRepo)
	product, err := svc.DeleteProduct(context.Background(), deleted.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, deleted.ID, product.ID)

	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("Delete", mock.Anything, "missing").Return(nil, errors.ErrProductNotFound)

	svc := NewProductService(mockRepo)
	product, err := svc.DeleteProduct(context.Background(), "missing")

	assert.Nil(t, product)
	assert.ErrorIs(t, err, errors.ErrProductNotFound)
}
