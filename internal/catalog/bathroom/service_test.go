package bathroom_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/catalog/bathroom"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
)

// fakeRepository is an in-memory bathroom.Repository that counts product
// list reads so tests can observe cache behavior.
type fakeRepository struct {
	categories       map[string]*bathroom.Category
	products         map[string]*bathroom.Product
	installations    map[string]*bathroom.Installation
	productListCalls int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		categories:    map[string]*bathroom.Category{},
		products:      map[string]*bathroom.Product{},
		installations: map[string]*bathroom.Installation{},
	}
}

func (repository *fakeRepository) ListCategories(_ context.Context, activeOnly bool) ([]*bathroom.Category, error) {
	out := make([]*bathroom.Category, 0)
	for _, c := range repository.categories {
		if activeOnly && !c.Active {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (repository *fakeRepository) GetCategory(_ context.Context, id string) (*bathroom.Category, error) {
	c, ok := repository.categories[id]
	if !ok {
		return nil, apperr.NotFound("Bathroom category")
	}
	return c, nil
}

func (repository *fakeRepository) CreateCategory(_ context.Context, c *bathroom.Category) error {
	repository.categories[c.ID] = c
	return nil
}

func (repository *fakeRepository) UpdateCategory(_ context.Context, c *bathroom.Category) error {
	if _, ok := repository.categories[c.ID]; !ok {
		return apperr.NotFound("Bathroom category")
	}
	repository.categories[c.ID] = c
	return nil
}

func (repository *fakeRepository) DeleteCategory(_ context.Context, id string) error {
	if _, ok := repository.categories[id]; !ok {
		return apperr.NotFound("Bathroom category")
	}
	delete(repository.categories, id)
	return nil
}

func (repository *fakeRepository) ListProducts(_ context.Context, categoryID string, activeOnly bool) ([]*bathroom.Product, error) {
	repository.productListCalls++
	out := make([]*bathroom.Product, 0)
	for _, p := range repository.products {
		if categoryID != "" && (p.CategoryID == nil || *p.CategoryID != categoryID) {
			continue
		}
		if activeOnly && !p.Active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (repository *fakeRepository) GetProduct(_ context.Context, id string) (*bathroom.Product, error) {
	p, ok := repository.products[id]
	if !ok {
		return nil, apperr.NotFound("Bathroom product")
	}
	return p, nil
}

func (repository *fakeRepository) CreateProduct(_ context.Context, p *bathroom.Product) error {
	repository.products[p.ID] = p
	return nil
}

func (repository *fakeRepository) UpdateProduct(_ context.Context, id string, p *bathroom.ProductPatch) (*bathroom.Product, error) {
	stored, ok := repository.products[id]
	if !ok {
		return nil, apperr.NotFound("Bathroom product")
	}
	stored.Name = p.Name.Or(stored.Name)
	stored.Active = p.Active.Or(stored.Active)
	return stored, nil
}

func (repository *fakeRepository) DeleteProduct(_ context.Context, id string) error {
	if _, ok := repository.products[id]; !ok {
		return apperr.NotFound("Bathroom product")
	}
	delete(repository.products, id)
	return nil
}

func (repository *fakeRepository) ListInstallations(_ context.Context, activeOnly bool) ([]*bathroom.Installation, error) {
	out := make([]*bathroom.Installation, 0)
	for _, i := range repository.installations {
		if activeOnly && !i.Active {
			continue
		}
		out = append(out, i)
	}
	return out, nil
}

func (repository *fakeRepository) GetInstallation(_ context.Context, id string) (*bathroom.Installation, error) {
	i, ok := repository.installations[id]
	if !ok {
		return nil, apperr.NotFound("Installation guide")
	}
	return i, nil
}

func (repository *fakeRepository) CreateInstallation(_ context.Context, i *bathroom.Installation) error {
	repository.installations[i.ID] = i
	return nil
}

func (repository *fakeRepository) UpdateInstallation(_ context.Context, i *bathroom.Installation) error {
	if _, ok := repository.installations[i.ID]; !ok {
		return apperr.NotFound("Installation guide")
	}
	repository.installations[i.ID] = i
	return nil
}

func (repository *fakeRepository) DeleteInstallation(_ context.Context, id string) error {
	if _, ok := repository.installations[id]; !ok {
		return apperr.NotFound("Installation guide")
	}
	delete(repository.installations, id)
	return nil
}

func newTestService() (*bathroom.Service, *fakeRepository) {
	repository := newFakeRepository()
	contentCache := cache.New(cache.NewMemoryBackend(), slog.Default())
	return bathroom.NewService(repository, contentCache, slog.Default()), repository
}

/*
TestService_CreateCategory_DefaultsToActive verifies a create body that
never mentions "active" stores a visible category.
*/
func TestService_CreateCategory_DefaultsToActive(t *testing.T) {
	service, repository := newTestService()

	input := bathroom.NewCategory()
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Sanitaryware"}`), &input))
	require.NoError(t, service.CreateCategory(context.Background(), &input))
	assert.True(t, repository.categories[input.ID].Active, "unflagged category must be visible")
}

/*
TestService_CreateProduct_DefaultsToActive verifies the same contract for
products, including the explicit "active": false override.
*/
func TestService_CreateProduct_DefaultsToActive(t *testing.T) {
	service, repository := newTestService()

	input := bathroom.NewProduct()
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Wall-Hung Basin"}`), &input))
	require.NoError(t, service.CreateProduct(context.Background(), &input))
	assert.True(t, repository.products[input.ID].Active, "unflagged product must be visible")

	hidden := bathroom.NewProduct()
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Discontinued Basin", "active": false}`), &hidden))
	require.NoError(t, service.CreateProduct(context.Background(), &hidden))
	assert.False(t, repository.products[hidden.ID].Active, "explicit false must win")
}

/*
TestService_CreateProduct_RejectsNegativePrice verifies validation failures
never reach the repository.
*/
func TestService_CreateProduct_RejectsNegativePrice(t *testing.T) {
	service, repository := newTestService()

	price := -10.0
	product := bathroom.NewProduct()
	product.Name = "Bad Price"
	product.Price = &price
	err := service.CreateProduct(context.Background(), &product)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Empty(t, repository.products)
}

/*
TestService_ListPublicProducts_CachesPerCategory verifies each category
scope caches independently: a read of one scope does not warm another.
*/
func TestService_ListPublicProducts_CachesPerCategory(t *testing.T) {
	service, repository := newTestService()

	categoryID := "0191b2c3-0000-7000-8000-000000000001"
	product := bathroom.NewProduct()
	product.Name = "Scoped Basin"
	product.CategoryID = &categoryID
	require.NoError(t, service.CreateProduct(context.Background(), &product))
	repository.productListCalls = 0

	_, err := service.ListPublicProducts(context.Background(), categoryID)
	require.NoError(t, err)
	_, err = service.ListPublicProducts(context.Background(), categoryID)
	require.NoError(t, err)
	assert.Equal(t, 1, repository.productListCalls, "same scope must hit the cache")

	_, err = service.ListPublicProducts(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, repository.productListCalls, "the all scope caches separately")
}

/*
TestService_CreateInstallation_RequiresSteps verifies a guide without steps
is rejected.
*/
func TestService_CreateInstallation_RequiresSteps(t *testing.T) {
	service, repository := newTestService()

	guide := bathroom.NewInstallation()
	guide.Title = "Empty Guide"
	err := service.CreateInstallation(context.Background(), &guide)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Empty(t, repository.installations)
}
