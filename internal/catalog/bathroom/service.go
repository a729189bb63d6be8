package bathroom

import (
	"context"
	"log/slog"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/constants"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/validate"
	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	cache  *cache.Cache
	logger *slog.Logger
}

func NewService(repo Repository, contentCache *cache.Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  contentCache,
		logger: logger,
	}
}

// # Categories

func (service *Service) ListPublicCategories(ctx context.Context) ([]*Category, error) {
	key := cache.ListKey(CategoryCacheTag, "all", true)
	return cache.Through(ctx, service.cache, key, constants.ContentCacheTTL, func(ctx context.Context) ([]*Category, error) {
		return service.repo.ListCategories(ctx, true)
	})
}

func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	return service.repo.ListCategories(context, false)
}

func (service *Service) GetCategory(context context.Context, id string) (*Category, error) {
	return service.repo.GetCategory(context, id)
}

func (service *Service) validateCategory(c *Category) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, c.Name).MaxLen(FieldName, c.Name, 200)
	validator.MaxLen(FieldDescription, c.Description, 5000)
	validator.Custom(FieldSortOrder, c.SortOrder < 0, "Must not be negative")
	return validator.Err()
}

func (service *Service) CreateCategory(context context.Context, c *Category) error {
	if err := service.validateCategory(c); err != nil {
		return err
	}

	c.ID = uuidv7.New()
	if err := service.repo.CreateCategory(context, c); err != nil {
		return err
	}

	service.cache.Invalidate(context, CategoryCacheTag)
	service.logger.Info("bathroom_category_created", slog.String("category_id", c.ID))
	return nil
}

// UpdateCategory replaces the category record wholesale.
func (service *Service) UpdateCategory(context context.Context, id string, c *Category) error {
	c.ID = id
	if err := service.validateCategory(c); err != nil {
		return err
	}

	if err := service.repo.UpdateCategory(context, c); err != nil {
		return err
	}

	service.cache.Invalidate(context, CategoryCacheTag)
	service.logger.Info("bathroom_category_updated", slog.String("category_id", id))
	return nil
}

func (service *Service) DeleteCategory(context context.Context, id string) error {
	if err := service.repo.DeleteCategory(context, id); err != nil {
		return err
	}

	service.cache.Invalidate(context, CategoryCacheTag)
	// Product reads are scoped by category, so they are stale too.
	service.cache.Invalidate(context, ProductCacheTag)
	service.logger.Warn("bathroom_category_deleted", slog.String("category_id", id))
	return nil
}

// # Products

// ListPublicProducts returns active products, optionally scoped to one
// category. Each category scope caches independently.
func (service *Service) ListPublicProducts(ctx context.Context, categoryID string) ([]*Product, error) {
	scope := categoryID
	if scope == "" {
		scope = "all"
	}
	key := cache.ListKey(ProductCacheTag, scope, true)
	return cache.Through(ctx, service.cache, key, constants.ContentCacheTTL, func(ctx context.Context) ([]*Product, error) {
		return service.repo.ListProducts(ctx, categoryID, true)
	})
}

func (service *Service) ListProducts(context context.Context, categoryID string) ([]*Product, error) {
	return service.repo.ListProducts(context, categoryID, false)
}

func (service *Service) GetProduct(context context.Context, id string) (*Product, error) {
	return service.repo.GetProduct(context, id)
}

func (service *Service) CreateProduct(context context.Context, p *Product) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, p.Name).MaxLen(FieldName, p.Name, 200)
	validator.MaxLen(FieldDescription, p.Description, 5000)
	if p.CategoryID != nil {
		validator.UUID(FieldCategoryID, *p.CategoryID)
	}
	if p.ImageURL != nil {
		validator.URL(FieldImageURL, *p.ImageURL)
	}
	if p.Price != nil {
		validator.Custom(FieldPrice, *p.Price < 0, "Must not be negative")
	}
	validator.Custom(FieldSortOrder, p.SortOrder < 0, "Must not be negative")
	if err := validator.Err(); err != nil {
		return err
	}

	p.ID = uuidv7.New()
	if err := service.repo.CreateProduct(context, p); err != nil {
		return err
	}

	service.cache.Invalidate(context, ProductCacheTag)
	service.logger.Info("bathroom_product_created", slog.String("product_id", p.ID))
	return nil
}

func (service *Service) UpdateProduct(context context.Context, id string, p *ProductPatch) (*Product, error) {
	validator := &validate.Validator{}
	if v, ok := p.Name.Value(); ok {
		validator.Required(FieldName, v).MaxLen(FieldName, v, 200)
	}
	validator.Custom(FieldName, p.Name.Null(), "Cannot be cleared")
	if v, ok := p.Description.Value(); ok {
		validator.MaxLen(FieldDescription, v, 5000)
	}
	if v, ok := p.CategoryID.Value(); ok {
		validator.UUID(FieldCategoryID, v)
	}
	if v, ok := p.ImageURL.Value(); ok {
		validator.URL(FieldImageURL, v)
	}
	if v, ok := p.Price.Value(); ok {
		validator.Custom(FieldPrice, v < 0, "Must not be negative")
	}
	if v, ok := p.SortOrder.Value(); ok {
		validator.Custom(FieldSortOrder, v < 0, "Must not be negative")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	updated, err := service.repo.UpdateProduct(context, id, p)
	if err != nil {
		return nil, err
	}

	service.cache.Invalidate(context, ProductCacheTag)
	service.logger.Info("bathroom_product_updated", slog.String("product_id", id))
	return updated, nil
}

func (service *Service) DeleteProduct(context context.Context, id string) error {
	if err := service.repo.DeleteProduct(context, id); err != nil {
		return err
	}

	service.cache.Invalidate(context, ProductCacheTag)
	service.logger.Warn("bathroom_product_deleted", slog.String("product_id", id))
	return nil
}

// # Installations

func (service *Service) ListPublicInstallations(ctx context.Context) ([]*Installation, error) {
	key := cache.ListKey(InstallationCacheTag, "all", true)
	return cache.Through(ctx, service.cache, key, constants.ContentCacheTTL, func(ctx context.Context) ([]*Installation, error) {
		return service.repo.ListInstallations(ctx, true)
	})
}

func (service *Service) ListInstallations(context context.Context) ([]*Installation, error) {
	return service.repo.ListInstallations(context, false)
}

func (service *Service) GetInstallation(context context.Context, id string) (*Installation, error) {
	return service.repo.GetInstallation(context, id)
}

func (service *Service) validateInstallation(i *Installation) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, i.Title).MaxLen(FieldTitle, i.Title, 200)
	validator.Custom(FieldSteps, len(i.Steps) == 0, "At least one step is required")
	for _, step := range i.Steps {
		validator.Required(FieldSteps, step.Title)
	}
	validator.Custom(FieldSortOrder, i.SortOrder < 0, "Must not be negative")
	return validator.Err()
}

func (service *Service) CreateInstallation(context context.Context, i *Installation) error {
	if err := service.validateInstallation(i); err != nil {
		return err
	}

	i.ID = uuidv7.New()
	if err := service.repo.CreateInstallation(context, i); err != nil {
		return err
	}

	service.cache.Invalidate(context, InstallationCacheTag)
	service.logger.Info("bathroom_installation_created", slog.String("installation_id", i.ID))
	return nil
}

func (service *Service) UpdateInstallation(context context.Context, id string, i *Installation) error {
	i.ID = id
	if err := service.validateInstallation(i); err != nil {
		return err
	}

	if err := service.repo.UpdateInstallation(context, i); err != nil {
		return err
	}

	service.cache.Invalidate(context, InstallationCacheTag)
	service.logger.Info("bathroom_installation_updated", slog.String("installation_id", id))
	return nil
}

func (service *Service) DeleteInstallation(context context.Context, id string) error {
	if err := service.repo.DeleteInstallation(context, id); err != nil {
		return err
	}

	service.cache.Invalidate(context, InstallationCacheTag)
	service.logger.Warn("bathroom_installation_deleted", slog.String("installation_id", id))
	return nil
}
