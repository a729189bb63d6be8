package tile

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

// # Collections

// ListPublicCollections returns active collections, optionally scoped to one
// sector. Each sector scope caches independently.
func (service *Service) ListPublicCollections(ctx context.Context, sectorID string) ([]*Collection, error) {
	scope := sectorID
	if scope == "" {
		scope = "all"
	}
	key := cache.ListKey(CollectionCacheTag, scope, true)
	return cache.Through(ctx, service.cache, key, constants.ContentCacheTTL, func(ctx context.Context) ([]*Collection, error) {
		return service.repo.ListCollections(ctx, sectorID, true)
	})
}

func (service *Service) ListCollections(context context.Context, sectorID string) ([]*Collection, error) {
	return service.repo.ListCollections(context, sectorID, false)
}

func (service *Service) GetCollection(context context.Context, id string) (*Collection, error) {
	return service.repo.GetCollection(context, id)
}

func (service *Service) CreateCollection(context context.Context, c *Collection) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, c.Name).MaxLen(FieldName, c.Name, 200)
	if c.SectorID != nil {
		validator.UUID(FieldSectorID, *c.SectorID)
	}
	if c.ImageURL != nil {
		validator.URL(FieldImageURL, *c.ImageURL)
	}
	validator.Custom(FieldSortOrder, c.SortOrder < 0, "Must not be negative")
	if err := validator.Err(); err != nil {
		return err
	}

	c.ID = uuidv7.New()
	if err := service.repo.CreateCollection(context, c); err != nil {
		return err
	}

	service.cache.Invalidate(context, CollectionCacheTag)
	// Applications embed resolved collections, so their reads are stale too.
	service.cache.Invalidate(context, ApplicationCacheTag)
	service.logger.Info("tile_collection_created", slog.String("collection_id", c.ID))
	return nil
}

func (service *Service) UpdateCollection(context context.Context, id string, p *CollectionPatch) (*Collection, error) {
	validator := &validate.Validator{}
	if v, ok := p.Name.Value(); ok {
		validator.Required(FieldName, v).MaxLen(FieldName, v, 200)
	}
	validator.Custom(FieldName, p.Name.Null(), "Cannot be cleared")
	if v, ok := p.SectorID.Value(); ok {
		validator.UUID(FieldSectorID, v)
	}
	if v, ok := p.ImageURL.Value(); ok {
		validator.URL(FieldImageURL, v)
	}
	if v, ok := p.SortOrder.Value(); ok {
		validator.Custom(FieldSortOrder, v < 0, "Must not be negative")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	updated, err := service.repo.UpdateCollection(context, id, p)
	if err != nil {
		return nil, err
	}

	service.cache.Invalidate(context, CollectionCacheTag)
	service.cache.Invalidate(context, ApplicationCacheTag)
	service.logger.Info("tile_collection_updated", slog.String("collection_id", id))
	return updated, nil
}

func (service *Service) DeleteCollection(context context.Context, id string) error {
	if err := service.repo.DeleteCollection(context, id); err != nil {
		return err
	}

	service.cache.Invalidate(context, CollectionCacheTag)
	service.cache.Invalidate(context, ApplicationCacheTag)
	service.logger.Warn("tile_collection_deleted", slog.String("collection_id", id))
	return nil
}

// # Applications

// ListPublicApplications returns active applications with their suitable
// tiles resolved. Stale references resolve to nothing and are dropped;
// surviving tiles keep the order admins linked them in.
func (service *Service) ListPublicApplications(ctx context.Context) ([]*ResolvedApplication, error) {
	key := cache.ListKey(ApplicationCacheTag, "all", true)
	return cache.Through(ctx, service.cache, key, constants.ContentCacheTTL, func(ctx context.Context) ([]*ResolvedApplication, error) {
		applications, err := service.repo.ListApplications(ctx, true)
		if err != nil {
			return nil, err
		}

		resolved := make([]*ResolvedApplication, 0, len(applications))
		for _, app := range applications {
			r, err := service.resolveApplication(ctx, app)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, r)
		}
		return resolved, nil
	})
}

func (service *Service) resolveApplication(context context.Context, app *Application) (*ResolvedApplication, error) {
	found, err := service.repo.GetCollectionsByIDs(context, app.SuitableTileIDs, true)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*Collection, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}

	tiles := make([]*Collection, 0, len(app.SuitableTileIDs))
	for _, id := range app.SuitableTileIDs {
		if c, ok := byID[id]; ok {
			tiles = append(tiles, c)
		}
	}

	return &ResolvedApplication{Application: *app, SuitableTiles: tiles}, nil
}

func (service *Service) ListApplications(context context.Context) ([]*Application, error) {
	return service.repo.ListApplications(context, false)
}

func (service *Service) GetApplication(context context.Context, id string) (*Application, error) {
	return service.repo.GetApplication(context, id)
}

func (service *Service) validateApplication(a *Application) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, a.Name).MaxLen(FieldName, a.Name, 200)
	validator.MaxLen(FieldDescription, a.Description, 5000)
	if a.ImageURL != nil {
		validator.URL(FieldImageURL, *a.ImageURL)
	}
	for _, id := range a.SuitableTileIDs {
		validator.UUID(FieldSuitableIDs, id)
	}
	validator.Custom(FieldSortOrder, a.SortOrder < 0, "Must not be negative")
	return validator.Err()
}

func (service *Service) CreateApplication(context context.Context, a *Application) error {
	if err := service.validateApplication(a); err != nil {
		return err
	}

	a.ID = uuidv7.New()
	if err := service.repo.CreateApplication(context, a); err != nil {
		return err
	}

	service.cache.Invalidate(context, ApplicationCacheTag)
	service.logger.Info("tile_application_created", slog.String("application_id", a.ID))
	return nil
}

// UpdateApplication replaces the application record wholesale, links included.
func (service *Service) UpdateApplication(context context.Context, id string, a *Application) error {
	a.ID = id
	if err := service.validateApplication(a); err != nil {
		return err
	}

	if err := service.repo.UpdateApplication(context, a); err != nil {
		return err
	}

	service.cache.Invalidate(context, ApplicationCacheTag)
	service.logger.Info("tile_application_updated", slog.String("application_id", id))
	return nil
}

func (service *Service) DeleteApplication(context context.Context, id string) error {
	if err := service.repo.DeleteApplication(context, id); err != nil {
		return err
	}

	service.cache.Invalidate(context, ApplicationCacheTag)
	service.logger.Warn("tile_application_deleted", slog.String("application_id", id))
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
	service.logger.Info("tile_installation_created", slog.String("installation_id", i.ID))
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
	service.logger.Info("tile_installation_updated", slog.String("installation_id", id))
	return nil
}

func (service *Service) DeleteInstallation(context context.Context, id string) error {
	if err := service.repo.DeleteInstallation(context, id); err != nil {
		return err
	}

	service.cache.Invalidate(context, InstallationCacheTag)
	service.logger.Warn("tile_installation_deleted", slog.String("installation_id", id))
	return nil
}
