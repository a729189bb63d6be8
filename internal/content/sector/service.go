package sector

import (
	"context"
	"log/slog"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/constants"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/validate"
	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/slug"
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

// ListPublic returns active sectors in display order. Reads are served from
// the content cache between writes.
func (service *Service) ListPublic(ctx context.Context) ([]*Sector, error) {
	key := cache.ListKey(CacheTag, "all", true)
	return cache.Through(ctx, service.cache, key, constants.ContentCacheTTL, func(ctx context.Context) ([]*Sector, error) {
		return service.repo.ListSectors(ctx, true)
	})
}

// List returns every sector, including inactive ones, for the admin panel.
func (service *Service) List(context context.Context) ([]*Sector, error) {
	return service.repo.ListSectors(context, false)
}

func (service *Service) Get(context context.Context, id string) (*Sector, error) {
	return service.repo.GetSector(context, id)
}

// GetBySlug resolves a sector for a public detail page.
func (service *Service) GetBySlug(ctx context.Context, sectorSlug string) (*Sector, error) {
	key := cache.ListKey(CacheTag, sectorSlug, true)
	return cache.Through(ctx, service.cache, key, constants.ContentCacheTTL, func(ctx context.Context) (*Sector, error) {
		return service.repo.GetSectorBySlug(ctx, sectorSlug)
	})
}

func (service *Service) Create(context context.Context, s *Sector) error {
	if s.Slug == "" {
		s.Slug = slug.From(s.Title)
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, s.Title).MaxLen(FieldTitle, s.Title, 200)
	validator.Required(FieldSlug, s.Slug).Slug(FieldSlug, s.Slug)
	validator.MaxLen(FieldDescription, s.Description, 5000)
	validator.Custom(FieldSortOrder, s.SortOrder < 0, "Must not be negative")
	if s.HeroImage != nil {
		validator.URL(FieldHeroImage, *s.HeroImage)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	s.ID = uuidv7.New()
	if err := service.repo.CreateSector(context, s); err != nil {
		return err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Info("sector_created", slog.String("sector_id", s.ID), slog.String("slug", s.Slug))
	return nil
}

func (service *Service) Update(context context.Context, id string, p *Patch) (*Sector, error) {
	validator := &validate.Validator{}
	if v, ok := p.Title.Value(); ok {
		validator.Required(FieldTitle, v).MaxLen(FieldTitle, v, 200)
	}
	validator.Custom(FieldTitle, p.Title.Null(), "Cannot be cleared")
	if v, ok := p.Slug.Value(); ok {
		validator.Slug(FieldSlug, v)
	}
	validator.Custom(FieldSlug, p.Slug.Null(), "Cannot be cleared")
	if v, ok := p.Description.Value(); ok {
		validator.MaxLen(FieldDescription, v, 5000)
	}
	if v, ok := p.HeroImage.Value(); ok {
		validator.URL(FieldHeroImage, v)
	}
	if v, ok := p.SortOrder.Value(); ok {
		validator.Custom(FieldSortOrder, v < 0, "Must not be negative")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	updated, err := service.repo.UpdateSector(context, id, p)
	if err != nil {
		return nil, err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Info("sector_updated", slog.String("sector_id", id))
	return updated, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.DeleteSector(context, id); err != nil {
		return err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Warn("sector_deleted", slog.String("sector_id", id))
	return nil
}
