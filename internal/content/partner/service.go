package partner

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

// ListPublic returns active partners in display order.
func (service *Service) ListPublic(ctx context.Context) ([]*Partner, error) {
	key := cache.ListKey(CacheTag, "all", true)
	return cache.Through(ctx, service.cache, key, constants.ContentCacheTTL, func(ctx context.Context) ([]*Partner, error) {
		return service.repo.ListPartners(ctx, true)
	})
}

func (service *Service) List(context context.Context) ([]*Partner, error) {
	return service.repo.ListPartners(context, false)
}

func (service *Service) Get(context context.Context, id string) (*Partner, error) {
	return service.repo.GetPartner(context, id)
}

func (service *Service) validate(p *Partner) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, p.Name).MaxLen(FieldName, p.Name, 200)
	validator.Required(FieldLogoURL, p.LogoURL).URL(FieldLogoURL, p.LogoURL)
	if p.WebsiteURL != nil {
		validator.URL(FieldWebsiteURL, *p.WebsiteURL)
	}
	validator.Custom(FieldSortOrder, p.SortOrder < 0, "Must not be negative")
	return validator.Err()
}

func (service *Service) Create(context context.Context, p *Partner) error {
	if err := service.validate(p); err != nil {
		return err
	}

	p.ID = uuidv7.New()
	if err := service.repo.CreatePartner(context, p); err != nil {
		return err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Info("partner_created", slog.String("partner_id", p.ID))
	return nil
}

// Update replaces the partner record wholesale.
func (service *Service) Update(context context.Context, id string, p *Partner) error {
	p.ID = id
	if err := service.validate(p); err != nil {
		return err
	}

	if err := service.repo.UpdatePartner(context, p); err != nil {
		return err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Info("partner_updated", slog.String("partner_id", id))
	return nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.DeletePartner(context, id); err != nil {
		return err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Warn("partner_deleted", slog.String("partner_id", id))
	return nil
}
