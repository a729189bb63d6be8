package hero

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

// ListPublic returns active slides in carousel order.
func (service *Service) ListPublic(ctx context.Context) ([]*Slide, error) {
	key := cache.ListKey(CacheTag, "all", true)
	return cache.Through(ctx, service.cache, key, constants.ContentCacheTTL, func(ctx context.Context) ([]*Slide, error) {
		return service.repo.ListSlides(ctx, true)
	})
}

func (service *Service) List(context context.Context) ([]*Slide, error) {
	return service.repo.ListSlides(context, false)
}

func (service *Service) Get(context context.Context, id string) (*Slide, error) {
	return service.repo.GetSlide(context, id)
}

func (service *Service) validate(s *Slide) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, s.Title).MaxLen(FieldTitle, s.Title, 200)
	validator.Required(FieldImageURL, s.ImageURL).URL(FieldImageURL, s.ImageURL)
	if s.CtaURL != nil {
		validator.URL(FieldCtaURL, *s.CtaURL)
	}
	validator.Custom(FieldSortOrder, s.SortOrder < 0, "Must not be negative")
	return validator.Err()
}

func (service *Service) Create(context context.Context, s *Slide) error {
	if err := service.validate(s); err != nil {
		return err
	}

	s.ID = uuidv7.New()
	if err := service.repo.CreateSlide(context, s); err != nil {
		return err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Info("hero_slide_created", slog.String("slide_id", s.ID))
	return nil
}

// Update replaces the slide record wholesale.
func (service *Service) Update(context context.Context, id string, s *Slide) error {
	s.ID = id
	if err := service.validate(s); err != nil {
		return err
	}

	if err := service.repo.UpdateSlide(context, s); err != nil {
		return err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Info("hero_slide_updated", slog.String("slide_id", id))
	return nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.DeleteSlide(context, id); err != nil {
		return err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Warn("hero_slide_deleted", slog.String("slide_id", id))
	return nil
}
