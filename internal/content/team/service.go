package team

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

// ListPublic returns active team members in display order.
func (service *Service) ListPublic(ctx context.Context) ([]*Member, error) {
	key := cache.ListKey(CacheTag, "all", true)
	return cache.Through(ctx, service.cache, key, constants.ContentCacheTTL, func(ctx context.Context) ([]*Member, error) {
		return service.repo.ListMembers(ctx, true)
	})
}

func (service *Service) List(context context.Context) ([]*Member, error) {
	return service.repo.ListMembers(context, false)
}

func (service *Service) Get(context context.Context, id string) (*Member, error) {
	return service.repo.GetMember(context, id)
}

func (service *Service) validate(m *Member) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, m.Name).MaxLen(FieldName, m.Name, 200)
	validator.Required(FieldRole, m.Role).MaxLen(FieldRole, m.Role, 200)
	if m.PhotoURL != nil {
		validator.URL(FieldPhotoURL, *m.PhotoURL)
	}
	if m.Bio != nil {
		validator.MaxLen(FieldBio, *m.Bio, 5000)
	}
	validator.Custom(FieldSortOrder, m.SortOrder < 0, "Must not be negative")
	return validator.Err()
}

func (service *Service) Create(context context.Context, m *Member) error {
	if err := service.validate(m); err != nil {
		return err
	}

	m.ID = uuidv7.New()
	if err := service.repo.CreateMember(context, m); err != nil {
		return err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Info("team_member_created", slog.String("member_id", m.ID))
	return nil
}

// Update replaces the member record wholesale.
func (service *Service) Update(context context.Context, id string, m *Member) error {
	m.ID = id
	if err := service.validate(m); err != nil {
		return err
	}

	if err := service.repo.UpdateMember(context, m); err != nil {
		return err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Info("team_member_updated", slog.String("member_id", id))
	return nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.DeleteMember(context, id); err != nil {
		return err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Warn("team_member_deleted", slog.String("member_id", id))
	return nil
}
