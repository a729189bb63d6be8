package settings

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

// PublicMap returns all settings flattened to a key→value map, which is
// what the public site consumes in one request.
func (service *Service) PublicMap(ctx context.Context) (map[string]string, error) {
	key := cache.ListKey(CacheTag, "all", true)
	return cache.Through(ctx, service.cache, key, constants.ContentCacheTTL, func(ctx context.Context) (map[string]string, error) {
		settings, err := service.repo.ListSettings(ctx)
		if err != nil {
			return nil, err
		}

		flat := make(map[string]string, len(settings))
		for _, s := range settings {
			flat[s.Key] = s.Value
		}
		return flat, nil
	})
}

func (service *Service) List(context context.Context) ([]*Setting, error) {
	return service.repo.ListSettings(context)
}

func (service *Service) Get(context context.Context, key string) (*Setting, error) {
	return service.repo.GetSettingByKey(context, key)
}

// Upsert writes one setting under its key.
func (service *Service) Upsert(context context.Context, key string, s *Setting) (*Setting, error) {
	s.Key = key

	validator := &validate.Validator{}
	validator.Required(FieldKey, s.Key).MaxLen(FieldKey, s.Key, 100)
	validator.MaxLen(FieldValue, s.Value, 5000)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if s.ID == "" {
		s.ID = uuidv7.New()
	}
	if err := service.repo.UpsertSetting(context, s); err != nil {
		return nil, err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Info("setting_upserted", slog.String("key", key))
	return s, nil
}

// UpsertMany writes a batch of settings. Validation covers the whole batch
// before any write, so a bad key rejects the batch wholesale.
func (service *Service) UpsertMany(context context.Context, values map[string]string) error {
	validator := &validate.Validator{}
	for key, value := range values {
		validator.Required(FieldKey, key).MaxLen(FieldKey, key, 100)
		validator.MaxLen(FieldValue, value, 5000)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	for key, value := range values {
		s := &Setting{ID: uuidv7.New(), Key: key, Value: value}
		if err := service.repo.UpsertSetting(context, s); err != nil {
			return err
		}
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Info("settings_bulk_upserted", slog.Int("count", len(values)))
	return nil
}

func (service *Service) Delete(context context.Context, key string) error {
	if err := service.repo.DeleteSettingByKey(context, key); err != nil {
		return err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Warn("setting_deleted", slog.String("key", key))
	return nil
}
