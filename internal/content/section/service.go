package section

import (
	"context"
	"log/slog"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
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

// GetPublic resolves a section for the public site.
//
// A missing row resolves to the key's static default when one exists;
// 404 is reserved for keys that have neither a row nor a default. A stored
// payload failing its shape check is a 422, never silently rendered.
func (service *Service) GetPublic(ctx context.Context, key string) (Section, error) {
	cacheKey := cache.ListKey(CacheTag, key, true)
	return cache.Through(ctx, service.cache, cacheKey, constants.ContentCacheTTL, func(ctx context.Context) (Section, error) {
		stored, err := service.repo.GetSectionByKey(ctx, key)
		if err != nil {
			if apperr.IsNotFound(err) {
				if d, ok := DefaultFor(key); ok {
					return d, nil
				}
				return Section{}, apperr.NotFound("Section")
			}
			return Section{}, err
		}

		if shapeErr := CheckPayloadShape(stored.Key, stored.Payload); shapeErr != nil {
			return Section{}, apperr.Deserialization("Section", shapeErr)
		}

		return *stored, nil
	})
}

// List returns every stored section for the admin panel. Defaults are not
// materialized here: the panel shows what admins actually wrote.
func (service *Service) List(context context.Context) ([]*Section, error) {
	return service.repo.ListSections(context)
}

func (service *Service) Get(context context.Context, key string) (*Section, error) {
	return service.repo.GetSectionByKey(context, key)
}

// Upsert writes a section under its key, creating the row on first write.
func (service *Service) Upsert(context context.Context, key string, s *Section) (*Section, error) {
	s.Key = key

	validator := &validate.Validator{}
	validator.Required(FieldKey, s.Key).Slug(FieldKey, s.Key)
	validator.Required(FieldTitle, s.Title).MaxLen(FieldTitle, s.Title, 300)
	validator.MaxLen(FieldBody, s.Body, 20000)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// The shape contract is enforced on the way in as well, so admins get
	// immediate feedback instead of a broken public page later.
	if err := CheckPayloadShape(s.Key, s.Payload); err != nil {
		return nil, apperr.ValidationError("Payload has an invalid shape", apperr.FieldError{
			Field:   FieldPayload,
			Message: err.Error(),
		})
	}

	if s.ID == "" {
		s.ID = uuidv7.New()
	}
	if err := service.repo.UpsertSection(context, s); err != nil {
		return nil, err
	}

	service.cache.InvalidateScope(context, CacheTag, key)
	service.logger.Info("section_upserted", slog.String("key", key))
	return s, nil
}

func (service *Service) Delete(context context.Context, key string) error {
	if err := service.repo.DeleteSectionByKey(context, key); err != nil {
		return err
	}

	service.cache.InvalidateScope(context, CacheTag, key)
	service.logger.Warn("section_deleted", slog.String("key", key))
	return nil
}
