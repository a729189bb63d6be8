package news

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

// ListPublished returns published articles, newest first, paginated.
func (service *Service) ListPublished(context context.Context, limit, offset int) ([]*Article, int, error) {
	return service.repo.ListArticles(context, true, limit, offset)
}

// Latest returns the homepage news strip: the most recently published
// articles, capped at the feed limit. The read is cached per limit.
func (service *Service) Latest(ctx context.Context) ([]*Article, error) {
	key := cache.Key{
		Tag:     CacheTag,
		Scope:   "latest",
		Filters: cache.FilterSet{PublishedOnly: true, Limit: constants.LatestNewsLimit},
	}
	return cache.Through(ctx, service.cache, key, constants.ContentCacheTTL, func(ctx context.Context) ([]*Article, error) {
		return service.repo.LatestArticles(ctx, constants.LatestNewsLimit)
	})
}

// List returns all articles, drafts included, for the admin panel.
func (service *Service) List(context context.Context, limit, offset int) ([]*Article, int, error) {
	return service.repo.ListArticles(context, false, limit, offset)
}

func (service *Service) Get(context context.Context, id string) (*Article, error) {
	return service.repo.GetArticle(context, id)
}

// GetPublishedBySlug resolves an article for its public detail page.
// Drafts are invisible here and read as not found.
func (service *Service) GetPublishedBySlug(ctx context.Context, articleSlug string) (*Article, error) {
	key := cache.ListKey(CacheTag, articleSlug, true)
	return cache.Through(ctx, service.cache, key, constants.ContentCacheTTL, func(ctx context.Context) (*Article, error) {
		return service.repo.GetArticleBySlug(ctx, articleSlug, true)
	})
}

func (service *Service) Create(context context.Context, a *Article) error {
	if a.Slug == "" {
		a.Slug = slug.From(a.Title)
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, a.Title).MaxLen(FieldTitle, a.Title, 300)
	validator.Required(FieldSlug, a.Slug).Slug(FieldSlug, a.Slug)
	validator.Required(FieldBody, a.Body)
	if a.Excerpt != nil {
		validator.MaxLen(FieldExcerpt, *a.Excerpt, 500)
	}
	if a.CoverImage != nil {
		validator.URL(FieldCoverImage, *a.CoverImage)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	a.ID = uuidv7.New()
	if err := service.repo.CreateArticle(context, a); err != nil {
		return err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Info("news_article_created",
		slog.String("article_id", a.ID),
		slog.String("slug", a.Slug),
		slog.Bool("published", a.Published),
	)
	return nil
}

func (service *Service) Update(context context.Context, id string, p *Patch) (*Article, error) {
	validator := &validate.Validator{}
	if v, ok := p.Title.Value(); ok {
		validator.Required(FieldTitle, v).MaxLen(FieldTitle, v, 300)
	}
	validator.Custom(FieldTitle, p.Title.Null(), "Cannot be cleared")
	if v, ok := p.Slug.Value(); ok {
		validator.Slug(FieldSlug, v)
	}
	validator.Custom(FieldSlug, p.Slug.Null(), "Cannot be cleared")
	if v, ok := p.Body.Value(); ok {
		validator.Required(FieldBody, v)
	}
	validator.Custom(FieldBody, p.Body.Null(), "Cannot be cleared")
	if v, ok := p.Excerpt.Value(); ok {
		validator.MaxLen(FieldExcerpt, v, 500)
	}
	if v, ok := p.CoverImage.Value(); ok {
		validator.URL(FieldCoverImage, v)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	updated, err := service.repo.UpdateArticle(context, id, p)
	if err != nil {
		return nil, err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Info("news_article_updated", slog.String("article_id", id))
	return updated, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if err := service.repo.DeleteArticle(context, id); err != nil {
		return err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Warn("news_article_deleted", slog.String("article_id", id))
	return nil
}
