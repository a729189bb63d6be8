package news_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/content/news"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
)

// fakeRepository is an in-memory news.Repository that counts reads so tests
// can observe cache behavior.
type fakeRepository struct {
	articles    map[string]*news.Article
	latestCalls int
	failUpdate  error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{articles: map[string]*news.Article{}}
}

func (repository *fakeRepository) ListArticles(_ context.Context, publishedOnly bool, limit, offset int) ([]*news.Article, int, error) {
	var out []*news.Article
	for _, a := range repository.articles {
		if publishedOnly && !a.Published {
			continue
		}
		out = append(out, a)
	}
	return out, len(out), nil
}

func (repository *fakeRepository) LatestArticles(_ context.Context, limit int) ([]*news.Article, error) {
	repository.latestCalls++
	var out []*news.Article
	for _, a := range repository.articles {
		if a.Published && len(out) < limit {
			out = append(out, a)
		}
	}
	return out, nil
}

func (repository *fakeRepository) GetArticle(_ context.Context, id string) (*news.Article, error) {
	a, ok := repository.articles[id]
	if !ok {
		return nil, apperr.NotFound("News article")
	}
	return a, nil
}

func (repository *fakeRepository) GetArticleBySlug(_ context.Context, slug string, publishedOnly bool) (*news.Article, error) {
	for _, a := range repository.articles {
		if a.Slug == slug && (!publishedOnly || a.Published) {
			return a, nil
		}
	}
	return nil, apperr.NotFound("News article")
}

func (repository *fakeRepository) CreateArticle(_ context.Context, a *news.Article) error {
	repository.articles[a.ID] = a
	return nil
}

func (repository *fakeRepository) UpdateArticle(_ context.Context, id string, p *news.Patch) (*news.Article, error) {
	if repository.failUpdate != nil {
		return nil, repository.failUpdate
	}
	a, ok := repository.articles[id]
	if !ok {
		return nil, apperr.NotFound("News article")
	}
	a.Title = p.Title.Or(a.Title)
	a.Published = p.Published.Or(a.Published)
	return a, nil
}

func (repository *fakeRepository) DeleteArticle(_ context.Context, id string) error {
	if _, ok := repository.articles[id]; !ok {
		return apperr.NotFound("News article")
	}
	delete(repository.articles, id)
	return nil
}

// unmarshalPatch decodes a patch the way the HTTP layer would, so presence
// tracking behaves as it does in production.
func unmarshalPatch(body string, p *news.Patch) error {
	return json.Unmarshal([]byte(body), p)
}

func newTestService() (*news.Service, *fakeRepository) {
	repository := newFakeRepository()
	contentCache := cache.New(cache.NewMemoryBackend(), slog.Default())
	return news.NewService(repository, contentCache, slog.Default()), repository
}

/*
TestService_Create_GeneratesSlugAndID verifies that a created article gets a
UUID and a slug derived from its title when none was supplied.
*/
func TestService_Create_GeneratesSlugAndID(t *testing.T) {
	service, repository := newTestService()

	article := &news.Article{Title: "Aticom Opens New Plant", Body: "Body text."}
	require.NoError(t, service.Create(context.Background(), article))

	assert.NotEmpty(t, article.ID)
	assert.Equal(t, "aticom-opens-new-plant", article.Slug)
	assert.Contains(t, repository.articles, article.ID)
}

/*
TestService_Create_RejectsInvalidInput verifies validation failures never
reach the repository.
*/
func TestService_Create_RejectsInvalidInput(t *testing.T) {
	service, repository := newTestService()

	err := service.Create(context.Background(), &news.Article{Title: "", Body: ""})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Empty(t, repository.articles)
}

/*
TestService_Latest_CachesBetweenReads verifies the homepage strip is served
from the cache after the first read.
*/
func TestService_Latest_CachesBetweenReads(t *testing.T) {
	service, repository := newTestService()
	require.NoError(t, service.Create(context.Background(), &news.Article{
		Title: "Published One", Body: "b", Published: true,
	}))
	repository.latestCalls = 0

	_, err := service.Latest(context.Background())
	require.NoError(t, err)
	_, err = service.Latest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repository.latestCalls)
}

/*
TestService_Update_InvalidatesCachedReads verifies that a successful update
flushes cached news reads so the next read refetches.
*/
func TestService_Update_InvalidatesCachedReads(t *testing.T) {
	service, repository := newTestService()
	article := &news.Article{Title: "Old Title", Body: "b", Published: true}
	require.NoError(t, service.Create(context.Background(), article))

	_, err := service.Latest(context.Background())
	require.NoError(t, err)
	repository.latestCalls = 0

	var p news.Patch
	require.NoError(t, unmarshalPatch(`{"title": "New Title"}`, &p))
	_, err = service.Update(context.Background(), article.ID, &p)
	require.NoError(t, err)

	_, err = service.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repository.latestCalls, "update must flush the cached feed")
}

/*
TestService_Update_FailureKeepsCache verifies that a failed write leaves the
cache intact: only successful mutations invalidate.
*/
func TestService_Update_FailureKeepsCache(t *testing.T) {
	service, repository := newTestService()
	article := &news.Article{Title: "Stays Cached", Body: "b", Published: true}
	require.NoError(t, service.Create(context.Background(), article))

	_, err := service.Latest(context.Background())
	require.NoError(t, err)
	repository.latestCalls = 0
	repository.failUpdate = apperr.Internal(assert.AnError)

	var p news.Patch
	require.NoError(t, unmarshalPatch(`{"title": "Never Lands"}`, &p))
	_, err = service.Update(context.Background(), article.ID, &p)
	require.Error(t, err)

	_, err = service.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, repository.latestCalls, "failed update must not flush the cache")
}

/*
TestService_GetPublishedBySlug_HidesDrafts verifies draft articles read as
not found on the public detail endpoint.
*/
func TestService_GetPublishedBySlug_HidesDrafts(t *testing.T) {
	service, _ := newTestService()
	require.NoError(t, service.Create(context.Background(), &news.Article{
		Title: "Draft Piece", Body: "b", Published: false,
	}))

	_, err := service.GetPublishedBySlug(context.Background(), "draft-piece")
	assert.True(t, apperr.IsNotFound(err))
}
