package seo_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/site/seo"
)

type fakeRepository struct {
	entries map[string]*seo.Entry
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{entries: map[string]*seo.Entry{}}
}

func (repository *fakeRepository) ListEntries(_ context.Context) ([]*seo.Entry, error) {
	var out []*seo.Entry
	for _, e := range repository.entries {
		out = append(out, e)
	}
	return out, nil
}

func (repository *fakeRepository) GetEntryByRoute(_ context.Context, route string) (*seo.Entry, error) {
	e, ok := repository.entries[route]
	if !ok {
		return nil, apperr.NotFound("SEO entry")
	}
	return e, nil
}

func (repository *fakeRepository) UpsertEntry(_ context.Context, e *seo.Entry) error {
	repository.entries[e.Route] = e
	return nil
}

func (repository *fakeRepository) DeleteEntryByRoute(_ context.Context, route string) error {
	if _, ok := repository.entries[route]; !ok {
		return apperr.NotFound("SEO entry")
	}
	delete(repository.entries, route)
	return nil
}

func newTestService() (*seo.Service, *fakeRepository) {
	repository := newFakeRepository()
	contentCache := cache.New(cache.NewMemoryBackend(), slog.Default())
	return seo.NewService(repository, contentCache, slog.Default()), repository
}

/*
TestResolvePublic_DefaultForUnknownRoute verifies that routes without an
entry resolve to the site-wide default instead of a 404.
*/
func TestResolvePublic_DefaultForUnknownRoute(t *testing.T) {
	service, _ := newTestService()

	entry, err := service.ResolvePublic(context.Background(), "/nowhere")
	require.NoError(t, err)
	assert.Equal(t, "/nowhere", entry.Route)
	assert.Equal(t, seo.Default.Title, entry.Title)
}

/*
TestResolvePublic_NormalizesRoutes verifies trailing slashes and the empty
route collapse onto their canonical entries.
*/
func TestResolvePublic_NormalizesRoutes(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Upsert(context.Background(), &seo.Entry{Route: "/about", Title: "About Aticom"})
	require.NoError(t, err)

	entry, err := service.ResolvePublic(context.Background(), "/about/")
	require.NoError(t, err)
	assert.Equal(t, "About Aticom", entry.Title)

	root, err := service.ResolvePublic(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "/", root.Route)
}

/*
TestResolvePublic_PartialEntryInheritsDefaults verifies a stored entry with
empty fields inherits them from the site-wide default.
*/
func TestResolvePublic_PartialEntryInheritsDefaults(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Upsert(context.Background(), &seo.Entry{Route: "/tiles", Title: "Tiles | Aticom"})
	require.NoError(t, err)

	entry, err := service.ResolvePublic(context.Background(), "/tiles")
	require.NoError(t, err)
	assert.Equal(t, "Tiles | Aticom", entry.Title)
	assert.Equal(t, seo.Default.Description, entry.Description, "empty description falls back")
}

/*
TestUpsert_RejectsRelativeRoute verifies routes must be absolute.
*/
func TestUpsert_RejectsRelativeRoute(t *testing.T) {
	service, repository := newTestService()

	_, err := service.Upsert(context.Background(), &seo.Entry{Route: "about", Title: "About"})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Empty(t, repository.entries)
}
