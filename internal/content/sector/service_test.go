package sector_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/content/sector"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
)

// fakeRepository is an in-memory sector.Repository that counts reads so
// tests can observe cache behavior.
type fakeRepository struct {
	sectors   map[string]*sector.Sector
	listCalls int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{sectors: map[string]*sector.Sector{}}
}

func (repository *fakeRepository) ListSectors(_ context.Context, activeOnly bool) ([]*sector.Sector, error) {
	repository.listCalls++
	out := make([]*sector.Sector, 0)
	for _, s := range repository.sectors {
		if activeOnly && !s.Active {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (repository *fakeRepository) GetSector(_ context.Context, id string) (*sector.Sector, error) {
	s, ok := repository.sectors[id]
	if !ok {
		return nil, apperr.NotFound("Business sector")
	}
	return s, nil
}

func (repository *fakeRepository) GetSectorBySlug(_ context.Context, slug string) (*sector.Sector, error) {
	for _, s := range repository.sectors {
		if s.Slug == slug {
			return s, nil
		}
	}
	return nil, apperr.NotFound("Business sector")
}

func (repository *fakeRepository) CreateSector(_ context.Context, s *sector.Sector) error {
	repository.sectors[s.ID] = s
	return nil
}

func (repository *fakeRepository) UpdateSector(_ context.Context, id string, p *sector.Patch) (*sector.Sector, error) {
	s, ok := repository.sectors[id]
	if !ok {
		return nil, apperr.NotFound("Business sector")
	}
	s.Title = p.Title.Or(s.Title)
	s.Active = p.Active.Or(s.Active)
	return s, nil
}

func (repository *fakeRepository) DeleteSector(_ context.Context, id string) error {
	if _, ok := repository.sectors[id]; !ok {
		return apperr.NotFound("Business sector")
	}
	delete(repository.sectors, id)
	return nil
}

func newTestService() (*sector.Service, *fakeRepository) {
	repository := newFakeRepository()
	contentCache := cache.New(cache.NewMemoryBackend(), slog.Default())
	return sector.NewService(repository, contentCache, slog.Default()), repository
}

/*
TestService_Create_DefaultsToActiveAndSlugs verifies a create body that
never mentions "active" stores a visible sector with a slug derived from the
title, while an explicit "active": false still stores a hidden one.
*/
func TestService_Create_DefaultsToActiveAndSlugs(t *testing.T) {
	service, repository := newTestService()

	input := sector.NewSector()
	require.NoError(t, json.Unmarshal([]byte(`{"title": "Ceramic Tiles"}`), &input))
	require.NoError(t, service.Create(context.Background(), &input))

	stored := repository.sectors[input.ID]
	assert.True(t, stored.Active, "unflagged sector must be visible")
	assert.Equal(t, "ceramic-tiles", stored.Slug)

	hidden := sector.NewSector()
	require.NoError(t, json.Unmarshal([]byte(`{"title": "Unannounced Venture", "active": false}`), &hidden))
	require.NoError(t, service.Create(context.Background(), &hidden))
	assert.False(t, repository.sectors[hidden.ID].Active, "explicit false must win")
}

/*
TestService_Update_PatchKeepsOmittedFields verifies patch semantics: omitted
fields keep their stored value.
*/
func TestService_Update_PatchKeepsOmittedFields(t *testing.T) {
	service, repository := newTestService()

	s := sector.NewSector()
	s.Title = "Real Estate"
	require.NoError(t, service.Create(context.Background(), &s))

	var p sector.Patch
	require.NoError(t, json.Unmarshal([]byte(`{"active": false}`), &p))
	updated, err := service.Update(context.Background(), s.ID, &p)
	require.NoError(t, err)

	assert.False(t, updated.Active)
	assert.Equal(t, "Real Estate", updated.Title, "omitted title must be unchanged")
	assert.Equal(t, "real-estate", repository.sectors[s.ID].Slug)
}

/*
TestService_GetBySlug_CachedUntilWrite verifies the public detail read is
served from the cache and refetched after a write.
*/
func TestService_GetBySlug_CachedUntilWrite(t *testing.T) {
	service, repository := newTestService()

	s := sector.NewSector()
	s.Title = "Bathroom Solutions"
	require.NoError(t, service.Create(context.Background(), &s))
	repository.listCalls = 0

	first, err := service.GetBySlug(context.Background(), "bathroom-solutions")
	require.NoError(t, err)
	assert.Equal(t, s.ID, first.ID)

	_, err = service.ListPublic(context.Background())
	require.NoError(t, err)
	_, err = service.ListPublic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repository.listCalls, "second list must hit the cache")

	var p sector.Patch
	require.NoError(t, json.Unmarshal([]byte(`{"title": "Bathrooms"}`), &p))
	_, err = service.Update(context.Background(), s.ID, &p)
	require.NoError(t, err)

	_, err = service.ListPublic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repository.listCalls, "write must flush cached sector reads")
}
