package tile_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/catalog/tile"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/patch"
)

type fakeRepository struct {
	collections   map[string]*tile.Collection
	applications  map[string]*tile.Application
	installations map[string]*tile.Installation
	listCalls     int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		collections:   map[string]*tile.Collection{},
		applications:  map[string]*tile.Application{},
		installations: map[string]*tile.Installation{},
	}
}

func (repository *fakeRepository) ListCollections(_ context.Context, sectorID string, activeOnly bool) ([]*tile.Collection, error) {
	repository.listCalls++
	var out []*tile.Collection
	for _, c := range repository.collections {
		if activeOnly && !c.Active {
			continue
		}
		if sectorID != "" && (c.SectorID == nil || *c.SectorID != sectorID) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (repository *fakeRepository) GetCollection(_ context.Context, id string) (*tile.Collection, error) {
	c, ok := repository.collections[id]
	if !ok {
		return nil, apperr.NotFound("Tile collection")
	}
	return c, nil
}

func (repository *fakeRepository) GetCollectionsByIDs(_ context.Context, ids []string, activeOnly bool) ([]*tile.Collection, error) {
	var out []*tile.Collection
	for _, id := range ids {
		if c, ok := repository.collections[id]; ok && (!activeOnly || c.Active) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (repository *fakeRepository) CreateCollection(_ context.Context, c *tile.Collection) error {
	repository.collections[c.ID] = c
	return nil
}

func (repository *fakeRepository) UpdateCollection(_ context.Context, id string, p *tile.CollectionPatch) (*tile.Collection, error) {
	c, ok := repository.collections[id]
	if !ok {
		return nil, apperr.NotFound("Tile collection")
	}
	c.Name = p.Name.Or(c.Name)
	c.Active = p.Active.Or(c.Active)
	return c, nil
}

func (repository *fakeRepository) DeleteCollection(_ context.Context, id string) error {
	delete(repository.collections, id)
	return nil
}

func (repository *fakeRepository) ListApplications(_ context.Context, activeOnly bool) ([]*tile.Application, error) {
	var out []*tile.Application
	for _, a := range repository.applications {
		if activeOnly && !a.Active {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (repository *fakeRepository) GetApplication(_ context.Context, id string) (*tile.Application, error) {
	a, ok := repository.applications[id]
	if !ok {
		return nil, apperr.NotFound("Tile application")
	}
	return a, nil
}

func (repository *fakeRepository) CreateApplication(_ context.Context, a *tile.Application) error {
	repository.applications[a.ID] = a
	return nil
}

func (repository *fakeRepository) UpdateApplication(_ context.Context, a *tile.Application) error {
	repository.applications[a.ID] = a
	return nil
}

func (repository *fakeRepository) DeleteApplication(_ context.Context, id string) error {
	delete(repository.applications, id)
	return nil
}

func (repository *fakeRepository) ListInstallations(_ context.Context, activeOnly bool) ([]*tile.Installation, error) {
	var out []*tile.Installation
	for _, i := range repository.installations {
		if activeOnly && !i.Active {
			continue
		}
		out = append(out, i)
	}
	return out, nil
}

func (repository *fakeRepository) GetInstallation(_ context.Context, id string) (*tile.Installation, error) {
	i, ok := repository.installations[id]
	if !ok {
		return nil, apperr.NotFound("Installation guide")
	}
	return i, nil
}

func (repository *fakeRepository) CreateInstallation(_ context.Context, i *tile.Installation) error {
	repository.installations[i.ID] = i
	return nil
}

func (repository *fakeRepository) UpdateInstallation(_ context.Context, i *tile.Installation) error {
	repository.installations[i.ID] = i
	return nil
}

func (repository *fakeRepository) DeleteInstallation(_ context.Context, id string) error {
	delete(repository.installations, id)
	return nil
}

func newTestService() (*tile.Service, *fakeRepository) {
	repository := newFakeRepository()
	contentCache := cache.New(cache.NewMemoryBackend(), slog.Default())
	return tile.NewService(repository, contentCache, slog.Default()), repository
}

func createCollection(t *testing.T, service *tile.Service, name string) *tile.Collection {
	t.Helper()
	c := &tile.Collection{Name: name, Active: true}
	require.NoError(t, service.CreateCollection(context.Background(), c))
	return c
}

/*
TestCreateCollection_DefaultsToActive verifies a create body that never
mentions "active" stores a visible collection, while an explicit
"active": false still stores a hidden one.
*/
func TestCreateCollection_DefaultsToActive(t *testing.T) {
	service, repository := newTestService()

	input := tile.NewCollection()
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Glazed"}`), &input))
	require.NoError(t, service.CreateCollection(context.Background(), &input))
	assert.True(t, repository.collections[input.ID].Active, "unflagged collection must be visible")

	hidden := tile.NewCollection()
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Archived Line", "active": false}`), &hidden))
	require.NoError(t, service.CreateCollection(context.Background(), &hidden))
	assert.False(t, repository.collections[hidden.ID].Active, "explicit false must win")
}

/*
TestListPublicApplications_DropsDanglingReferences verifies stale suitable
tile ids resolve to nothing while the surviving links keep their order.
*/
func TestListPublicApplications_DropsDanglingReferences(t *testing.T) {
	service, _ := newTestService()

	first := createCollection(t, service, "Granito")
	second := createCollection(t, service, "Marmo")

	application := &tile.Application{
		Name:            "Flooring",
		SuitableTileIDs: []string{second.ID, "0191b2c3-0000-7000-8000-00000000dead", first.ID},
		Active:          true,
	}
	require.NoError(t, service.CreateApplication(context.Background(), application))

	resolved, err := service.ListPublicApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, resolved, 1)

	tiles := resolved[0].SuitableTiles
	require.Len(t, tiles, 2, "the dangling id must be dropped silently")
	assert.Equal(t, second.ID, tiles[0].ID, "link order is the admin's order")
	assert.Equal(t, first.ID, tiles[1].ID)
}

/*
TestListPublicApplications_SkipsInactiveTiles verifies deactivated
collections disappear from resolved links without erroring.
*/
func TestListPublicApplications_SkipsInactiveTiles(t *testing.T) {
	service, _ := newTestService()

	kept := createCollection(t, service, "Kept")
	retired := createCollection(t, service, "Retired")

	application := &tile.Application{
		Name:            "Facade",
		SuitableTileIDs: []string{retired.ID, kept.ID},
		Active:          true,
	}
	require.NoError(t, service.CreateApplication(context.Background(), application))

	p := tile.CollectionPatch{Active: patch.Set(false)}
	_, err := service.UpdateCollection(context.Background(), retired.ID, &p)
	require.NoError(t, err)

	resolved, err := service.ListPublicApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	require.Len(t, resolved[0].SuitableTiles, 1)
	assert.Equal(t, kept.ID, resolved[0].SuitableTiles[0].ID)
}

/*
TestListPublicCollections_CachesPerSector verifies sector scopes cache
independently and a collection write flushes them.
*/
func TestListPublicCollections_CachesPerSector(t *testing.T) {
	service, repository := newTestService()
	createCollection(t, service, "Cached")
	repository.listCalls = 0

	_, err := service.ListPublicCollections(context.Background(), "")
	require.NoError(t, err)
	_, err = service.ListPublicCollections(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, repository.listCalls)

	createCollection(t, service, "Flusher")
	repository.listCalls = 0
	_, err = service.ListPublicCollections(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, repository.listCalls, "write must flush the cached list")
}

/*
TestCreateInstallation_RequiresSteps verifies an installation guide cannot be
created without at least one titled step.
*/
func TestCreateInstallation_RequiresSteps(t *testing.T) {
	service, _ := newTestService()

	err := service.CreateInstallation(context.Background(), &tile.Installation{Title: "Empty Guide"})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}
