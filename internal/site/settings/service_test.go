package settings_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/site/settings"
)

type fakeRepository struct {
	values    map[string]*settings.Setting
	listCalls int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{values: map[string]*settings.Setting{}}
}

func (repository *fakeRepository) ListSettings(_ context.Context) ([]*settings.Setting, error) {
	repository.listCalls++
	var out []*settings.Setting
	for _, s := range repository.values {
		out = append(out, s)
	}
	return out, nil
}

func (repository *fakeRepository) GetSettingByKey(_ context.Context, key string) (*settings.Setting, error) {
	s, ok := repository.values[key]
	if !ok {
		return nil, apperr.NotFound("Setting")
	}
	return s, nil
}

func (repository *fakeRepository) UpsertSetting(_ context.Context, s *settings.Setting) error {
	repository.values[s.Key] = s
	return nil
}

func (repository *fakeRepository) DeleteSettingByKey(_ context.Context, key string) error {
	if _, ok := repository.values[key]; !ok {
		return apperr.NotFound("Setting")
	}
	delete(repository.values, key)
	return nil
}

func newTestService() (*settings.Service, *fakeRepository) {
	repository := newFakeRepository()
	contentCache := cache.New(cache.NewMemoryBackend(), slog.Default())
	return settings.NewService(repository, contentCache, slog.Default()), repository
}

/*
TestPublicMap_FlattensAndCaches verifies the public read is a key→value map
served from the cache between writes.
*/
func TestPublicMap_FlattensAndCaches(t *testing.T) {
	service, repository := newTestService()

	_, err := service.Upsert(context.Background(), "site.phone", &settings.Setting{Value: "+251 11 000 0000"})
	require.NoError(t, err)
	repository.listCalls = 0

	first, err := service.PublicMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "+251 11 000 0000", first["site.phone"])

	_, err = service.PublicMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repository.listCalls)
}

/*
TestUpsertMany_RejectsWholeBatch verifies one invalid key rejects the batch
before anything is written.
*/
func TestUpsertMany_RejectsWholeBatch(t *testing.T) {
	service, repository := newTestService()

	err := service.UpsertMany(context.Background(), map[string]string{
		"site.email": "info@aticomgroup.com",
		"":           "orphan value",
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Empty(t, repository.values, "no partial writes on a rejected batch")
}

/*
TestUpsert_RejectsOversizedValue verifies the per-value size cap.
*/
func TestUpsert_RejectsOversizedValue(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Upsert(context.Background(), "site.blob", &settings.Setting{
		Value: strings.Repeat("x", 5001),
	})
	require.Error(t, err)
}
