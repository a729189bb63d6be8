package section_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/content/section"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
)

type fakeRepository struct {
	sections map[string]*section.Section
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{sections: map[string]*section.Section{}}
}

func (repository *fakeRepository) ListSections(_ context.Context) ([]*section.Section, error) {
	var out []*section.Section
	for _, s := range repository.sections {
		out = append(out, s)
	}
	return out, nil
}

func (repository *fakeRepository) GetSectionByKey(_ context.Context, key string) (*section.Section, error) {
	s, ok := repository.sections[key]
	if !ok {
		return nil, apperr.NotFound("Section")
	}
	return s, nil
}

func (repository *fakeRepository) UpsertSection(_ context.Context, s *section.Section) error {
	repository.sections[s.Key] = s
	return nil
}

func (repository *fakeRepository) DeleteSectionByKey(_ context.Context, key string) error {
	if _, ok := repository.sections[key]; !ok {
		return apperr.NotFound("Section")
	}
	delete(repository.sections, key)
	return nil
}

func newTestService() (*section.Service, *fakeRepository) {
	repository := newFakeRepository()
	contentCache := cache.New(cache.NewMemoryBackend(), slog.Default())
	return section.NewService(repository, contentCache, slog.Default()), repository
}

/*
TestGetPublic_FallsBackToDefault verifies that a well-known key with no
stored row renders its static default instead of a 404.
*/
func TestGetPublic_FallsBackToDefault(t *testing.T) {
	service, _ := newTestService()

	s, err := service.GetPublic(context.Background(), section.KeyVision)
	require.NoError(t, err)
	assert.Equal(t, section.KeyVision, s.Key)
	assert.NotEmpty(t, s.Title)
	assert.NotEmpty(t, s.Body)
}

/*
TestGetPublic_UnknownKeyIs404 verifies keys with neither a row nor a default
read as not found.
*/
func TestGetPublic_UnknownKeyIs404(t *testing.T) {
	service, _ := newTestService()

	_, err := service.GetPublic(context.Background(), "no-such-section")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestGetPublic_StoredRowWinsOverDefault verifies an admin-written section
replaces the static default.
*/
func TestGetPublic_StoredRowWinsOverDefault(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Upsert(context.Background(), section.KeyVision, &section.Section{
		Title: "Custom Vision",
		Body:  "Written by an editor.",
	})
	require.NoError(t, err)

	s, err := service.GetPublic(context.Background(), section.KeyVision)
	require.NoError(t, err)
	assert.Equal(t, "Custom Vision", s.Title)
}

/*
TestGetPublic_CorruptPayloadIs422 verifies a stored payload that fails its
shape check surfaces as a deserialization error rather than rendering.
*/
func TestGetPublic_CorruptPayloadIs422(t *testing.T) {
	service, repository := newTestService()

	// Bypass Upsert's shape validation to simulate data corrupted out of band.
	repository.sections[section.KeyValues] = &section.Section{
		Key:     section.KeyValues,
		Title:   "Core Values",
		Payload: json.RawMessage(`{"not": "an array"}`),
	}

	_, err := service.GetPublic(context.Background(), section.KeyValues)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "DESERIALIZATION_ERROR", appError.Code)
}

/*
TestUpsert_RejectsBadPayloadShape verifies the shape contract is enforced on
write so admins get immediate feedback.
*/
func TestUpsert_RejectsBadPayloadShape(t *testing.T) {
	service, repository := newTestService()

	_, err := service.Upsert(context.Background(), section.KeyContact, &section.Section{
		Title:   "Contact",
		Payload: json.RawMessage(`["phone", "email"]`),
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Empty(t, repository.sections)
}

/*
TestUpsert_RefreshesPublicRead verifies a write flushes the cached public
read for that key.
*/
func TestUpsert_RefreshesPublicRead(t *testing.T) {
	service, _ := newTestService()

	first, err := service.GetPublic(context.Background(), section.KeyMission)
	require.NoError(t, err)

	_, err = service.Upsert(context.Background(), section.KeyMission, &section.Section{
		Title: "Updated Mission",
		Body:  "New body.",
	})
	require.NoError(t, err)

	second, err := service.GetPublic(context.Background(), section.KeyMission)
	require.NoError(t, err)
	assert.NotEqual(t, first.Title, second.Title)
	assert.Equal(t, "Updated Mission", second.Title)
}
