package hero_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/content/hero"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
)

// fakeRepository is an in-memory hero.Repository that counts reads so tests
// can observe cache behavior.
type fakeRepository struct {
	slides    map[string]*hero.Slide
	listCalls int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{slides: map[string]*hero.Slide{}}
}

func (repository *fakeRepository) ListSlides(_ context.Context, activeOnly bool) ([]*hero.Slide, error) {
	repository.listCalls++
	out := make([]*hero.Slide, 0)
	for _, s := range repository.slides {
		if activeOnly && !s.Active {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (repository *fakeRepository) GetSlide(_ context.Context, id string) (*hero.Slide, error) {
	s, ok := repository.slides[id]
	if !ok {
		return nil, apperr.NotFound("Hero slide")
	}
	return s, nil
}

func (repository *fakeRepository) CreateSlide(_ context.Context, s *hero.Slide) error {
	repository.slides[s.ID] = s
	return nil
}

func (repository *fakeRepository) UpdateSlide(_ context.Context, s *hero.Slide) error {
	if _, ok := repository.slides[s.ID]; !ok {
		return apperr.NotFound("Hero slide")
	}
	repository.slides[s.ID] = s
	return nil
}

func (repository *fakeRepository) DeleteSlide(_ context.Context, id string) error {
	if _, ok := repository.slides[id]; !ok {
		return apperr.NotFound("Hero slide")
	}
	delete(repository.slides, id)
	return nil
}

func newTestService() (*hero.Service, *fakeRepository) {
	repository := newFakeRepository()
	contentCache := cache.New(cache.NewMemoryBackend(), slog.Default())
	return hero.NewService(repository, contentCache, slog.Default()), repository
}

/*
TestService_Create_DefaultsToActive verifies a create body that never
mentions "active" stores a live slide, while an explicit "active": false
still stores a hidden one.
*/
func TestService_Create_DefaultsToActive(t *testing.T) {
	service, repository := newTestService()

	input := hero.NewSlide()
	require.NoError(t, json.Unmarshal([]byte(
		`{"title": "Welcome", "image_url": "https://cdn.aticomgroup.com/hero/welcome.jpg"}`,
	), &input))
	require.NoError(t, service.Create(context.Background(), &input))
	assert.True(t, repository.slides[input.ID].Active, "unflagged slide must go live")

	hidden := hero.NewSlide()
	require.NoError(t, json.Unmarshal([]byte(
		`{"title": "Hidden", "image_url": "https://cdn.aticomgroup.com/hero/hidden.jpg", "active": false}`,
	), &hidden))
	require.NoError(t, service.Create(context.Background(), &hidden))
	assert.False(t, repository.slides[hidden.ID].Active, "explicit false must win")
}

/*
TestService_Create_RejectsInvalidInput verifies validation failures never
reach the repository.
*/
func TestService_Create_RejectsInvalidInput(t *testing.T) {
	service, repository := newTestService()

	slide := hero.NewSlide()
	slide.Title = "No Image"
	err := service.Create(context.Background(), &slide)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Empty(t, repository.slides)
}

/*
TestService_ListPublic_CachedUntilWrite verifies the public carousel is
served from the cache between writes and refetched after one.
*/
func TestService_ListPublic_CachedUntilWrite(t *testing.T) {
	service, repository := newTestService()

	slide := hero.NewSlide()
	slide.Title = "First"
	slide.ImageURL = "https://cdn.aticomgroup.com/hero/first.jpg"
	require.NoError(t, service.Create(context.Background(), &slide))
	repository.listCalls = 0

	_, err := service.ListPublic(context.Background())
	require.NoError(t, err)
	_, err = service.ListPublic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repository.listCalls, "second read must hit the cache")

	slide.Title = "Renamed"
	require.NoError(t, service.Update(context.Background(), slide.ID, &slide))

	_, err = service.ListPublic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repository.listCalls, "write must flush the cached carousel")
}
