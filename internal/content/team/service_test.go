package team_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/content/team"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
)

// fakeRepository is an in-memory team.Repository that counts reads so tests
// can observe cache behavior.
type fakeRepository struct {
	members   map[string]*team.Member
	listCalls int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{members: map[string]*team.Member{}}
}

func (repository *fakeRepository) ListMembers(_ context.Context, activeOnly bool) ([]*team.Member, error) {
	repository.listCalls++
	out := make([]*team.Member, 0)
	for _, m := range repository.members {
		if activeOnly && !m.Active {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (repository *fakeRepository) GetMember(_ context.Context, id string) (*team.Member, error) {
	m, ok := repository.members[id]
	if !ok {
		return nil, apperr.NotFound("Team member")
	}
	return m, nil
}

func (repository *fakeRepository) CreateMember(_ context.Context, m *team.Member) error {
	repository.members[m.ID] = m
	return nil
}

func (repository *fakeRepository) UpdateMember(_ context.Context, m *team.Member) error {
	if _, ok := repository.members[m.ID]; !ok {
		return apperr.NotFound("Team member")
	}
	repository.members[m.ID] = m
	return nil
}

func (repository *fakeRepository) DeleteMember(_ context.Context, id string) error {
	if _, ok := repository.members[id]; !ok {
		return apperr.NotFound("Team member")
	}
	delete(repository.members, id)
	return nil
}

func newTestService() (*team.Service, *fakeRepository) {
	repository := newFakeRepository()
	contentCache := cache.New(cache.NewMemoryBackend(), slog.Default())
	return team.NewService(repository, contentCache, slog.Default()), repository
}

/*
TestService_Create_DefaultsToActive verifies a create body that never
mentions "active" stores a visible member, while an explicit "active": false
still stores a hidden one.
*/
func TestService_Create_DefaultsToActive(t *testing.T) {
	service, repository := newTestService()

	input := team.NewMember()
	require.NoError(t, json.Unmarshal([]byte(
		`{"name": "Kirubel Wolde", "role": "Managing Director"}`,
	), &input))
	require.NoError(t, service.Create(context.Background(), &input))
	assert.True(t, repository.members[input.ID].Active, "unflagged member must be visible")

	hidden := team.NewMember()
	require.NoError(t, json.Unmarshal([]byte(
		`{"name": "Former Advisor", "role": "Consultant", "active": false}`,
	), &hidden))
	require.NoError(t, service.Create(context.Background(), &hidden))
	assert.False(t, repository.members[hidden.ID].Active, "explicit false must win")
}

/*
TestService_Create_RejectsInvalidInput verifies validation failures never
reach the repository.
*/
func TestService_Create_RejectsInvalidInput(t *testing.T) {
	service, repository := newTestService()

	member := team.NewMember()
	member.Name = "No Role"
	err := service.Create(context.Background(), &member)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Empty(t, repository.members)
}

/*
TestService_ListPublic_HidesInactive verifies the public roster only shows
active members and is cached between reads.
*/
func TestService_ListPublic_HidesInactive(t *testing.T) {
	service, repository := newTestService()

	visible := team.NewMember()
	visible.Name = "On the Site"
	visible.Role = "Director"
	require.NoError(t, service.Create(context.Background(), &visible))

	hidden := team.NewMember()
	hidden.Name = "Off the Site"
	hidden.Role = "Advisor"
	hidden.Active = false
	require.NoError(t, service.Create(context.Background(), &hidden))
	repository.listCalls = 0

	members, err := service.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "On the Site", members[0].Name)

	_, err = service.ListPublic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repository.listCalls, "second read must hit the cache")
}
