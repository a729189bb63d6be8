package careers_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/careers"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
)

type fakeRepository struct {
	positions     map[string]*careers.Position
	applications  []*careers.Application
	openListCalls int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{positions: map[string]*careers.Position{}}
}

func (repository *fakeRepository) ListPositions(_ context.Context, openOnly bool) ([]*careers.Position, error) {
	if openOnly {
		repository.openListCalls++
	}
	var out []*careers.Position
	for _, p := range repository.positions {
		if openOnly && !p.Open {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (repository *fakeRepository) GetPosition(_ context.Context, id string) (*careers.Position, error) {
	p, ok := repository.positions[id]
	if !ok {
		return nil, apperr.NotFound("Position")
	}
	return p, nil
}

func (repository *fakeRepository) CreatePosition(_ context.Context, p *careers.Position) error {
	repository.positions[p.ID] = p
	return nil
}

func (repository *fakeRepository) UpdatePosition(_ context.Context, id string, p *careers.PositionPatch) (*careers.Position, error) {
	existing, ok := repository.positions[id]
	if !ok {
		return nil, apperr.NotFound("Position")
	}
	existing.Title = p.Title.Or(existing.Title)
	existing.Open = p.Open.Or(existing.Open)
	return existing, nil
}

func (repository *fakeRepository) DeletePosition(_ context.Context, id string) error {
	delete(repository.positions, id)
	return nil
}

func (repository *fakeRepository) ListApplications(_ context.Context, positionID string, limit, offset int) ([]*careers.Application, int, error) {
	return repository.applications, len(repository.applications), nil
}

func (repository *fakeRepository) CreateApplication(_ context.Context, a *careers.Application) error {
	repository.applications = append(repository.applications, a)
	return nil
}

// fakeNotifier records sends on a channel so tests can wait for the
// background goroutine.
type fakeNotifier struct {
	sent chan string
	fail error
}

func (notifier *fakeNotifier) Send(_ context.Context, to, subject, textBody string) error {
	notifier.sent <- subject
	return notifier.fail
}

func newTestService(notifier careers.Notifier) (*careers.Service, *fakeRepository) {
	repository := newFakeRepository()
	contentCache := cache.New(cache.NewMemoryBackend(), slog.Default())
	service := careers.NewService(repository, contentCache, notifier, "careers@aticomgroup.com", slog.Default())
	return service, repository
}

func openPosition(t *testing.T, service *careers.Service, title string) *careers.Position {
	t.Helper()
	p := &careers.Position{Title: title, Department: "Engineering", Location: "Addis Ababa", Open: true}
	require.NoError(t, service.CreatePosition(context.Background(), p))
	return p
}

/*
TestCreatePosition_DefaultsToOpen verifies a create body that never
mentions "open" stores an opening that accepts candidates, while an
explicit "open": false still stores a closed one.
*/
func TestCreatePosition_DefaultsToOpen(t *testing.T) {
	service, repository := newTestService(nil)

	input := careers.NewPosition()
	require.NoError(t, json.Unmarshal([]byte(
		`{"title": "Sales Engineer", "department": "Sales", "location": "Addis Ababa"}`,
	), &input))
	require.NoError(t, service.CreatePosition(context.Background(), &input))
	assert.True(t, repository.positions[input.ID].Open, "unflagged opening must accept candidates")

	closed := careers.NewPosition()
	require.NoError(t, json.Unmarshal([]byte(
		`{"title": "Drafted Role", "department": "Finance", "location": "Addis Ababa", "open": false}`,
	), &closed))
	require.NoError(t, service.CreatePosition(context.Background(), &closed))
	assert.False(t, repository.positions[closed.ID].Open, "explicit false must win")
}

/*
TestApply_NotifiesInbox verifies a submitted application is stored and the
hiring inbox gets a notification naming the position.
*/
func TestApply_NotifiesInbox(t *testing.T) {
	notifier := &fakeNotifier{sent: make(chan string, 1)}
	service, repository := newTestService(notifier)
	position := openPosition(t, service, "Backend Engineer")

	err := service.Apply(context.Background(), &careers.Application{
		PositionID: position.ID,
		FullName:   "Abel Tesfaye",
		Email:      "abel@example.com",
	})
	require.NoError(t, err)
	require.Len(t, repository.applications, 1)

	select {
	case subject := <-notifier.sent:
		assert.Contains(t, subject, "Backend Engineer")
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never sent")
	}
}

/*
TestApply_ClosedPositionRejected verifies candidates cannot apply to a
position that stopped accepting applications.
*/
func TestApply_ClosedPositionRejected(t *testing.T) {
	notifier := &fakeNotifier{sent: make(chan string, 1)}
	service, repository := newTestService(notifier)
	position := openPosition(t, service, "Closed Role")
	position.Open = false

	err := service.Apply(context.Background(), &careers.Application{
		PositionID: position.ID,
		FullName:   "Late Candidate",
		Email:      "late@example.com",
	})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Empty(t, repository.applications)
}

/*
TestApply_MailFailureDoesNotLoseCandidate verifies a broken mailer never
fails the submission: the application is committed first.
*/
func TestApply_MailFailureDoesNotLoseCandidate(t *testing.T) {
	notifier := &fakeNotifier{sent: make(chan string, 1), fail: assert.AnError}
	service, repository := newTestService(notifier)
	position := openPosition(t, service, "Resilient Role")

	err := service.Apply(context.Background(), &careers.Application{
		PositionID: position.ID,
		FullName:   "Kept Candidate",
		Email:      "kept@example.com",
	})
	require.NoError(t, err)
	assert.Len(t, repository.applications, 1)

	// Drain so the goroutine finishes before the test does.
	select {
	case <-notifier.sent:
	case <-time.After(2 * time.Second):
		t.Fatal("notification attempt never happened")
	}
}

/*
TestApply_NoNotifierConfigured verifies submissions work with notifications
disabled entirely.
*/
func TestApply_NoNotifierConfigured(t *testing.T) {
	service, repository := newTestService(nil)
	position := openPosition(t, service, "Quiet Role")

	err := service.Apply(context.Background(), &careers.Application{
		PositionID: position.ID,
		FullName:   "Quiet Candidate",
		Email:      "quiet@example.com",
	})
	require.NoError(t, err)
	assert.Len(t, repository.applications, 1)
}

/*
TestListOpenPositions_CachedUntilWrite verifies the public list is cached
and a position write flushes it.
*/
func TestListOpenPositions_CachedUntilWrite(t *testing.T) {
	service, repository := newTestService(nil)
	openPosition(t, service, "First Role")
	repository.openListCalls = 0

	_, err := service.ListOpenPositions(context.Background())
	require.NoError(t, err)
	_, err = service.ListOpenPositions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repository.openListCalls)

	openPosition(t, service, "Second Role")
	repository.openListCalls = 0
	_, err = service.ListOpenPositions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repository.openListCalls, "write must flush the cached list")
}
