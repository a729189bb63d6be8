package careers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/constants"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/validate"
	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/pointer"
	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/uuidv7"
)

// notifyTimeout bounds the background notification send.
const notifyTimeout = 15 * time.Second

// Notifier delivers the new-application email to the hiring inbox.
//
// Implemented by the platform SMTP mailer; nil disables notifications.
type Notifier interface {
	Send(ctx context.Context, to, subject, textBody string) error
}

type Service struct {
	repo   Repository
	cache  *cache.Cache
	notify Notifier
	inbox  string
	logger *slog.Logger
}

func NewService(repo Repository, contentCache *cache.Cache, notify Notifier, inbox string, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  contentCache,
		notify: notify,
		inbox:  inbox,
		logger: logger,
	}
}

// # Positions

// ListOpenPositions returns open positions for the public careers page.
func (service *Service) ListOpenPositions(ctx context.Context) ([]*Position, error) {
	key := cache.ListKey(CacheTag, "open", true)
	return cache.Through(ctx, service.cache, key, constants.ContentCacheTTL, func(ctx context.Context) ([]*Position, error) {
		return service.repo.ListPositions(ctx, true)
	})
}

func (service *Service) ListPositions(context context.Context) ([]*Position, error) {
	return service.repo.ListPositions(context, false)
}

func (service *Service) GetPosition(context context.Context, id string) (*Position, error) {
	return service.repo.GetPosition(context, id)
}

func (service *Service) CreatePosition(context context.Context, p *Position) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, p.Title).MaxLen(FieldTitle, p.Title, 200)
	validator.Required(FieldDepartment, p.Department).MaxLen(FieldDepartment, p.Department, 100)
	validator.Required(FieldLocation, p.Location).MaxLen(FieldLocation, p.Location, 100)
	validator.MaxLen(FieldDescription, p.Description, 20000)
	validator.Custom(FieldSortOrder, p.SortOrder < 0, "Must not be negative")
	if err := validator.Err(); err != nil {
		return err
	}

	p.ID = uuidv7.New()
	if err := service.repo.CreatePosition(context, p); err != nil {
		return err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Info("position_created", slog.String("position_id", p.ID))
	return nil
}

func (service *Service) UpdatePosition(context context.Context, id string, p *PositionPatch) (*Position, error) {
	validator := &validate.Validator{}
	if v, ok := p.Title.Value(); ok {
		validator.Required(FieldTitle, v).MaxLen(FieldTitle, v, 200)
	}
	validator.Custom(FieldTitle, p.Title.Null(), "Cannot be cleared")
	if v, ok := p.Department.Value(); ok {
		validator.Required(FieldDepartment, v).MaxLen(FieldDepartment, v, 100)
	}
	validator.Custom(FieldDepartment, p.Department.Null(), "Cannot be cleared")
	if v, ok := p.Location.Value(); ok {
		validator.Required(FieldLocation, v).MaxLen(FieldLocation, v, 100)
	}
	validator.Custom(FieldLocation, p.Location.Null(), "Cannot be cleared")
	if v, ok := p.Description.Value(); ok {
		validator.MaxLen(FieldDescription, v, 20000)
	}
	if v, ok := p.SortOrder.Value(); ok {
		validator.Custom(FieldSortOrder, v < 0, "Must not be negative")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	updated, err := service.repo.UpdatePosition(context, id, p)
	if err != nil {
		return nil, err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Info("position_updated", slog.String("position_id", id))
	return updated, nil
}

func (service *Service) DeletePosition(context context.Context, id string) error {
	if err := service.repo.DeletePosition(context, id); err != nil {
		return err
	}

	service.cache.Invalidate(context, CacheTag)
	service.logger.Warn("position_deleted", slog.String("position_id", id))
	return nil
}

// # Applications

// Apply records a candidate submission for an open position and notifies
// the hiring inbox in the background.
//
// The submission is committed before the email goes out: a mail outage
// must never lose a candidate.
func (service *Service) Apply(context context.Context, a *Application) error {
	validator := &validate.Validator{}
	validator.Required(FieldPositionID, a.PositionID).UUID(FieldPositionID, a.PositionID)
	validator.Required(FieldFullName, a.FullName).MaxLen(FieldFullName, a.FullName, 200)
	validator.Required(FieldEmail, a.Email).Email(FieldEmail, a.Email)
	if a.CoverLetter != nil {
		validator.MaxLen(FieldCoverLetter, *a.CoverLetter, 10000)
	}
	if a.ResumeURL != nil {
		validator.URL(FieldResumeURL, *a.ResumeURL)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	position, err := service.repo.GetPosition(context, a.PositionID)
	if err != nil {
		return err
	}
	if !position.Open {
		return apperr.ValidationError("This position is no longer accepting applications")
	}

	a.ID = uuidv7.New()
	if err := service.repo.CreateApplication(context, a); err != nil {
		return err
	}

	service.logger.Info("application_received",
		slog.String("application_id", a.ID),
		slog.String("position_id", a.PositionID),
	)

	service.notifyInbox(context, position, a)
	return nil
}

// notifyInbox sends the new-application email without blocking or failing
// the request. Failures are logged and dropped.
func (service *Service) notifyInbox(requestContext context.Context, position *Position, a *Application) {
	if service.notify == nil || service.inbox == "" {
		return
	}

	subject := fmt.Sprintf("New application: %s", position.Title)
	body := fmt.Sprintf(
		"Position: %s (%s, %s)\nCandidate: %s <%s>\nPhone: %s\nResume: %s\n\n%s\n",
		position.Title, position.Department, position.Location,
		a.FullName, a.Email,
		pointer.Fallback(a.Phone, "-"),
		pointer.Fallback(a.ResumeURL, "-"),
		pointer.Fallback(a.CoverLetter, ""),
	)

	// Detached from the request lifecycle so a slow SMTP server cannot
	// hold the response.
	backgroundContext := context.WithoutCancel(requestContext)
	go func() {
		sendContext, cancel := context.WithTimeout(backgroundContext, notifyTimeout)
		defer cancel()

		if err := service.notify.Send(sendContext, service.inbox, subject, body); err != nil {
			service.logger.Warn("application_notify_failed",
				slog.String("application_id", a.ID),
				slog.Any("error", err),
			)
		}
	}()
}

func (service *Service) ListApplications(context context.Context, positionID string, limit, offset int) ([]*Application, int, error) {
	return service.repo.ListApplications(context, positionID, limit, offset)
}
