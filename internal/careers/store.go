package careers

import "context"

type Repository interface {
	// Positions
	ListPositions(context context.Context, openOnly bool) ([]*Position, error)
	GetPosition(context context.Context, id string) (*Position, error)
	CreatePosition(context context.Context, p *Position) error
	UpdatePosition(context context.Context, id string, p *PositionPatch) (*Position, error)
	DeletePosition(context context.Context, id string) error

	// Applications
	ListApplications(context context.Context, positionID string, limit, offset int) ([]*Application, int, error)
	CreateApplication(context context.Context, a *Application) error
}
