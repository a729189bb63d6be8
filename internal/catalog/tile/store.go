package tile

import "context"

type Repository interface {
	// Collections
	ListCollections(context context.Context, sectorID string, activeOnly bool) ([]*Collection, error)
	GetCollection(context context.Context, id string) (*Collection, error)
	GetCollectionsByIDs(context context.Context, ids []string, activeOnly bool) ([]*Collection, error)
	CreateCollection(context context.Context, c *Collection) error
	UpdateCollection(context context.Context, id string, p *CollectionPatch) (*Collection, error)
	DeleteCollection(context context.Context, id string) error

	// Applications
	ListApplications(context context.Context, activeOnly bool) ([]*Application, error)
	GetApplication(context context.Context, id string) (*Application, error)
	CreateApplication(context context.Context, a *Application) error
	UpdateApplication(context context.Context, a *Application) error
	DeleteApplication(context context.Context, id string) error

	// Installations
	ListInstallations(context context.Context, activeOnly bool) ([]*Installation, error)
	GetInstallation(context context.Context, id string) (*Installation, error)
	CreateInstallation(context context.Context, i *Installation) error
	UpdateInstallation(context context.Context, i *Installation) error
	DeleteInstallation(context context.Context, id string) error
}
