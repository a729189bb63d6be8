package sector

import "context"

type Repository interface {
	ListSectors(context context.Context, activeOnly bool) ([]*Sector, error)
	GetSector(context context.Context, id string) (*Sector, error)
	GetSectorBySlug(context context.Context, slug string) (*Sector, error)
	CreateSector(context context.Context, s *Sector) error
	UpdateSector(context context.Context, id string, p *Patch) (*Sector, error)
	DeleteSector(context context.Context, id string) error
}
