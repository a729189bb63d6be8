package partner

import "context"

type Repository interface {
	ListPartners(context context.Context, activeOnly bool) ([]*Partner, error)
	GetPartner(context context.Context, id string) (*Partner, error)
	CreatePartner(context context.Context, p *Partner) error
	UpdatePartner(context context.Context, p *Partner) error
	DeletePartner(context context.Context, id string) error
}
