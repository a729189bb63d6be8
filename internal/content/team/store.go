package team

import "context"

type Repository interface {
	ListMembers(context context.Context, activeOnly bool) ([]*Member, error)
	GetMember(context context.Context, id string) (*Member, error)
	CreateMember(context context.Context, m *Member) error
	UpdateMember(context context.Context, m *Member) error
	DeleteMember(context context.Context, id string) error
}
