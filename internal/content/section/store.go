package section

import "context"

type Repository interface {
	ListSections(context context.Context) ([]*Section, error)
	GetSectionByKey(context context.Context, key string) (*Section, error)
	UpsertSection(context context.Context, s *Section) error
	DeleteSectionByKey(context context.Context, key string) error
}
