package seo

import "context"

type Repository interface {
	ListEntries(context context.Context) ([]*Entry, error)
	GetEntryByRoute(context context.Context, route string) (*Entry, error)
	UpsertEntry(context context.Context, e *Entry) error
	DeleteEntryByRoute(context context.Context, route string) error
}
