package settings

import "context"

type Repository interface {
	ListSettings(context context.Context) ([]*Setting, error)
	GetSettingByKey(context context.Context, key string) (*Setting, error)
	UpsertSetting(context context.Context, s *Setting) error
	DeleteSettingByKey(context context.Context, key string) error
}
