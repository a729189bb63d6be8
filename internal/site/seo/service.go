package seo

import (
	"context"
	"log/slog"
	"strings"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/constants"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/validate"
	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/fallback"
	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	cache  *cache.Cache
	logger *slog.Logger
}

func NewService(repo Repository, contentCache *cache.Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  contentCache,
		logger: logger,
	}
}

// ResolvePublic returns the metadata for a route, falling back to the
// site-wide default when no entry exists. Never a 404: pages always render.
func (service *Service) ResolvePublic(ctx context.Context, route string) (Entry, error) {
	route = normalizeRoute(route)

	key := cache.ListKey(CacheTag, route, true)
	return cache.Through(ctx, service.cache, key, constants.ContentCacheTTL, func(ctx context.Context) (Entry, error) {
		stored, err := service.repo.GetEntryByRoute(ctx, route)
		if err != nil {
			if apperr.IsNotFound(err) {
				d := Default
				d.Route = route
				return d, nil
			}
			return Entry{}, err
		}
		return fallback.Resolve(stored, Default), nil
	})
}

func (service *Service) List(context context.Context) ([]*Entry, error) {
	return service.repo.ListEntries(context)
}

// Upsert writes the metadata for a route, creating the row on first write.
func (service *Service) Upsert(context context.Context, e *Entry) (*Entry, error) {
	e.Route = normalizeRoute(e.Route)

	validator := &validate.Validator{}
	validator.Required(FieldRoute, e.Route)
	validator.Custom(FieldRoute, !strings.HasPrefix(e.Route, "/"), "Must start with a slash")
	validator.Required(FieldTitle, e.Title).MaxLen(FieldTitle, e.Title, 300)
	validator.MaxLen(FieldDescription, e.Description, 1000)
	if e.OgImage != nil {
		validator.URL(FieldOgImage, *e.OgImage)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if e.ID == "" {
		e.ID = uuidv7.New()
	}
	if err := service.repo.UpsertEntry(context, e); err != nil {
		return nil, err
	}

	service.cache.InvalidateScope(context, CacheTag, e.Route)
	service.logger.Info("seo_entry_upserted", slog.String("route", e.Route))
	return e, nil
}

func (service *Service) Delete(context context.Context, route string) error {
	route = normalizeRoute(route)

	if err := service.repo.DeleteEntryByRoute(context, route); err != nil {
		return err
	}

	service.cache.InvalidateScope(context, CacheTag, route)
	service.logger.Warn("seo_entry_deleted", slog.String("route", route))
	return nil
}

// normalizeRoute strips trailing slashes so "/about" and "/about/" share
// one entry. The root route stays "/".
func normalizeRoute(route string) string {
	route = strings.TrimSpace(route)
	if route == "" || route == "/" {
		return "/"
	}
	return strings.TrimRight(route, "/")
}
