// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

/*
Package media exposes the admin upload surface on top of object storage.

Editors upload an image here first, get back a permanent URL, and then
reference that URL from content forms. The package never touches the
database.
*/
package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/constants"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/storage"
	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/uuidv7"
)

// allowedTypes maps accepted upload content types to their stored extension.
var allowedTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"image/gif":       ".gif",
	"image/svg+xml":   ".svg",
	"application/pdf": ".pdf",
}

// Upload is the result of a stored file.
type Upload struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

type Service struct {
	store  storage.ObjectStore
	logger *slog.Logger
}

func NewService(store storage.ObjectStore, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Store validates and persists one uploaded file, returning its permanent URL.
//
// Object paths are date-partitioned so buckets stay browsable:
// uploads/2026/09/<uuid>.jpg.
func (service *Service) Store(context context.Context, reader io.Reader, size int64, contentType, filename string) (*Upload, error) {
	if size <= 0 {
		return nil, apperr.ValidationError("Uploaded file is empty")
	}
	if size > constants.MaxUploadBytes {
		return nil, apperr.ValidationError(fmt.Sprintf("File exceeds the %d MiB upload limit", constants.MaxUploadBytes>>20))
	}

	extension, ok := allowedTypes[normalizeContentType(contentType)]
	if !ok {
		return nil, apperr.ValidationError(fmt.Sprintf("Unsupported file type %q", contentType))
	}

	now := time.Now().UTC()
	objectPath := fmt.Sprintf("uploads/%04d/%02d/%s%s", now.Year(), now.Month(), uuidv7.New(), extension)

	stored, err := service.store.Upload(context, objectPath, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	service.logger.Info("media_uploaded",
		slog.String("path", stored),
		slog.String("filename", filename),
		slog.Int64("size", size),
	)
	return &Upload{Path: stored, URL: service.store.PublicURL(stored)}, nil
}

// SignedURL mints a short-lived GET URL for a stored object.
//
// A zero ttl falls back to the default; requests above the cap are clamped.
func (service *Service) SignedURL(context context.Context, objectPath string, ttl time.Duration) (string, error) {
	cleaned := strings.TrimLeft(path.Clean(objectPath), "/")
	if cleaned == "" || cleaned == "." || strings.HasPrefix(cleaned, "..") {
		return "", apperr.ValidationError("Invalid object path")
	}

	if ttl <= 0 {
		ttl = constants.SignedURLDefaultTTL
	}
	if ttl > constants.SignedURLMaxTTL {
		ttl = constants.SignedURLMaxTTL
	}

	return service.store.SignedURL(context, cleaned, ttl)
}

func normalizeContentType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
