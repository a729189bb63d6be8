// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

/*
Package storage provides the object storage boundary for media files.

Uploads are a separate round trip from entity writes: an admin uploads an
image first, receives its URL, and only then submits the content form
carrying that URL. Upload failures therefore surface with their own error
code and never roll back (or block) an entity write.

The production implementation targets any S3-compatible endpoint
(Cloudflare R2, MinIO, AWS S3) through the minio client.
*/
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/config"
)

// ObjectStore is the contract handlers and services depend on.
//
// It mirrors the three calls the admin panel needs: upload a file, resolve a
// permanent public URL, and mint a short-lived signed URL.
type ObjectStore interface {
	Upload(ctx context.Context, objectPath string, reader io.Reader, size int64, contentType string) (string, error)
	PublicURL(objectPath string) string
	SignedURL(ctx context.Context, objectPath string, ttl time.Duration) (string, error)
}

// S3Store implements [ObjectStore] on an S3-compatible bucket.
type S3Store struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// New connects to the configured S3-compatible endpoint and verifies the
// bucket exists.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*S3Store, error) {
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
		Region: cfg.S3Region,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to create client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.S3Bucket)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to check bucket %q: %w", cfg.S3Bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("storage: bucket %q does not exist", cfg.S3Bucket)
	}

	logger.Info("object storage connected",
		slog.String("endpoint", cfg.S3Endpoint),
		slog.String("bucket", cfg.S3Bucket),
	)

	return &S3Store{
		client:        client,
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimRight(cfg.S3PublicBaseURL, "/"),
	}, nil
}

// Upload streams the file into the bucket and returns the stored object path.
func (store *S3Store) Upload(ctx context.Context, objectPath string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := store.client.PutObject(ctx, store.bucket, objectPath, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", apperr.UploadFailed(fmt.Errorf("storage: put %q: %w", objectPath, err))
	}
	return objectPath, nil
}

// PublicURL resolves the permanent CDN URL for a stored object.
//
// No network round trip: the bucket fronts a public base URL.
func (store *S3Store) PublicURL(objectPath string) string {
	return store.publicBaseURL + "/" + strings.TrimLeft(objectPath, "/")
}

// SignedURL mints a presigned GET URL valid for ttl.
func (store *S3Store) SignedURL(ctx context.Context, objectPath string, ttl time.Duration) (string, error) {
	signed, err := store.client.PresignedGetObject(ctx, store.bucket, objectPath, ttl, url.Values{})
	if err != nil {
		return "", apperr.UploadFailed(fmt.Errorf("storage: presign %q: %w", objectPath, err))
	}
	return signed.String(), nil
}
