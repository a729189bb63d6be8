// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

package media_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/media"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/constants"
)

// fakeStore records uploads and signing requests in memory.
type fakeStore struct {
	uploadedPath string
	uploadedType string
	signedTTL    time.Duration
}

func (store *fakeStore) Upload(_ context.Context, objectPath string, reader io.Reader, size int64, contentType string) (string, error) {
	store.uploadedPath = objectPath
	store.uploadedType = contentType
	return objectPath, nil
}

func (store *fakeStore) PublicURL(objectPath string) string {
	return "https://cdn.aticomgroup.com/" + objectPath
}

func (store *fakeStore) SignedURL(_ context.Context, objectPath string, ttl time.Duration) (string, error) {
	store.signedTTL = ttl
	return "https://signed.example.com/" + objectPath, nil
}

func newTestService() (*media.Service, *fakeStore) {
	store := &fakeStore{}
	return media.NewService(store, slog.Default()), store
}

/*
TestStore_AcceptsImageAndReturnsURL verifies a valid upload lands under a
date-partitioned path with the right extension and resolves a public URL.
*/
func TestStore_AcceptsImageAndReturnsURL(t *testing.T) {
	service, store := newTestService()
	payload := bytes.NewBufferString("fake png bytes")

	upload, err := service.Store(context.Background(), payload, int64(payload.Len()), "image/png", "hero.png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(upload.Path, "uploads/"))
	assert.True(t, strings.HasSuffix(upload.Path, ".png"))
	assert.Equal(t, "https://cdn.aticomgroup.com/"+upload.Path, upload.URL)
	assert.Equal(t, upload.Path, store.uploadedPath)
}

/*
TestStore_RejectsUnsupportedType verifies executables and other unknown
content types never reach the bucket.
*/
func TestStore_RejectsUnsupportedType(t *testing.T) {
	service, store := newTestService()

	_, err := service.Store(context.Background(), strings.NewReader("MZ"), 2, "application/x-msdownload", "setup.exe")
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Empty(t, store.uploadedPath)
}

/*
TestStore_RejectsOversizedFile verifies the upload size cap.
*/
func TestStore_RejectsOversizedFile(t *testing.T) {
	service, store := newTestService()

	_, err := service.Store(context.Background(), strings.NewReader("x"), constants.MaxUploadBytes+1, "image/jpeg", "huge.jpg")
	require.Error(t, err)
	assert.Empty(t, store.uploadedPath)
}

/*
TestStore_NormalizesContentTypeParameters verifies charset parameters on the
content type do not defeat the allow list.
*/
func TestStore_NormalizesContentTypeParameters(t *testing.T) {
	service, _ := newTestService()

	upload, err := service.Store(context.Background(), strings.NewReader("<svg/>"), 6, "image/svg+xml; charset=utf-8", "logo.svg")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(upload.Path, ".svg"))
}

/*
TestSignedURL_ClampsTTL verifies the default and maximum signed URL
lifetimes.
*/
func TestSignedURL_ClampsTTL(t *testing.T) {
	service, store := newTestService()

	_, err := service.SignedURL(context.Background(), "uploads/2026/09/file.pdf", 0)
	require.NoError(t, err)
	assert.Equal(t, constants.SignedURLDefaultTTL, store.signedTTL)

	_, err = service.SignedURL(context.Background(), "uploads/2026/09/file.pdf", 100*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, constants.SignedURLMaxTTL, store.signedTTL)
}

/*
TestSignedURL_RejectsPathTraversal verifies object paths cannot escape the
bucket namespace.
*/
func TestSignedURL_RejectsPathTraversal(t *testing.T) {
	service, _ := newTestService()

	_, err := service.SignedURL(context.Background(), "../secrets/key.pem", time.Minute)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}
