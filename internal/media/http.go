// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

package media

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/apperr"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/constants"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/middleware"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/respond"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts the upload surface. Media has no public routes:
// stored files are served by the CDN, not by this API.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Use(middleware.RequireRole(sec.RoleEditor))

	router.Post("/upload", handler.upload)
	router.Get("/signed-url", handler.signedURL)
}

func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxUploadBytes)

	file, header, err := request.FormFile("file")
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Request must be multipart form data with a \"file\" field"))
		return
	}
	defer file.Close()

	upload, err := handler.service.Store(request.Context(), file, header.Size, header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, upload)
}

func (handler *Handler) signedURL(writer http.ResponseWriter, request *http.Request) {
	objectPath := request.URL.Query().Get("path")

	var ttl time.Duration
	if raw := request.URL.Query().Get("ttl"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			respond.Error(writer, request, apperr.ValidationError("ttl must be a duration such as 15m or 2h"))
			return
		}
		ttl = parsed
	}

	signed, err := handler.service.SignedURL(request.Context(), objectPath, ttl)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]string{"url": signed})
}
