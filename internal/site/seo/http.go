package seo

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/middleware"
	requestutil "github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/request"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/respond"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public. Routes contain slashes, so they travel as a query parameter.
	router.Get("/", handler.resolvePublic)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Use(middleware.RequireRole(sec.RoleEditor))

	router.Get("/", handler.list)
	router.Put("/", handler.upsert)

	// Admin strict only
	router.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/", handler.delete)
}

func (handler *Handler) resolvePublic(writer http.ResponseWriter, request *http.Request) {
	entry, err := handler.service.ResolvePublic(request.Context(), request.URL.Query().Get("route"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entry)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}

func (handler *Handler) upsert(writer http.ResponseWriter, request *http.Request) {
	var input Entry
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.Upsert(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entry)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), request.URL.Query().Get("route")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
