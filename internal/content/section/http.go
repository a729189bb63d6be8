package section

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
	// Public
	router.Get("/{key}", handler.getPublic)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Use(middleware.RequireRole(sec.RoleEditor))

	router.Get("/", handler.list)
	router.Get("/{key}", handler.get)
	router.Put("/{key}", handler.upsert)

	// Admin strict only
	router.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{key}", handler.delete)
}

func (handler *Handler) getPublic(writer http.ResponseWriter, request *http.Request) {
	s, err := handler.service.GetPublic(request.Context(), requestutil.Param(request, "key"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, s)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	sections, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sections)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	s, err := handler.service.Get(request.Context(), requestutil.Param(request, "key"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, s)
}

func (handler *Handler) upsert(writer http.ResponseWriter, request *http.Request) {
	var input Section
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	s, err := handler.service.Upsert(request.Context(), requestutil.Param(request, "key"), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, s)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "key")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
