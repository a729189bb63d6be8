package news

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/middleware"
	requestutil "github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/request"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/respond"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/sec"
	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listPublished)
	router.Get("/latest", handler.latest)
	router.Get("/{slug}", handler.getPublishedBySlug)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Use(middleware.RequireRole(sec.RoleEditor))

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Post("/", handler.create)
	router.Patch("/{id}", handler.update)

	// Admin strict only
	router.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.delete)
}

func (handler *Handler) listPublished(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	articles, total, err := handler.service.ListPublished(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, articles, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) latest(writer http.ResponseWriter, request *http.Request) {
	articles, err := handler.service.Latest(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, articles)
}

func (handler *Handler) getPublishedBySlug(writer http.ResponseWriter, request *http.Request) {
	article, err := handler.service.GetPublishedBySlug(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, article)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	articles, total, err := handler.service.List(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, articles, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	article, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, article)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Article
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Create(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input Patch
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
