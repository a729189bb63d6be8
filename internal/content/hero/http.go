package hero

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
	router.Get("/", handler.listPublic)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Use(middleware.RequireRole(sec.RoleEditor))

	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
	router.Post("/", handler.create)
	router.Put("/{id}", handler.update)

	// Admin strict only
	router.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.delete)
}

func (handler *Handler) listPublic(writer http.ResponseWriter, request *http.Request) {
	slides, err := handler.service.ListPublic(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, slides)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	slides, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, slides)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	s, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, s)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	input := NewSlide()
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
	var input Slide
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
