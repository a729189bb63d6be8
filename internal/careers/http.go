package careers

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
	router.Get("/positions", handler.listOpenPositions)
	router.Post("/positions/{id}/apply", handler.apply)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Use(middleware.RequireRole(sec.RoleEditor))

	router.Get("/positions", handler.listPositions)
	router.Get("/positions/{id}", handler.getPosition)
	router.Post("/positions", handler.createPosition)
	router.Patch("/positions/{id}", handler.updatePosition)
	router.Get("/applications", handler.listApplications)

	// Admin strict only
	router.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/positions/{id}", handler.deletePosition)
}

func (handler *Handler) listOpenPositions(writer http.ResponseWriter, request *http.Request) {
	positions, err := handler.service.ListOpenPositions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, positions)
}

func (handler *Handler) apply(writer http.ResponseWriter, request *http.Request) {
	var input Application
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.PositionID = requestutil.ID(request, "id")

	if err := handler.service.Apply(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) listPositions(writer http.ResponseWriter, request *http.Request) {
	positions, err := handler.service.ListPositions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, positions)
}

func (handler *Handler) getPosition(writer http.ResponseWriter, request *http.Request) {
	position, err := handler.service.GetPosition(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, position)
}

func (handler *Handler) createPosition(writer http.ResponseWriter, request *http.Request) {
	input := NewPosition()
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePosition(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updatePosition(writer http.ResponseWriter, request *http.Request) {
	var input PositionPatch
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdatePosition(request.Context(), requestutil.ID(request, "id"), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deletePosition(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeletePosition(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listApplications(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	positionID := request.URL.Query().Get("position_id")

	applications, total, err := handler.service.ListApplications(request.Context(), positionID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, applications, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
