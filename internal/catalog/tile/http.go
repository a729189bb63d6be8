package tile

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
	router.Get("/collections", handler.listPublicCollections)
	router.Get("/applications", handler.listPublicApplications)
	router.Get("/installations", handler.listPublicInstallations)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Use(middleware.RequireRole(sec.RoleEditor))

	router.Get("/collections", handler.listCollections)
	router.Get("/collections/{id}", handler.getCollection)
	router.Post("/collections", handler.createCollection)
	router.Patch("/collections/{id}", handler.updateCollection)

	router.Get("/applications", handler.listApplications)
	router.Get("/applications/{id}", handler.getApplication)
	router.Post("/applications", handler.createApplication)
	router.Put("/applications/{id}", handler.updateApplication)

	router.Get("/installations", handler.listInstallations)
	router.Get("/installations/{id}", handler.getInstallation)
	router.Post("/installations", handler.createInstallation)
	router.Put("/installations/{id}", handler.updateInstallation)

	// Admin strict only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Delete("/collections/{id}", handler.deleteCollection)
		adminRoute.Delete("/applications/{id}", handler.deleteApplication)
		adminRoute.Delete("/installations/{id}", handler.deleteInstallation)
	})
}

// # Collections

func (handler *Handler) listPublicCollections(writer http.ResponseWriter, request *http.Request) {
	collections, err := handler.service.ListPublicCollections(request.Context(), request.URL.Query().Get("sector_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, collections)
}

func (handler *Handler) listCollections(writer http.ResponseWriter, request *http.Request) {
	collections, err := handler.service.ListCollections(request.Context(), request.URL.Query().Get("sector_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, collections)
}

func (handler *Handler) getCollection(writer http.ResponseWriter, request *http.Request) {
	c, err := handler.service.GetCollection(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}

func (handler *Handler) createCollection(writer http.ResponseWriter, request *http.Request) {
	input := NewCollection()
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCollection(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateCollection(writer http.ResponseWriter, request *http.Request) {
	var input CollectionPatch
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateCollection(request.Context(), requestutil.ID(request, "id"), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteCollection(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteCollection(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Applications

func (handler *Handler) listPublicApplications(writer http.ResponseWriter, request *http.Request) {
	applications, err := handler.service.ListPublicApplications(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, applications)
}

func (handler *Handler) listApplications(writer http.ResponseWriter, request *http.Request) {
	applications, err := handler.service.ListApplications(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, applications)
}

func (handler *Handler) getApplication(writer http.ResponseWriter, request *http.Request) {
	a, err := handler.service.GetApplication(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, a)
}

func (handler *Handler) createApplication(writer http.ResponseWriter, request *http.Request) {
	input := NewApplication()
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateApplication(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateApplication(writer http.ResponseWriter, request *http.Request) {
	var input Application
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateApplication(request.Context(), requestutil.ID(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteApplication(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteApplication(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Installations

func (handler *Handler) listPublicInstallations(writer http.ResponseWriter, request *http.Request) {
	installations, err := handler.service.ListPublicInstallations(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, installations)
}

func (handler *Handler) listInstallations(writer http.ResponseWriter, request *http.Request) {
	installations, err := handler.service.ListInstallations(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, installations)
}

func (handler *Handler) getInstallation(writer http.ResponseWriter, request *http.Request) {
	i, err := handler.service.GetInstallation(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, i)
}

func (handler *Handler) createInstallation(writer http.ResponseWriter, request *http.Request) {
	input := NewInstallation()
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateInstallation(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateInstallation(writer http.ResponseWriter, request *http.Request) {
	var input Installation
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateInstallation(request.Context(), requestutil.ID(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteInstallation(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteInstallation(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
