package bathroom

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
	router.Get("/categories", handler.listPublicCategories)
	router.Get("/products", handler.listPublicProducts)
	router.Get("/installations", handler.listPublicInstallations)
}

func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Use(middleware.RequireRole(sec.RoleEditor))

	router.Get("/categories", handler.listCategories)
	router.Get("/categories/{id}", handler.getCategory)
	router.Post("/categories", handler.createCategory)
	router.Put("/categories/{id}", handler.updateCategory)

	router.Get("/products", handler.listProducts)
	router.Get("/products/{id}", handler.getProduct)
	router.Post("/products", handler.createProduct)
	router.Patch("/products/{id}", handler.updateProduct)

	router.Get("/installations", handler.listInstallations)
	router.Get("/installations/{id}", handler.getInstallation)
	router.Post("/installations", handler.createInstallation)
	router.Put("/installations/{id}", handler.updateInstallation)

	// Admin strict only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Delete("/categories/{id}", handler.deleteCategory)
		adminRoute.Delete("/products/{id}", handler.deleteProduct)
		adminRoute.Delete("/installations/{id}", handler.deleteInstallation)
	})
}

// # Categories

func (handler *Handler) listPublicCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListPublicCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	c, err := handler.service.GetCategory(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	input := NewCategory()
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCategory(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	var input Category
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateCategory(request.Context(), requestutil.ID(request, "id"), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteCategory(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Products

func (handler *Handler) listPublicProducts(writer http.ResponseWriter, request *http.Request) {
	products, err := handler.service.ListPublicProducts(request.Context(), request.URL.Query().Get("category_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, products)
}

func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	products, err := handler.service.ListProducts(request.Context(), request.URL.Query().Get("category_id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, products)
}

func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	p, err := handler.service.GetProduct(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, p)
}

func (handler *Handler) createProduct(writer http.ResponseWriter, request *http.Request) {
	input := NewProduct()
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateProduct(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateProduct(writer http.ResponseWriter, request *http.Request) {
	var input ProductPatch
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateProduct(request.Context(), requestutil.ID(request, "id"), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteProduct(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteProduct(request.Context(), requestutil.ID(request, "id")); err != nil {
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
