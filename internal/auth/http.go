package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/middleware"
	requestutil "github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/request"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", handler.login)

	router.Group(func(authedRoute chi.Router) {
		authedRoute.Use(middleware.RequireAuth)
		authedRoute.Get("/me", handler.me)
	})
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginOutput struct {
	Token   string   `json:"token"`
	Account *Account `json:"account"`
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, account, err := handler.service.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, loginOutput{Token: token, Account: account})
}

func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.Me(request.Context(), accountID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}
