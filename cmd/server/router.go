package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/savori/savory-api/internal/api"
	apimiddleware "github.com/savori/savory-api/internal/api/middleware"
	"github.com/savori/savory-api/internal/api/shared"
)

// setupRouter builds the HTTP router: standard middleware, handlers
// constructed from the application's dependencies, and the route table.
//
// User routes are public. Category and menu reads are public while their
// writes require authentication; todos, addresses and menu options are
// fully authenticated.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	userHandler := api.NewUserHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordHasher,
		app.logger,
	)
	todoHandler := api.NewTodoHandler(app.todoStore, app.logger)
	addressHandler := api.NewAddressHandler(app.addressStore, app.addressService, app.logger)
	categoryHandler := api.NewCategoryHandler(app.categoryStore, app.logger)
	menuHandler := api.NewMenuHandler(app.menuStore, app.logger)
	menuOptionHandler := api.NewMenuOptionHandler(app.menuOptionStore, app.menuStore, app.logger)

	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handleHealth)

		// User endpoints (public)
		r.Post("/users", userHandler.Register)
		r.Post("/users/login", userHandler.Login)
		r.Post("/users/refresh", userHandler.Refresh)
		r.Get("/users", userHandler.List)
		r.Get("/users/{id}", userHandler.Get)
		r.Delete("/users/{id}", userHandler.Delete)

		// Public reads for categories and menus
		r.Post("/categories/get", categoryHandler.List)
		r.Get("/categories/{id}", categoryHandler.Get)
		r.Post("/menus/get", menuHandler.List)
		r.Get("/menus/{menuID}", menuHandler.Get)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/todos", todoHandler.Create)
			r.Post("/todos/get", todoHandler.List)
			r.Get("/todos/{id}", todoHandler.Get)
			r.Put("/todos/{id}", todoHandler.Update)
			r.Delete("/todos/{id}", todoHandler.Delete)

			r.Post("/addresses", addressHandler.Create)
			r.Post("/addresses/get", addressHandler.List)
			r.Get("/addresses/{id}", addressHandler.Get)
			r.Put("/addresses/{id}", addressHandler.Update)
			r.Delete("/addresses/{id}", addressHandler.Delete)

			r.Post("/categories", categoryHandler.Create)
			r.Put("/categories/{id}", categoryHandler.Update)
			r.Delete("/categories/{id}", categoryHandler.Delete)

			r.Post("/menus", menuHandler.Create)
			r.Put("/menus/{id}", menuHandler.Update)
			r.Delete("/menus/{id}", menuHandler.Delete)

			r.Post("/menu-options", menuOptionHandler.Create)
		})
	})

	return r
}

// handleHealth reports service liveness.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithData(w, r, http.StatusOK, map[string]string{"status": "ok"}, "")
}
