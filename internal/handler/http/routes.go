package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging, middleware.Recoverer, withGZip())
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotFound)

	base := h.basePath

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.welcome)
		r.Post(base+"/signup", h.signup)
		r.Post(base+"/login", h.login)
		r.Get(base+"/version", h.version)
		r.Get(base+"/health", h.health)
	})

	// routes behind the access-control gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get(base+"/dashboard", h.dashboard)

		r.Get(base+"/entries", h.listEntries)
		r.Post(base+"/entries", h.createEntry)
		r.Put(base+"/entries/{id}", h.updateEntry)
		r.Delete(base+"/entries/{id}", h.deleteEntry)
	})

	return router
}
