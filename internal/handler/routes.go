package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler returns a router serving every endpoint of s.
func Handler(s *Server) http.Handler {
	return HandlerFromMux(s, chi.NewRouter())
}

// HandlerFromMux registers every endpoint of s on r and returns r.
// Middleware should already be installed on r.
func HandlerFromMux(s *Server, r chi.Router) http.Handler {
	r.Get("/healthz", s.GetHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Post("/", s.CreateProject)
			r.Get("/", s.GetProject)
			r.Delete("/", s.RemoveProject)
			r.Get("/list/all", s.ListAllProjects)
			r.Get("/count/all", s.CountAllProjects)
		})
		r.Route("/users", func(r chi.Router) {
			r.Get("/", s.GetUser)
			r.Get("/list/all", s.ListAllUsers)
		})
		r.Get("/trusts/list/all", s.ListAllTrusts)
		r.Get("/local-authorities/{code}", s.GetLocalAuthority)
		r.Route("/csv-export", func(r chi.Router) {
			r.Post("/", s.GetConversionCSV)
			r.Post("/contents", s.GetConversionCSVContents)
		})
	})
	return r
}
