package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/urbancode/chatbot-relay/internal/infra/http/handlers"
	"github.com/urbancode/chatbot-relay/internal/infra/http/middleware"
)

func newRouter(origins []string, leadHandler *handlers.LeadHandler, healthHandler *handlers.HealthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Handle)
	r.Post("/submit-details", leadHandler.SubmitDetails)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
