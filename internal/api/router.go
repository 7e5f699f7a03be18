package api

import (
	"drone-delivery-service/internal/api/handlers"
	"drone-delivery-service/internal/domain"
	"drone-delivery-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps services.PlanDayDeps, params domain.FlightParams, feePence int) http.Handler {
	mux := http.NewServeMux()

	orderHandler := &handlers.OrderHandler{Repo: deps.Orders}
	planHandler := &handlers.PlanHandler{
		Deps:     deps,
		Params:   params,
		FeePence: feePence,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/orders", orderHandler.List)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.Handle("/metrics", deps.Metrics.Handler())

	return loggingMiddleware(mux)
}
