package api

import (
	"net/http"

	"github.com/AYG3/Truck-Driver-Logbook/internal/api/handlers"
	"github.com/AYG3/Truck-Driver-Logbook/internal/ports"
	"github.com/AYG3/Truck-Driver-Logbook/internal/render"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware
// of concrete cache or surface adapters.
func NewRouter(renderer *render.Renderer, cache ports.RenderCache) http.Handler {
	mux := http.NewServeMux()

	renderHandler := &handlers.RenderHandler{
		Renderer: renderer,
		Cache:    cache,
	}
	summaryHandler := &handlers.SummaryHandler{}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/logs/render", renderHandler.Render)
	mux.HandleFunc("/logs/summary", summaryHandler.Summary)

	return loggingMiddleware(mux)
}
