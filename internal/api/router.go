package api

import (
	"net/http"
	"placemap/internal/api/handlers"
	"placemap/internal/ports"
	"placemap/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// photos may be nil when no provider can resolve photo references.
func NewRouter(explorer *services.Explorer, photos ports.PhotoResolver) http.Handler {
	mux := http.NewServeMux()

	search := &handlers.SearchHandler{Explorer: explorer}
	filters := &handlers.FilterHandler{Explorer: explorer}
	media := &handlers.MediaHandler{Explorer: explorer, Photos: photos}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/view", search.View)
	mux.HandleFunc("/search", search.Search)
	mux.HandleFunc("/search/category", search.Category)
	mux.HandleFunc("/search/city", search.City)
	mux.HandleFunc("/categories", search.Categories)
	mux.HandleFunc("/filters/rating", filters.Rating)
	mux.HandleFunc("/filters/reviews", filters.Reviews)
	mux.HandleFunc("/filters/radius", filters.Radius)
	mux.HandleFunc("/photos", media.Photo)
	mux.HandleFunc("/export.xlsx", media.Export)

	return requestIDMiddleware(loggingMiddleware(mux))
}
