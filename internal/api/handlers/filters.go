package handlers

import (
	"net/http"
	"placemap/internal/api/dto"
	"placemap/internal/services"
)

// FilterHandler re-renders the current result list without searching again.
type FilterHandler struct {
	Explorer *services.Explorer
}

func (h *FilterHandler) Rating(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	writeJSON(w, r, http.StatusOK, toViewResponse(h.Explorer.SortByRating(sessionID(r))))
}

func (h *FilterHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	writeJSON(w, r, http.StatusOK, toViewResponse(h.Explorer.SortByReviews(sessionID(r))))
}

// Radius keeps places within radius_meters (default 1000) of their centroid.
func (h *FilterHandler) Radius(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.RadiusFilterRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}

	radius := services.DefaultFilterRadius
	if req.RadiusMeters != nil {
		radius = *req.RadiusMeters
	}

	v, err := h.Explorer.FilterByRadius(sessionID(r), radius)
	if err != nil {
		writeServiceError(w, r, "radius filter", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toViewResponse(v))
}
