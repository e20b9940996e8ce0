package handlers

import (
	"net/http"
	"placemap/internal/api/dto"
	"placemap/internal/services"
)

// SearchHandler exposes the search entry points of the map: free text,
// navigation category and city.
type SearchHandler struct {
	Explorer *services.Explorer
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.SearchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	v, err := h.Explorer.Search(r.Context(), sessionID(r), req.Query)
	if err != nil {
		writeServiceError(w, r, "search", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toViewResponse(v))
}

func (h *SearchHandler) Category(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.CategorySearchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	v, err := h.Explorer.SearchCategory(r.Context(), sessionID(r), req.Category, req.City)
	if err != nil {
		writeServiceError(w, r, "category search", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toViewResponse(v))
}

func (h *SearchHandler) City(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.CitySearchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	v, err := h.Explorer.SearchCity(r.Context(), sessionID(r), req.City)
	if err != nil {
		writeServiceError(w, r, "city search", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toViewResponse(v))
}

func (h *SearchHandler) View(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	v, err := h.Explorer.View(r.Context(), sessionID(r))
	if err != nil {
		writeServiceError(w, r, "view", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toViewResponse(v))
}

func (h *SearchHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	cats := h.Explorer.Categories(r.Context())
	res := dto.ListCategoriesResponse{Categories: make([]dto.CategoryResponse, 0, len(cats))}
	for _, c := range cats {
		res.Categories = append(res.Categories, dto.CategoryResponse{Name: c.Name, Keywords: c.Keywords})
	}

	writeJSON(w, r, http.StatusOK, res)
}
