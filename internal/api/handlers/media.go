package handlers

import (
	"log"
	"net/http"
	"placemap/internal/adapters/export"
	"placemap/internal/geo"
	"placemap/internal/ports"
	"placemap/internal/services"
	"strings"
)

const (
	photoMaxWidth  = 500
	photoMaxHeight = 200
	xlsxMediaType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// MediaHandler serves non-JSON artifacts: place photos and the result export.
type MediaHandler struct {
	Explorer *services.Explorer
	Photos   ports.PhotoResolver
}

// Photo redirects to the provider's image for a photo reference so the
// provider key never reaches the browser.
func (h *MediaHandler) Photo(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}
	if h.Photos == nil {
		writeError(w, r, http.StatusNotFound, "photos are not available")
		return
	}

	uri, err := h.Photos.PhotoURI(r.Context(), name, photoMaxWidth, photoMaxHeight)
	if err != nil {
		log.Printf("photo lookup failed: name=%q err=%v", name, err)
		http.Redirect(w, r, placeholderPhoto, http.StatusFound)
		return
	}

	http.Redirect(w, r, uri, http.StatusFound)
}

// Export downloads the session's current places as a spreadsheet.
func (h *MediaHandler) Export(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	places := h.Explorer.Places(sessionID(r))
	centroid, ok := geo.Centroid(places)

	w.Header().Set("Content-Type", xlsxMediaType)
	w.Header().Set("Content-Disposition", `attachment; filename="lugares.xlsx"`)

	var err error
	if ok {
		err = export.WriteXLSX(w, places, &centroid)
	} else {
		err = export.WriteXLSX(w, places, nil)
	}
	if err != nil {
		log.Printf("export failed: %v", err)
	}
}
