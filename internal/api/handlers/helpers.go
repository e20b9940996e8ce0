package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"placemap/internal/api/dto"
	"placemap/internal/domain"
	"placemap/internal/platform/obs"
	"placemap/internal/services"
	"strings"
)

const (
	SessionHeader    = "X-Session-ID"
	defaultSession   = "default"
	placeholderPhoto = "https://via.placeholder.com/500x200?text=No+Photo"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps explorer errors to HTTP statuses. Provider failures
// are logged in full but reported generically.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyQuery), errors.Is(err, services.ErrInvalidRadius):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrCityNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNoPlaces), errors.Is(err, services.ErrSuperseded):
		writeError(w, r, http.StatusConflict, err.Error())
	default:
		log.Printf("req_id=%s %s failed: %v", obs.RequestID(r.Context()), op, err)
		writeError(w, r, http.StatusBadGateway, "places provider unavailable")
	}
}

func sessionID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(SessionHeader)); id != "" {
		return id
	}
	return defaultSession
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// decodeBody decodes exactly one JSON object with no unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	return decode(w, r, v, false)
}

// decodeOptionalBody is decodeBody that also accepts an empty body, leaving v
// untouched. Chunked requests report ContentLength -1 even when empty, so
// emptiness is detected from the stream itself.
func decodeOptionalBody(w http.ResponseWriter, r *http.Request, v any) bool {
	return decode(w, r, v, true)
}

func decode(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if allowEmpty && err == io.EOF {
			return true
		}
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

func toCoordinates(c domain.Coordinates) dto.Coordinates {
	return dto.Coordinates{Lat: c.Lat, Lng: c.Lng}
}

func toLine(l *domain.Line) *dto.LineResponse {
	if l == nil {
		return nil
	}
	return &dto.LineResponse{From: toCoordinates(l.From), To: toCoordinates(l.To), DistanceMeters: l.DistanceMeters}
}

func toViewResponse(v *domain.MapView) dto.MapViewResponse {
	res := dto.MapViewResponse{
		Query:    v.Query,
		Center:   toCoordinates(v.Center),
		Places:   make([]dto.PlaceResponse, 0, len(v.Places)),
		Empty:    v.Empty(),
		Nearest:  toLine(v.Nearest),
		Farthest: toLine(v.Farthest),
	}

	for _, p := range v.Places {
		photo := placeholderPhoto
		if p.PhotoName != "" {
			photo = "/photos?name=" + url.QueryEscape(p.PhotoName)
		}

		res.Places = append(res.Places, dto.PlaceResponse{
			DisplayName:      p.DisplayName,
			FormattedAddress: p.FormattedAddress,
			Location:         toCoordinates(p.Location),
			Rating:           p.Rating,
			ReviewCount:      p.ReviewCount,
			BusinessStatus:   p.BusinessStatus,
			Operational:      p.Operational(),
			PhotoURL:         photo,
		})
	}

	if res.Empty && v.Query != "" {
		res.Message = fmt.Sprintf("No se encontraron resultados para %q.", v.Query)
	}
	if v.Centroid != nil {
		c := toCoordinates(*v.Centroid)
		res.Centroid = &c
	}
	if v.Radius != nil {
		res.Radius = &dto.CircleResponse{Center: toCoordinates(v.Radius.Center), RadiusMeters: v.Radius.RadiusMeters}
	}
	if v.Bounds != nil {
		res.Bounds = &dto.BoundsResponse{SouthWest: toCoordinates(v.Bounds.SouthWest), NorthEast: toCoordinates(v.Bounds.NorthEast)}
	}

	return res
}
