package dto

type SearchRequest struct {
	Query string `json:"query"`
}

type CategorySearchRequest struct {
	Category string `json:"category"`
	City     string `json:"city"`
}

type CitySearchRequest struct {
	City string `json:"city"`
}

type RadiusFilterRequest struct {
	RadiusMeters *float64 `json:"radius_meters"`
}

type CategoryResponse struct {
	Name     string `json:"name"`
	Keywords string `json:"keywords"`
}

type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
