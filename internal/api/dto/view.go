package dto

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PlaceResponse struct {
	DisplayName      string      `json:"display_name"`
	FormattedAddress string      `json:"formatted_address"`
	Location         Coordinates `json:"location"`
	Rating           *float64    `json:"rating"`
	ReviewCount      *int        `json:"review_count"`
	BusinessStatus   string      `json:"business_status"`
	Operational      bool        `json:"operational"`
	PhotoURL         string      `json:"photo_url"`
}

type LineResponse struct {
	From           Coordinates `json:"from"`
	To             Coordinates `json:"to"`
	DistanceMeters float64     `json:"distance_meters"`
}

type CircleResponse struct {
	Center       Coordinates `json:"center"`
	RadiusMeters float64     `json:"radius_meters"`
}

type BoundsResponse struct {
	SouthWest Coordinates `json:"south_west"`
	NorthEast Coordinates `json:"north_east"`
}

type MapViewResponse struct {
	Query    string          `json:"query"`
	Center   Coordinates     `json:"center"`
	Places   []PlaceResponse `json:"places"`
	Empty    bool            `json:"empty"`
	Message  string          `json:"message,omitempty"`
	Centroid *Coordinates    `json:"centroid"`
	Nearest  *LineResponse   `json:"nearest"`
	Farthest *LineResponse   `json:"farthest"`
	Radius   *CircleResponse `json:"radius"`
	Bounds   *BoundsResponse `json:"bounds"`
}
