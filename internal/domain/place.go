package domain

const BusinessStatusOperational = "OPERATIONAL"

// A single search result returned by the places provider.
// Places are snapshots: they carry no identity beyond their position
// in the result list they came from.
type Place struct {
	Location         Coordinates
	DisplayName      string
	FormattedAddress string
	Rating           *float64
	ReviewCount      *int
	BusinessStatus   string
	PhotoName        string
}

func (p Place) Operational() bool { return p.BusinessStatus == BusinessStatusOperational }

// RatingOrZero returns the rating, treating a missing one as 0.
func (p Place) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// ReviewCountOrZero returns the review count, treating a missing one as 0.
func (p Place) ReviewCountOrZero() int {
	if p.ReviewCount == nil {
		return 0
	}
	return *p.ReviewCount
}
