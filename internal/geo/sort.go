package geo

import (
	"cmp"
	"slices"

	"placemap/internal/domain"
)

// SortByRating returns a copy of places ordered by rating, highest first.
// Missing ratings count as 0; equal ratings keep their input order.
func SortByRating(places []domain.Place) []domain.Place {
	out := slices.Clone(places)
	slices.SortStableFunc(out, func(a, b domain.Place) int {
		return cmp.Compare(b.RatingOrZero(), a.RatingOrZero())
	})
	return out
}

// SortByReviewCount returns a copy of places ordered by review count, highest first.
func SortByReviewCount(places []domain.Place) []domain.Place {
	out := slices.Clone(places)
	slices.SortStableFunc(out, func(a, b domain.Place) int {
		return cmp.Compare(b.ReviewCountOrZero(), a.ReviewCountOrZero())
	})
	return out
}
