package geo

import (
	"testing"

	"placemap/internal/domain"
)

func rated(name string, rating *float64, reviews *int) domain.Place {
	return domain.Place{DisplayName: name, Rating: rating, ReviewCount: reviews}
}

func ptr[T any](v T) *T { return &v }

func names(places []domain.Place) []string {
	out := make([]string, 0, len(places))
	for _, p := range places {
		out = append(out, p.DisplayName)
	}
	return out
}

func TestSortByRating(t *testing.T) {
	in := []domain.Place{
		rated("unrated", nil, nil),
		rated("good", ptr(4.2), nil),
		rated("best", ptr(4.9), nil),
		rated("also good", ptr(4.2), nil),
	}

	got := names(SortByRating(in))
	want := []string{"best", "good", "also good", "unrated"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}

	if in[0].DisplayName != "unrated" {
		t.Fatalf("input slice was modified")
	}
}

func TestSortByReviewCount(t *testing.T) {
	in := []domain.Place{
		rated("few", nil, ptr(3)),
		rated("none", nil, nil),
		rated("many", nil, ptr(250)),
	}

	got := names(SortByReviewCount(in))
	want := []string{"many", "few", "none"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
