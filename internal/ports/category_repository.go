package ports

import (
	"context"
	"placemap/internal/domain"
)

// Port: a boundary for retrieving navigation categories from a data source.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
