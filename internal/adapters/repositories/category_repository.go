package repositories

import (
	"context"
	"errors"
	"fmt"
	"placemap/internal/domain"
	"placemap/internal/platform/db"
)

// Postgres-backed implementation of the CategoryRepository port.
type SQLCategoryRepository struct{ DB db.Querier }

func NewSQLCategoryRepository(q db.Querier) *SQLCategoryRepository {
	return &SQLCategoryRepository{DB: q}
}

// Return all categories in display order.
func (s *SQLCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if s.DB == nil {
		return nil, errors.New("sql category repository: DB is nil")
	}

	query := `
	SELECT
		name,
		keywords
	FROM categories
	ORDER BY position, name;
	`
	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: query categories table: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0, 8)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.Name, &c.Keywords); err != nil {
			return nil, fmt.Errorf("list categories: scan row: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: row iteration: %w", err)
	}

	return categories, nil
}
