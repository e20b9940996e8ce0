package services

import (
	"context"
	"log"
	"placemap/internal/domain"
	"strings"
)

const fallbackKeywords = "Punto de interés"

// DefaultCategories is the navigation table used when no category store is configured.
var DefaultCategories = []domain.Category{
	{Name: "Restaurant", Keywords: "Restaurantes, Comida"},
	{Name: "Coffee Shop", Keywords: "Cafeterías, Café"},
	{Name: "Gas Station", Keywords: "Gasolineras, Estaciones de Servicio"},
	{Name: "Hotels", Keywords: "Hoteles, Hospedaje, Alojamiento"},
	{Name: "Groceries", Keywords: "Tiendas de abarrotes, Supermercados"},
}

// Categories lists the navigation categories, preferring the repository and
// falling back to DefaultCategories when it is unset, empty or failing.
func (e *Explorer) Categories(ctx context.Context) []domain.Category {
	if e.categories == nil {
		return DefaultCategories
	}

	cats, err := e.categories.ListCategories(ctx)
	if err != nil {
		log.Printf("list categories failed, using defaults: %v", err)
		return DefaultCategories
	}
	if len(cats) == 0 {
		return DefaultCategories
	}

	return cats
}

// Keywords maps a category label to search keywords. Unknown labels get a
// generic point-of-interest query.
func (e *Explorer) Keywords(ctx context.Context, category string) string {
	category = strings.TrimSpace(category)
	for _, c := range e.Categories(ctx) {
		if c.Name == category {
			return c.Keywords
		}
	}
	return fallbackKeywords
}
