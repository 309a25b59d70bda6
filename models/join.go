package models

import (
	"errors"
	"fmt"
)

// ErrDataIntegrity is matched by every error JoinProducts returns. Such
// errors mean the loaded data is corrupt and the view must not render.
var ErrDataIntegrity = errors.New("data integrity")

var (
	ErrMissingCategory = fmt.Errorf("%w: product references unknown category", ErrDataIntegrity)
	ErrMissingOwner    = fmt.Errorf("%w: category references unknown owner", ErrDataIntegrity)
	ErrDuplicateID     = fmt.Errorf("%w: duplicate id", ErrDataIntegrity)
	ErrInvalidSex      = fmt.Errorf("%w: invalid sex", ErrDataIntegrity)
)

// JoinProducts resolves every product's category and the category's owner,
// returning the enriched records in the order of dataset.Products. The
// dataset itself is left untouched.
func JoinProducts(dataset Dataset) ([]EnrichedProduct, error) {
	usersByID := make(map[uint]User, len(dataset.Users))
	for _, u := range dataset.Users {
		if _, ok := usersByID[u.ID]; ok {
			return nil, fmt.Errorf("user %d: %w", u.ID, ErrDuplicateID)
		}
		if !u.Sex.Valid() {
			return nil, fmt.Errorf("user %d sex %q: %w", u.ID, u.Sex, ErrInvalidSex)
		}
		usersByID[u.ID] = u
	}

	categoriesByID := make(map[uint]Category, len(dataset.Categories))
	for _, c := range dataset.Categories {
		if _, ok := categoriesByID[c.ID]; ok {
			return nil, fmt.Errorf("category %d: %w", c.ID, ErrDuplicateID)
		}
		if _, ok := usersByID[c.OwnerID]; !ok {
			return nil, fmt.Errorf("category %d owner %d: %w", c.ID, c.OwnerID, ErrMissingOwner)
		}
		categoriesByID[c.ID] = c
	}

	seen := make(map[uint]struct{}, len(dataset.Products))
	enriched := make([]EnrichedProduct, 0, len(dataset.Products))
	for _, p := range dataset.Products {
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("product %d: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = struct{}{}

		category, ok := categoriesByID[p.CategoryID]
		if !ok {
			return nil, fmt.Errorf("product %d category %d: %w", p.ID, p.CategoryID, ErrMissingCategory)
		}
		enriched = append(enriched, EnrichedProduct{
			ID:         p.ID,
			Name:       p.Name,
			CategoryID: p.CategoryID,
			Category:   category,
			User:       usersByID[category.OwnerID],
		})
	}

	return enriched, nil
}
