package models

import "strings"

// FilterProducts returns the products that pass every active filter in
// filters, in their original order. Neither argument is modified and the
// result never aliases products.
func FilterProducts(products []EnrichedProduct, filters ProductFilters) []EnrichedProduct {
	query := strings.ToLower(filters.SearchQuery)

	var categories map[uint]struct{}
	if len(filters.SelectedCategoryIDs) > 0 {
		categories = make(map[uint]struct{}, len(filters.SelectedCategoryIDs))
		for _, id := range filters.SelectedCategoryIDs {
			categories[id] = struct{}{}
		}
	}

	filtered := make([]EnrichedProduct, 0, len(products))
	for _, p := range products {
		// User filter
		if filters.SelectedUserID != nil && p.User.ID != *filters.SelectedUserID {
			continue
		}
		// Search filter
		if !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		// Category filter
		if categories != nil {
			if _, ok := categories[p.Category.ID]; !ok {
				continue
			}
		}
		filtered = append(filtered, p)
	}
	return filtered
}
