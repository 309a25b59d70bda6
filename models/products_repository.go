package models

import (
	"errors"
	"slices"
	"sync"
)

// ProductsRepository serves the enriched product set. The join runs once
// in NewProductsRepository; the result is never recomputed.
type ProductsRepository struct {
	products []EnrichedProduct
	byID     map[uint]int

	mu          sync.Mutex
	lastFilters *ProductFilters
	lastResult  []EnrichedProduct
}

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// NewProductsRepository joins dataset and fails on any data integrity
// error, so a repository never holds a partial join.
func NewProductsRepository(dataset Dataset) (*ProductsRepository, error) {
	products, err := JoinProducts(dataset)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}

	return &ProductsRepository{
		products: products,
		byID:     byID,
	}, nil
}

func (r *ProductsRepository) GetAllProducts() []EnrichedProduct {
	return slices.Clone(r.products)
}

// GetFilteredProducts applies filters to the enriched set. The result of
// the previous call is reused when filters have not changed.
func (r *ProductsRepository) GetFilteredProducts(filters ProductFilters) []EnrichedProduct {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastFilters == nil || !r.lastFilters.Equal(filters) {
		saved := filters.Clone()
		r.lastFilters = &saved
		r.lastResult = FilterProducts(r.products, saved)
	}

	result := make([]EnrichedProduct, len(r.lastResult))
	copy(result, r.lastResult)
	return result
}

func (r *ProductsRepository) GetByID(id uint) (*EnrichedProduct, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	product := r.products[i]
	return &product, nil
}
