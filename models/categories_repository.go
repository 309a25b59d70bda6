package models

import (
	"errors"
	"slices"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoriesRepository lists categories in load order.
type CategoriesRepository struct {
	categories []Category
}

func NewCategoriesRepository(dataset Dataset) *CategoriesRepository {
	return &CategoriesRepository{
		categories: slices.Clone(dataset.Categories),
	}
}

func (r *CategoriesRepository) GetAllCategories() []Category {
	return slices.Clone(r.categories)
}

func (r *CategoriesRepository) GetByID(id uint) (*Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, ErrCategoryNotFound
}
