package models

import "slices"

// ProductFilters is the view's filter state. The zero value filters
// nothing.
type ProductFilters struct {
	// SelectedUserID restricts products to categories owned by this
	// user. Nil means every user.
	SelectedUserID *uint
	// SearchQuery is matched case-insensitively as a substring of the
	// product name.
	SearchQuery string
	// SelectedCategoryIDs restricts products to these categories. Empty
	// means every category. Kept in toggle order.
	SelectedCategoryIDs []uint
}

func (f *ProductFilters) SelectUser(id uint) {
	f.SelectedUserID = &id
}

func (f *ProductFilters) SelectAllUsers() {
	f.SelectedUserID = nil
}

func (f *ProductFilters) SetSearchQuery(query string) {
	f.SearchQuery = query
}

func (f *ProductFilters) ClearSearch() {
	f.SearchQuery = ""
}

// ToggleCategory removes id from the selection if present, otherwise
// appends it. The order of the other ids is kept.
func (f *ProductFilters) ToggleCategory(id uint) {
	if i := slices.Index(f.SelectedCategoryIDs, id); i >= 0 {
		f.SelectedCategoryIDs = slices.Delete(slices.Clone(f.SelectedCategoryIDs), i, i+1)
		return
	}
	f.SelectedCategoryIDs = append(slices.Clone(f.SelectedCategoryIDs), id)
}

func (f *ProductFilters) SelectAllCategories() {
	f.SelectedCategoryIDs = nil
}

// Reset clears all three filters.
func (f *ProductFilters) Reset() {
	*f = ProductFilters{}
}

func (f ProductFilters) IsUserSelected(id uint) bool {
	return f.SelectedUserID != nil && *f.SelectedUserID == id
}

func (f ProductFilters) IsCategorySelected(id uint) bool {
	return slices.Contains(f.SelectedCategoryIDs, id)
}

// IsDefault reports whether no filter is active.
func (f ProductFilters) IsDefault() bool {
	return f.SelectedUserID == nil && f.SearchQuery == "" && len(f.SelectedCategoryIDs) == 0
}

// Clone returns a copy that shares no memory with f.
func (f ProductFilters) Clone() ProductFilters {
	clone := ProductFilters{
		SearchQuery:         f.SearchQuery,
		SelectedCategoryIDs: slices.Clone(f.SelectedCategoryIDs),
	}
	if f.SelectedUserID != nil {
		id := *f.SelectedUserID
		clone.SelectedUserID = &id
	}
	return clone
}

// Equal compares by value. Category ids are compared in order.
func (f ProductFilters) Equal(other ProductFilters) bool {
	if (f.SelectedUserID == nil) != (other.SelectedUserID == nil) {
		return false
	}
	if f.SelectedUserID != nil && *f.SelectedUserID != *other.SelectedUserID {
		return false
	}
	return f.SearchQuery == other.SearchQuery &&
		slices.Equal(f.SelectedCategoryIDs, other.SelectedCategoryIDs)
}
