package main

import (
	"github.com/spf13/pflag"

	"github.com/mytheresa/product-categories/models"
)

// filterOptions holds the filter flags shared by view and list.
type filterOptions struct {
	userID      uint
	query       string
	categoryIDs []uint

	flags *pflag.FlagSet
}

func addFilterFlags(flags *pflag.FlagSet, options *filterOptions) {
	options.flags = flags
	flags.UintVar(&options.userID, "user", 0, "show only products of categories owned by this user id")
	flags.StringVar(&options.query, "query", "", "case-insensitive product name search")
	flags.UintSliceVar(&options.categoryIDs, "category", nil, "restrict to these category ids (repeatable)")
}

// filters converts the flags into filter state. --user is only applied
// when given, so user id 0 remains selectable.
func (options *filterOptions) filters() models.ProductFilters {
	var filters models.ProductFilters
	if options.flags != nil && options.flags.Changed("user") {
		filters.SelectUser(options.userID)
	}
	filters.SetSearchQuery(options.query)
	for _, id := range options.categoryIDs {
		if !filters.IsCategorySelected(id) {
			filters.ToggleCategory(id)
		}
	}
	return filters
}
