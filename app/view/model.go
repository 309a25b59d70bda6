// Package view is the interactive product list: user tabs, a search
// field and category buttons narrowing a table of enriched products.
package view

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mytheresa/product-categories/models"
)

// ProductSource computes the visible products for a filter state.
type ProductSource interface {
	GetFilteredProducts(filters models.ProductFilters) []models.EnrichedProduct
}

// FocusRegion identifies where keystrokes go.
type FocusRegion int

const (
	// FocusList means keys drive the filters and scroll the table.
	FocusList FocusRegion = iota
	// FocusSearch means runes edit the search query.
	FocusSearch
)

// Model is the bubbletea model of the product view. The filter state
// is the only thing that changes; every change recomputes the visible
// rows from the source.
type Model struct {
	source     ProductSource
	users      []models.User
	categories []models.Category

	filters models.ProductFilters
	visible []models.EnrichedProduct

	focus          FocusRegion
	categoryCursor int
	offset         int

	width  int
	height int

	keys  KeyMap
	theme Theme
}

// NewModel builds the view with every filter at its default.
func NewModel(source ProductSource, users []models.User, categories []models.Category) Model {
	model := Model{
		source:     source,
		users:      slices.Clone(users),
		categories: slices.Clone(categories),
		keys:       DefaultKeyMap,
		theme:      DefaultTheme,
	}
	model.refresh()
	return model
}

// WithFilters starts the view from an existing filter state.
func (model Model) WithFilters(filters models.ProductFilters) Model {
	model.filters = filters.Clone()
	model.refresh()
	return model
}

// Filters returns a copy of the current filter state.
func (model Model) Filters() models.ProductFilters {
	return model.filters.Clone()
}

// Visible returns the products currently listed.
func (model Model) Visible() []models.EnrichedProduct {
	return slices.Clone(model.visible)
}

func (model Model) Init() tea.Cmd {
	return nil
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.clampOffset()
		return model, nil

	case tea.KeyMsg:
		if model.focus == FocusSearch {
			return model.handleSearchKeys(message)
		}
		return model.handleListKeys(message)
	}

	return model, nil
}

func (model Model) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case message.Type == tea.KeyEsc:
		// Esc: clear the query first, leave the field when already empty.
		if model.filters.SearchQuery != "" {
			model.filters.ClearSearch()
			model.refresh()
		} else {
			model.focus = FocusList
		}

	case message.Type == tea.KeyEnter:
		model.focus = FocusList

	case message.Type == tea.KeyBackspace:
		query := []rune(model.filters.SearchQuery)
		if len(query) > 0 {
			model.filters.SetSearchQuery(string(query[:len(query)-1]))
			model.refresh()
		}

	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		runes := message.Runes
		if message.Type == tea.KeySpace && len(runes) == 0 {
			runes = []rune{' '}
		}
		model.filters.SetSearchQuery(model.filters.SearchQuery + string(runes))
		model.refresh()
	}

	return model, nil
}

func (model Model) handleListKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.SearchActivate):
		model.focus = FocusSearch

	case key.Matches(message, model.keys.SearchClear):
		model.filters.ClearSearch()
		model.refresh()

	case key.Matches(message, model.keys.AllUsers):
		model.filters.SelectAllUsers()
		model.refresh()

	case key.Matches(message, model.keys.NextUser):
		model.stepUser(1)

	case key.Matches(message, model.keys.PrevUser):
		model.stepUser(-1)

	case key.Matches(message, model.keys.CategoryLeft):
		if model.categoryCursor > 0 {
			model.categoryCursor--
		}

	case key.Matches(message, model.keys.CategoryRight):
		if model.categoryCursor < len(model.categories)-1 {
			model.categoryCursor++
		}

	case key.Matches(message, model.keys.CategoryFlip):
		if len(model.categories) > 0 {
			model.filters.ToggleCategory(model.categories[model.categoryCursor].ID)
			model.refresh()
		}

	case key.Matches(message, model.keys.AllCategories):
		model.filters.SelectAllCategories()
		model.refresh()

	case key.Matches(message, model.keys.ResetAll):
		model.filters.Reset()
		model.refresh()

	case key.Matches(message, model.keys.Up):
		if model.offset > 0 {
			model.offset--
		}

	case key.Matches(message, model.keys.Down):
		model.offset++
		model.clampOffset()
	}

	return model, nil
}

// stepUser moves the user tab selection by delta. Position 0 is the
// "All" tab, position i is users[i-1]; the walk wraps around.
func (model *Model) stepUser(delta int) {
	position := 0
	if model.filters.SelectedUserID != nil {
		for i, u := range model.users {
			if u.ID == *model.filters.SelectedUserID {
				position = i + 1
				break
			}
		}
	}

	tabs := len(model.users) + 1
	position = ((position+delta)%tabs + tabs) % tabs

	if position == 0 {
		model.filters.SelectAllUsers()
	} else {
		model.filters.SelectUser(model.users[position-1].ID)
	}
	model.refresh()
}

func (model *Model) refresh() {
	model.visible = model.source.GetFilteredProducts(model.filters)
	model.offset = 0
}

func (model *Model) clampOffset() {
	limit := len(model.visible) - model.tableRows()
	if limit < 0 {
		limit = 0
	}
	if model.offset > limit {
		model.offset = limit
	}
	if model.offset < 0 {
		model.offset = 0
	}
}
