package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mytheresa/product-categories/models"
)

const (
	title            = "Product Categories"
	noMatchesMessage = "No products matching selected criteria"

	// chromeLines counts every rendered line outside the table body:
	// title, blank, users, search, categories, reset, blank, table
	// header, blank, status, help.
	chromeLines = 11
)

// tableRows is the number of product rows that fit on screen.
func (model Model) tableRows() int {
	if model.height == 0 {
		return len(model.visible)
	}
	rows := model.height - chromeLines
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (model Model) View() string {
	if model.width == 0 {
		return "Loading..."
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	lines := []string{
		headerStyle.Render(title),
		"",
		model.renderUsers(),
		model.renderSearch(),
		model.renderCategories(),
		model.renderReset(),
		"",
	}

	if len(model.visible) == 0 {
		lines = append(lines, noMatchesMessage)
	} else {
		end := min(model.offset+model.tableRows(), len(model.visible))
		lines = append(lines, renderTable(model.visible, model.offset, end, model.theme)...)
	}

	lines = append(lines,
		"",
		helpStyle.Render(fmt.Sprintf("%d shown", len(model.visible))),
		model.renderHelp(),
	)

	return strings.Join(lines, "\n")
}

func (model Model) renderUsers() string {
	activeStyle := lipgloss.NewStyle().Bold(true).Underline(true).Foreground(model.theme.ActiveForeground)
	normalStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)

	tab := func(label string, active bool) string {
		if active {
			return activeStyle.Render(label)
		}
		return normalStyle.Render(label)
	}

	tabs := []string{tab("All", model.filters.SelectedUserID == nil)}
	for _, u := range model.users {
		tabs = append(tabs, tab(u.Name, model.filters.IsUserSelected(u.ID)))
	}
	return "Users: " + strings.Join(tabs, "  ")
}

func (model Model) renderSearch() string {
	faintStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	query := model.filters.SearchQuery
	var field string
	switch {
	case model.focus == FocusSearch:
		field = query + "▏"
	case query == "":
		field = faintStyle.Render("Search")
	default:
		field = query
	}

	line := "🔍 " + field
	if query != "" {
		line += "  " + faintStyle.Render("[x] clear")
	}
	return line
}

func (model Model) renderCategories() string {
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.ActiveForeground)
	outlinedStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	selectedStyle := lipgloss.NewStyle().
		Foreground(model.theme.SelectedForeground).
		Background(model.theme.SelectedBackground)
	normalStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)

	var all string
	if len(model.filters.SelectedCategoryIDs) == 0 {
		all = activeStyle.Render("[All]")
	} else {
		all = outlinedStyle.Render("[All]")
	}

	buttons := []string{all}
	for i, c := range model.categories {
		label := c.Title
		if i == model.categoryCursor && model.focus == FocusList {
			label = ">" + label + "<"
		} else {
			label = " " + label + " "
		}
		if model.filters.IsCategorySelected(c.ID) {
			buttons = append(buttons, selectedStyle.Render(label))
		} else {
			buttons = append(buttons, normalStyle.Render(label))
		}
	}
	return strings.Join(buttons, " ")
}

func (model Model) renderReset() string {
	style := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	if model.filters.IsDefault() {
		return style.Render("Reset all filters")
	}
	return lipgloss.NewStyle().Foreground(model.theme.ActiveForeground).Render("Reset all filters")
}

// Table renders products as a plain table, or the no-matches message
// when there are none.
func Table(products []models.EnrichedProduct) string {
	if len(products) == 0 {
		return noMatchesMessage
	}
	return strings.Join(renderTable(products, 0, len(products), DefaultTheme), "\n")
}

// renderTable lays out products[start:end] under a header row. Column
// widths account for every product so scrolling does not shift them.
func renderTable(products []models.EnrichedProduct, start, end int, theme Theme) []string {
	headers := []string{"ID", "Product", "Category", "User"}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}

	cells := make([][]string, len(products))
	for r, p := range products {
		cells[r] = []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Name,
			categoryLabel(p.Category),
			p.User.Name,
		}
		for i, cell := range cells[r] {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
	pad := func(style lipgloss.Style, text string, width int) string {
		return style.Render(text + strings.Repeat(" ", width-lipgloss.Width(text)))
	}

	headerCells := make([]string, len(headers))
	for i, h := range headers {
		headerCells[i] = pad(headerStyle, h, widths[i])
	}
	lines := []string{strings.Join(headerCells, "  ")}

	idStyle := lipgloss.NewStyle().Bold(true)
	plainStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	for r := start; r < end; r++ {
		userStyle := lipgloss.NewStyle().Foreground(theme.UserColor(products[r].User))
		row := []string{
			pad(idStyle, cells[r][0], widths[0]),
			pad(plainStyle, cells[r][1], widths[1]),
			pad(plainStyle, cells[r][2], widths[2]),
			userStyle.Render(cells[r][3]),
		}
		lines = append(lines, strings.Join(row, "  "))
	}
	return lines
}

func (model Model) renderHelp() string {
	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	if model.focus == FocusSearch {
		return helpStyle.Render("enter done · esc clear/leave")
	}

	var parts []string
	for _, binding := range model.keys.helpBindings() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " · "))
}

// categoryLabel renders a category as "icon - title".
func categoryLabel(category models.Category) string {
	return category.Icon + " - " + category.Title
}
