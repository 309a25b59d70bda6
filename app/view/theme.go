package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mytheresa/product-categories/models"
)

// Theme defines the colors of the product view. All colors use
// lipgloss ANSI 256-color codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Active user tab and "All" buttons.
	ActiveForeground lipgloss.Color
	// Selected category buttons.
	SelectedForeground lipgloss.Color
	SelectedBackground lipgloss.Color

	HeaderForeground lipgloss.Color
	HelpText         lipgloss.Color

	// User name colors by sex.
	MaleUser   lipgloss.Color
	FemaleUser lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText:         lipgloss.Color("252"),
	FaintText:          lipgloss.Color("243"),
	ActiveForeground:   lipgloss.Color("42"),
	SelectedForeground: lipgloss.Color("231"),
	SelectedBackground: lipgloss.Color("31"),
	HeaderForeground:   lipgloss.Color("75"),
	HelpText:           lipgloss.Color("241"),
	MaleUser:           lipgloss.Color("33"),
	FemaleUser:         lipgloss.Color("160"),
}

// UserColor returns the name color for a user.
func (theme Theme) UserColor(user models.User) lipgloss.Color {
	if user.Sex == models.SexMale {
		return theme.MaleUser
	}
	return theme.FemaleUser
}
