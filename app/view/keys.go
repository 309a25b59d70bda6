package view

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the product view.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	// User tabs.
	PrevUser key.Binding
	NextUser key.Binding
	AllUsers key.Binding

	// Search field.
	SearchActivate key.Binding
	SearchClear    key.Binding

	// Category buttons.
	CategoryLeft  key.Binding
	CategoryRight key.Binding
	CategoryFlip  key.Binding
	AllCategories key.Binding

	ResetAll key.Binding
	Quit     key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevUser: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev user"),
	),
	NextUser: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next user"),
	),
	AllUsers: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "all users"),
	),
	SearchActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	SearchClear: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear search"),
	),
	CategoryLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "prev category"),
	),
	CategoryRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next category"),
	),
	CategoryFlip: key.NewBinding(
		key.WithKeys("t", " "),
		key.WithHelp("t", "toggle category"),
	),
	AllCategories: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "all categories"),
	),
	ResetAll: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset all"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// helpBindings are listed in the footer, in order.
func (k KeyMap) helpBindings() []key.Binding {
	return []key.Binding{
		k.Quit, k.SearchActivate, k.SearchClear, k.PrevUser, k.NextUser,
		k.AllUsers, k.CategoryLeft, k.CategoryRight, k.CategoryFlip,
		k.AllCategories, k.ResetAll,
	}
}
