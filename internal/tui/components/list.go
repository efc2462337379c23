// Package components provides reusable TUI components built on Bubble Tea.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pipewright/pipewright/internal/tui/ui"
)

// ListItem represents a single item in the list. Meta is an optional right
// hand annotation (the export list uses it for path and size labels).
type ListItem struct {
	ID          string
	Title       string
	Description string
	Meta        string
}

// ListSelectedMsg is sent when an item is selected.
type ListSelectedMsg struct {
	Item  ListItem
	Index int
}

// List is a navigable list component.
type List struct {
	items    []ListItem
	selected int
	height   int
	keys     ui.KeyMap
	styles   ui.Styles
}

// NewList creates a new list with the given items.
func NewList(items []ListItem) List {
	return List{
		items:  items,
		height: 10,
		keys:   ui.DefaultKeyMap(),
		styles: ui.DefaultStyles(),
	}
}

// Items returns all items in the list.
func (l List) Items() []ListItem {
	result := make([]ListItem, len(l.items))
	copy(result, l.items)
	return result
}

// SelectedIndex returns the currently selected index.
func (l List) SelectedIndex() int {
	return l.selected
}

// SelectedItem returns the currently selected item, or nil if empty.
func (l List) SelectedItem() *ListItem {
	if len(l.items) == 0 {
		return nil
	}
	item := l.items[l.selected]
	return &item
}

// SetItems replaces the list items, keeping the cursor in range.
func (l List) SetItems(items []ListItem) List {
	l.items = items
	if l.selected >= len(items) {
		l.selected = 0
	}
	return l
}

// WithHeight returns the list with a new visible height.
func (l List) WithHeight(height int) List {
	l.height = height
	return l
}

// Update implements the component contract.
func (l List) Update(msg tea.Msg) (List, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(l.items) == 0 {
		return l, nil
	}

	switch {
	case l.keys.IsUp(keyMsg):
		if l.selected > 0 {
			l.selected--
		}
	case l.keys.IsDown(keyMsg):
		if l.selected < len(l.items)-1 {
			l.selected++
		}
	case key.Matches(keyMsg, l.keys.Select):
		item := l.items[l.selected]
		index := l.selected
		return l, func() tea.Msg {
			return ListSelectedMsg{Item: item, Index: index}
		}
	}

	return l, nil
}

// View renders the list.
func (l List) View() string {
	if len(l.items) == 0 {
		return l.styles.Help.Render("No items")
	}

	visible := l.height
	if visible > len(l.items) {
		visible = len(l.items)
	}
	start := 0
	if l.selected >= visible {
		start = l.selected - visible + 1
	}
	end := start + visible
	if end > len(l.items) {
		end = len(l.items)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		item := l.items[i]
		line := item.Title
		if item.Meta != "" {
			line += "  " + l.styles.Help.Render(item.Meta)
		}

		if i == l.selected {
			b.WriteString(l.styles.ListItemActive.Render("▸ " + line))
			if item.Description != "" {
				b.WriteString("\n")
				b.WriteString(l.styles.Help.Render("    " + item.Description))
			}
		} else {
			b.WriteString(l.styles.ListItem.Render("  " + line))
		}

		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
