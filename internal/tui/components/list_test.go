package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewList(t *testing.T) {
	t.Parallel()

	items := []ListItem{
		{ID: "1", Title: "First", Description: "First item"},
		{ID: "2", Title: "Second", Description: "Second item"},
	}

	list := NewList(items)

	assert.Equal(t, 2, len(list.Items()))
	assert.Equal(t, 0, list.SelectedIndex())
	assert.Equal(t, "1", list.SelectedItem().ID)
}

func TestList_EmptyList(t *testing.T) {
	t.Parallel()

	list := NewList([]ListItem{})

	assert.Equal(t, 0, len(list.Items()))
	assert.Equal(t, 0, list.SelectedIndex())
	assert.Nil(t, list.SelectedItem())
}

func TestList_Navigation(t *testing.T) {
	t.Parallel()

	items := []ListItem{
		{ID: "1", Title: "First"},
		{ID: "2", Title: "Second"},
		{ID: "3", Title: "Third"},
	}

	list := NewList(items)

	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, list.SelectedIndex())

	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, list.SelectedIndex())

	// Stay at end
	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, list.SelectedIndex())

	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, list.SelectedIndex())
}

func TestList_VimNavigation(t *testing.T) {
	t.Parallel()

	items := []ListItem{
		{ID: "1", Title: "First"},
		{ID: "2", Title: "Second"},
	}

	list := NewList(items)

	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, list.SelectedIndex())

	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, list.SelectedIndex())
}

func TestList_Select(t *testing.T) {
	t.Parallel()

	items := []ListItem{
		{ID: "1", Title: "First"},
		{ID: "2", Title: "Second"},
	}

	list := NewList(items)
	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := list.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg, ok := cmd().(ListSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, "2", msg.Item.ID)
	assert.Equal(t, 1, msg.Index)
}

func TestList_SetItems_KeepsCursorInRange(t *testing.T) {
	t.Parallel()

	list := NewList([]ListItem{
		{ID: "1", Title: "First"},
		{ID: "2", Title: "Second"},
		{ID: "3", Title: "Third"},
	})
	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyDown})
	list, _ = list.Update(tea.KeyMsg{Type: tea.KeyDown})

	list = list.SetItems([]ListItem{{ID: "only", Title: "Only"}})

	assert.Equal(t, 0, list.SelectedIndex())
	assert.Equal(t, "only", list.SelectedItem().ID)
}

func TestList_View_ShowsMetaAndMarker(t *testing.T) {
	t.Parallel()

	list := NewList([]ListItem{
		{ID: "1", Title: "pipeline", Meta: ".gitlab-ci.yml · 1 KB"},
		{ID: "2", Title: "docs"},
	})

	view := list.View()

	assert.Contains(t, view, "▸")
	assert.Contains(t, view, "pipeline")
	assert.Contains(t, view, ".gitlab-ci.yml")
}
