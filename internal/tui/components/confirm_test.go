package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirm(t *testing.T) {
	t.Parallel()

	confirm := NewConfirm("Export all files?")

	assert.Equal(t, "Export all files?", confirm.Message())
	assert.Contains(t, confirm.View(), "Yes")
	assert.Contains(t, confirm.View(), "No")
}

func TestConfirm_CustomLabels(t *testing.T) {
	t.Parallel()

	confirm := NewConfirm("Proceed?").WithYesLabel("Export").WithNoLabel("Back")

	view := confirm.View()
	assert.Contains(t, view, "Export")
	assert.Contains(t, view, "Back")
}

func TestConfirm_EnterConfirmsDefault(t *testing.T) {
	t.Parallel()

	confirm := NewConfirm("Proceed?")
	_, cmd := confirm.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg, ok := cmd().(ConfirmResultMsg)
	require.True(t, ok)
	assert.True(t, msg.Confirmed)
}

func TestConfirm_ToggleThenEnter(t *testing.T) {
	t.Parallel()

	confirm := NewConfirm("Proceed?")
	confirm, cmd := confirm.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Nil(t, cmd)

	_, cmd = confirm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd().(ConfirmResultMsg)
	assert.False(t, msg.Confirmed)
}

func TestConfirm_DirectKeys(t *testing.T) {
	t.Parallel()

	confirm := NewConfirm("Proceed?")

	_, cmd := confirm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	require.NotNil(t, cmd)
	assert.True(t, cmd().(ConfirmResultMsg).Confirmed)

	_, cmd = confirm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	require.NotNil(t, cmd)
	assert.False(t, cmd().(ConfirmResultMsg).Confirmed)
}

func TestConfirm_EscCancels(t *testing.T) {
	t.Parallel()

	confirm := NewConfirm("Proceed?")
	_, cmd := confirm.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.False(t, cmd().(ConfirmResultMsg).Confirmed)
}
