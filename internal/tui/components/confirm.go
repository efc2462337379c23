package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pipewright/pipewright/internal/tui/ui"
)

// ConfirmResultMsg is sent when the user confirms or cancels.
type ConfirmResultMsg struct {
	Confirmed bool
}

// Confirm is a yes/no confirmation dialog.
type Confirm struct {
	message  string
	yesLabel string
	noLabel  string
	focused  bool // true = yes
	width    int
	keys     ui.KeyMap
	styles   ui.Styles
}

// NewConfirm creates a new confirmation dialog.
func NewConfirm(message string) Confirm {
	return Confirm{
		message:  message,
		yesLabel: "Yes",
		noLabel:  "No",
		focused:  true,
		width:    48,
		keys:     ui.DefaultKeyMap(),
		styles:   ui.DefaultStyles(),
	}
}

// WithYesLabel sets the yes button label.
func (c Confirm) WithYesLabel(label string) Confirm {
	c.yesLabel = label
	return c
}

// WithNoLabel sets the no button label.
func (c Confirm) WithNoLabel(label string) Confirm {
	c.noLabel = label
	return c
}

// Message returns the confirmation message.
func (c Confirm) Message() string {
	return c.message
}

// Update implements the component contract.
func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, c.keys.Left), key.Matches(keyMsg, c.keys.Right):
		c.focused = !c.focused
	case key.Matches(keyMsg, c.keys.Select):
		return c, c.resultCmd(c.focused)
	case keyMsg.String() == "y":
		return c, c.resultCmd(true)
	case keyMsg.String() == "n", key.Matches(keyMsg, c.keys.Nav):
		return c, c.resultCmd(false)
	}
	return c, nil
}

func (c Confirm) resultCmd(confirmed bool) tea.Cmd {
	return func() tea.Msg {
		return ConfirmResultMsg{Confirmed: confirmed}
	}
}

// View renders the confirmation dialog.
func (c Confirm) View() string {
	yesStyle := c.styles.Button
	noStyle := c.styles.Button
	if c.focused {
		yesStyle = c.styles.ButtonActive
	} else {
		noStyle = c.styles.ButtonActive
	}

	message := c.styles.Paragraph.Width(c.width).Render(c.message)
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		yesStyle.Render(c.yesLabel), "  ", noStyle.Render(c.noLabel))
	buttonRow := lipgloss.NewStyle().Width(c.width).Align(lipgloss.Center).Render(buttons)

	return lipgloss.JoinVertical(lipgloss.Left, message, "", buttonRow)
}
