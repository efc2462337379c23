package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pipewright/pipewright/internal/settings"
	"github.com/pipewright/pipewright/internal/tui/ui"
)

// settingsStep edits display and export preferences. It is the terminal step
// of the wizard; applying writes the preferences file.
type settingsStep struct {
	prefs     *settings.Preferences
	prefsPath string
	styles    ui.Styles
	keys      ui.KeyMap

	inputs []textinput.Model
	labels []string
	focus  int
	dirty  bool
}

func newSettingsStep(prefs *settings.Preferences, prefsPath string) *settingsStep {
	s := &settingsStep{
		prefs:     prefs,
		prefsPath: prefsPath,
		styles:    ui.DefaultStyles(),
		keys:      ui.DefaultKeyMap(),
		labels:    []string{"Theme", "Output directory", "Export delay (ms)"},
	}

	values := []string{
		prefs.UI["theme"],
		prefs.Export["output_dir"],
		prefs.Export["export_delay_ms"],
	}
	s.inputs = make([]textinput.Model, len(values))
	for i, v := range values {
		in := textinput.New()
		in.Width = 32
		in.SetValue(v)
		s.inputs[i] = in
	}
	s.inputs[0].Focus()
	return s
}

func (s *settingsStep) ID() string    { return "settings" }
func (s *settingsStep) Title() string { return "Settings" }
func (s *settingsStep) Dirty() bool   { return s.dirty }
func (s *settingsStep) Init() tea.Cmd { return textinput.Blink }

// Apply writes the edited values back into the shared preferences and persists
// them to disk.
func (s *settingsStep) Apply() error {
	s.prefs.UI["theme"] = s.inputs[0].Value()
	s.prefs.Export["output_dir"] = s.inputs[1].Value()
	s.prefs.Export["export_delay_ms"] = s.inputs[2].Value()
	if err := s.prefs.Save(s.prefsPath); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

func (s *settingsStep) setFocus(idx int) tea.Cmd {
	n := len(s.inputs)
	idx = ((idx % n) + n) % n
	s.focus = idx
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	return s.inputs[idx].Focus()
}

func (s *settingsStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, s.keys.NextField):
		return s.setFocus(s.focus + 1)
	case key.Matches(keyMsg, s.keys.PrevField):
		return s.setFocus(s.focus - 1)
	}

	before := s.inputs[s.focus].Value()
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(keyMsg)
	if s.inputs[s.focus].Value() != before {
		s.dirty = true
	}
	return cmd
}

func (s *settingsStep) View() string {
	var b strings.Builder

	b.WriteString(s.styles.Title.Render("Settings"))
	b.WriteString("\n")
	b.WriteString(s.styles.Help.Render("Display and export preferences, saved to " + s.prefsPath))
	b.WriteString("\n\n")

	for i, label := range s.labels {
		style := s.styles.FieldLabel
		if i == s.focus {
			style = s.styles.FieldFocused
		}
		b.WriteString(style.Render(label))
		b.WriteString(s.inputs[i].View())
		b.WriteString("\n")
	}

	if s.dirty {
		b.WriteString("\n")
		b.WriteString(s.styles.BufferDirty.Render("● unsaved changes"))
	}

	b.WriteString("\n")
	b.WriteString(s.styles.Help.Render("tab: move focus  ctrl+s: save  ctrl+p: previous step"))
	return b.String()
}
