package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pipewright/pipewright/internal/store"
	"github.com/pipewright/pipewright/internal/tui/ui"
)

// editorStep is the generic per-domain editor: a set of named form fields and
// one or more derived text buffers. Field changes re-derive every buffer from
// the full current settings; a direct buffer edit overwrites only that buffer.
// Either kind of change marks the step dirty until it is applied.
type editorStep struct {
	spec   domainSpec
	st     *store.Store
	styles ui.Styles
	keys   ui.KeyMap

	inputs    []textinput.Model
	buffers   []textarea.Model
	focus     int // 0..len(inputs)+len(buffers)-1
	activeBuf int
	width     int
	dirty     bool
}

func newEditorStep(spec domainSpec, st *store.Store) *editorStep {
	s := &editorStep{
		spec:   spec,
		st:     st,
		styles: ui.DefaultStyles(),
		keys:   ui.DefaultKeyMap(),
		width:  80,
	}

	// Seed settings from the store once, at construction.
	applied := st.GetConfig(spec.id)

	s.inputs = make([]textinput.Model, len(spec.fields))
	for i, f := range spec.fields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.CharLimit = 0
		in.Width = 48
		if v, ok := applied.Settings[f.key]; ok {
			in.SetValue(v)
		} else {
			in.SetValue(spec.defaults[f.key])
		}
		s.inputs[i] = in
	}

	seeded := s.settingsMap()
	s.buffers = make([]textarea.Model, len(spec.buffers))
	for i, b := range spec.buffers {
		ta := textarea.New()
		ta.SetWidth(72)
		ta.SetHeight(12)
		if text, ok := applied.Buffers[b.name]; ok {
			ta.SetValue(text)
		} else if text, err := b.render(seeded); err == nil {
			ta.SetValue(text)
		}
		s.buffers[i] = ta
	}

	if len(s.inputs) > 0 {
		s.inputs[0].Focus()
	} else if len(s.buffers) > 0 {
		s.buffers[0].Focus()
	}

	return s
}

func (s *editorStep) ID() string {
	return s.spec.id
}

func (s *editorStep) Title() string {
	return s.spec.title
}

func (s *editorStep) Dirty() bool {
	return s.dirty
}

func (s *editorStep) Init() tea.Cmd {
	return textinput.Blink
}

// Apply commits the current settings and buffers to the shared store and
// clears the dirty flag.
func (s *editorStep) Apply() error {
	cfg := store.Empty()
	cfg.Settings = s.settingsMap()
	for i, b := range s.spec.buffers {
		cfg.Buffers[b.name] = s.buffers[i].Value()
	}
	s.st.SetConfig(s.spec.id, cfg)
	s.dirty = false
	return nil
}

func (s *editorStep) settingsMap() map[string]string {
	m := make(map[string]string, len(s.spec.fields))
	for i, f := range s.spec.fields {
		m[f.key] = s.inputs[i].Value()
	}
	return m
}

// rederiveBuffers recomputes every buffer from the full current settings in
// one pass. A buffer whose formatter fails keeps its previous text.
func (s *editorStep) rederiveBuffers() {
	m := s.settingsMap()
	for i, b := range s.spec.buffers {
		if text, err := b.render(m); err == nil {
			s.buffers[i].SetValue(text)
		}
	}
}

func (s *editorStep) focusables() int {
	return len(s.inputs) + len(s.buffers)
}

func (s *editorStep) setFocus(idx int) tea.Cmd {
	n := s.focusables()
	if n == 0 {
		return nil
	}
	idx = ((idx % n) + n) % n
	s.focus = idx

	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	for i := range s.buffers {
		s.buffers[i].Blur()
	}

	if idx < len(s.inputs) {
		return s.inputs[idx].Focus()
	}
	s.activeBuf = idx - len(s.inputs)
	return s.buffers[s.activeBuf].Focus()
}

func (s *editorStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		for i := range s.buffers {
			w := msg.Width - 32
			if w < 40 {
				w = 40
			}
			s.buffers[i].SetWidth(w)
		}
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.NextField):
			return s.setFocus(s.focus + 1)
		case key.Matches(msg, s.keys.PrevField):
			return s.setFocus(s.focus - 1)
		}
		return s.forwardKey(msg)
	}
	return nil
}

func (s *editorStep) forwardKey(msg tea.KeyMsg) tea.Cmd {
	if s.focus < len(s.inputs) {
		before := s.inputs[s.focus].Value()
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		if s.inputs[s.focus].Value() != before {
			s.rederiveBuffers()
			s.dirty = true
		}
		return cmd
	}

	if len(s.buffers) > 0 {
		idx := s.focus - len(s.inputs)
		before := s.buffers[idx].Value()
		var cmd tea.Cmd
		s.buffers[idx], cmd = s.buffers[idx].Update(msg)
		if s.buffers[idx].Value() != before {
			s.dirty = true
		}
		return cmd
	}
	return nil
}

func (s *editorStep) View() string {
	var b strings.Builder

	b.WriteString(s.styles.Title.Render(s.spec.title))
	b.WriteString("\n")
	b.WriteString(s.styles.Help.Render(s.spec.blurb))
	b.WriteString("\n\n")

	for i, f := range s.spec.fields {
		label := s.styles.FieldLabel
		if i == s.focus {
			label = s.styles.FieldFocused
		}
		b.WriteString(label.Render(f.label))
		b.WriteString(s.inputs[i].View())
		b.WriteString("\n")
	}

	if len(s.spec.buffers) > 0 {
		b.WriteString("\n")
		b.WriteString(s.bufferTabs())
		b.WriteString("\n")
		b.WriteString(s.buffers[s.activeBuf].View())
		b.WriteString("\n")
	}

	if s.dirty {
		b.WriteString("\n")
		b.WriteString(s.styles.BufferDirty.Render("● unsaved changes"))
	}

	b.WriteString("\n")
	b.WriteString(s.styles.Help.Render("tab: move focus  ctrl+s: apply  ctrl+n: next step"))
	return b.String()
}

func (s *editorStep) bufferTabs() string {
	names := make([]string, len(s.spec.buffers))
	for i, b := range s.spec.buffers {
		name := b.filename
		if i == s.activeBuf {
			names[i] = s.styles.BufferTitle.Render("[" + name + "]")
		} else {
			names[i] = s.styles.Help.Render(" " + name + " ")
		}
	}
	return strings.Join(names, " ")
}
