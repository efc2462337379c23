// Package tui implements the step-by-step wizard that assembles deployment
// files from form fields and editable text buffers.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pipewright/pipewright/internal/export"
	"github.com/pipewright/pipewright/internal/settings"
	"github.com/pipewright/pipewright/internal/store"
	"github.com/pipewright/pipewright/internal/tui/ui"
)

// lastStep is the index of the terminal step.
const lastStep = 8

// stepModel is the contract every wizard step implements. Steps are rebuilt
// on navigation, so construction seeds from the shared store and Update never
// sees another step's messages.
type stepModel interface {
	ID() string
	Title() string
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Dirty() bool
	Apply() error
}

// wizardModel is the top-level Bubble Tea model: a fixed ordered sequence of
// steps, a sidebar for direct navigation, and a transient notice footer.
type wizardModel struct {
	st        *store.Store
	exporter  *export.Exporter
	prefs     *settings.Preferences
	prefsPath string

	styles ui.Styles
	keys   ui.KeyMap

	stepIndex int
	step      stepModel
	titles    []string

	navMode   bool
	navCursor int

	notice     *ui.NoticeMsg
	width      int
	height     int
	lastWinMsg tea.WindowSizeMsg
	quitting   bool
}

func newWizardModel(st *store.Store, exporter *export.Exporter, prefs *settings.Preferences, prefsPath string) *wizardModel {
	m := &wizardModel{
		st:        st,
		exporter:  exporter,
		prefs:     prefs,
		prefsPath: prefsPath,
		styles:    ui.DefaultStyles(),
		keys:      ui.DefaultKeyMap(),
	}
	m.titles = m.stepTitles()
	m.step = m.buildStep(0)
	return m
}

func (m *wizardModel) stepTitles() []string {
	titles := []string{"Welcome"}
	for _, d := range editorDomains(m.st) {
		titles = append(titles, d.title)
	}
	return append(titles, "Export", "Settings")
}

// buildStep constructs a fresh step model for the given index, seeded from
// whatever has been applied to the store.
func (m *wizardModel) buildStep(index int) stepModel {
	domains := editorDomains(m.st)
	switch {
	case index <= 0:
		return newWelcomeStep()
	case index <= len(domains):
		return newEditorStep(domains[index-1], m.st)
	case index == len(domains)+1:
		return newExportStep(m.st, m.exporter)
	default:
		return newSettingsStep(m.prefs, m.prefsPath)
	}
}

func (m *wizardModel) Init() tea.Cmd {
	return m.step.Init()
}

// goTo rebuilds the active step at the clamped target index.
func (m *wizardModel) goTo(index int) tea.Cmd {
	if index < 0 {
		index = 0
	}
	if index > lastStep {
		index = lastStep
	}
	if index == m.stepIndex {
		return nil
	}
	m.stepIndex = index
	m.step = m.buildStep(index)
	cmds := []tea.Cmd{m.step.Init()}
	if m.lastWinMsg.Width > 0 {
		cmds = append(cmds, m.step.Update(m.lastWinMsg))
	}
	return tea.Batch(cmds...)
}

// next advances one step, applying pending changes first. Apply happens at
// most once per advance; at the last step it is a no-op.
func (m *wizardModel) next() tea.Cmd {
	var cmds []tea.Cmd
	if m.step.Dirty() {
		if err := m.step.Apply(); err != nil {
			return tea.Batch(
				ui.Notify(ui.NoticeInfo, "Apply failed", err.Error()),
				ui.ClearNoticeAfter(3*time.Second),
			)
		}
		cmds = append(cmds, ui.Notify(ui.NoticeSuccess, "Applied", m.step.Title()))
		cmds = append(cmds, ui.ClearNoticeAfter(2*time.Second))
	}
	cmds = append(cmds, m.goTo(m.stepIndex+1))
	return tea.Batch(cmds...)
}

func (m *wizardModel) apply() tea.Cmd {
	if err := m.step.Apply(); err != nil {
		return tea.Batch(
			ui.Notify(ui.NoticeInfo, "Apply failed", err.Error()),
			ui.ClearNoticeAfter(3*time.Second),
		)
	}
	return tea.Batch(
		ui.Notify(ui.NoticeSuccess, "Applied", m.step.Title()),
		ui.ClearNoticeAfter(2*time.Second),
	)
}

func (m *wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.lastWinMsg = msg
		return m, m.step.Update(msg)

	case ui.NoticeMsg:
		notice := msg
		m.notice = &notice
		return m, nil

	case ui.ClearNoticeMsg:
		m.notice = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.step.Update(msg)
}

func (m *wizardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.navMode {
		return m.handleNavKey(msg)
	}

	// While an export dialog, preview, or running batch is active, every key
	// belongs to the export step. Navigating away mid-batch would drop the
	// pending write chain.
	if es, ok := m.step.(*exportStep); ok && es.modalOpen() {
		return m, m.step.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Nav):
		m.navMode = true
		m.navCursor = m.stepIndex
		return m, nil

	case key.Matches(msg, m.keys.NextStep):
		return m, m.next()

	case key.Matches(msg, m.keys.PrevStep):
		return m, m.goTo(m.stepIndex - 1)

	case key.Matches(msg, m.keys.Apply):
		return m, m.apply()
	}

	// Enter on the welcome step advances.
	if m.stepIndex == 0 && key.Matches(msg, m.keys.Select) {
		return m, m.next()
	}

	return m, m.step.Update(msg)
}

func (m *wizardModel) handleNavKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.IsUp(msg):
		if m.navCursor > 0 {
			m.navCursor--
		}
	case m.keys.IsDown(msg):
		if m.navCursor < lastStep {
			m.navCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.navMode = false
		return m, m.goTo(m.navCursor)
	case key.Matches(msg, m.keys.Nav):
		m.navMode = false
	}
	return m, nil
}

func (m *wizardModel) View() string {
	if m.quitting {
		return ""
	}

	sidebar := m.sidebarView()
	body := m.step.View()
	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", body)

	footer := m.footerView()
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, main, "", footer))
}

func (m *wizardModel) sidebarView() string {
	lines := make([]string, 0, len(m.titles))
	domains := editorDomains(m.st)
	for i, title := range m.titles {
		marker := " "
		if i >= 1 && i <= len(domains) && m.st.Has(domains[i-1].id) {
			marker = "✓"
		}
		label := fmt.Sprintf("%s %d %s", marker, i, title)

		style := m.styles.SidebarItem
		switch {
		case m.navMode && i == m.navCursor:
			style = m.styles.SidebarActive
		case !m.navMode && i == m.stepIndex:
			style = m.styles.SidebarActive
		case marker == "✓":
			style = m.styles.SidebarApplied
		}
		lines = append(lines, style.Render(label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *wizardModel) footerView() string {
	if m.notice != nil {
		style := m.styles.Info
		if m.notice.Kind == ui.NoticeSuccess {
			style = m.styles.Notice
		}
		text := m.notice.Title
		if m.notice.Description != "" {
			text += ": " + m.notice.Description
		}
		return style.Render(text)
	}
	if m.navMode {
		return m.styles.Help.Render("↑/↓: choose step  enter: jump  esc: close")
	}
	return m.styles.Help.Render("esc: step list  ctrl+n/ctrl+p: next/previous  ctrl+s: apply  ctrl+c: quit")
}
