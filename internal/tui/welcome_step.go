package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pipewright/pipewright/internal/tui/ui"
)

type welcomeStep struct {
	styles ui.Styles
}

func newWelcomeStep() *welcomeStep {
	return &welcomeStep{styles: ui.DefaultStyles()}
}

func (s *welcomeStep) ID() string    { return "welcome" }
func (s *welcomeStep) Title() string { return "Welcome" }
func (s *welcomeStep) Dirty() bool   { return false }
func (s *welcomeStep) Apply() error  { return nil }
func (s *welcomeStep) Init() tea.Cmd { return nil }
func (s *welcomeStep) Update(tea.Msg) tea.Cmd { return nil }

func (s *welcomeStep) View() string {
	title := s.styles.Title.Render("Welcome to Pipewright")
	subtitle := s.styles.Subtitle.Render("Assemble your deployment files, one step at a time")
	body := s.styles.Paragraph.Render(
		"Pipewright walks you through a CI pipeline, a container build script,\n" +
			"cluster manifests, monitoring configuration, and documentation.\n" +
			"Every file starts from a working sample you can adjust or rewrite.\n\n" +
			"Press Enter to begin, or Esc to pick a step from the list.",
	)
	return title + "\n" + subtitle + "\n\n" + body
}
