package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/pipewright/pipewright/internal/export"
	"github.com/pipewright/pipewright/internal/store"
	"github.com/pipewright/pipewright/internal/tui/components"
	"github.com/pipewright/pipewright/internal/tui/ui"
)

// exportStartMsg kicks off the next file of a batch export.
type exportStartMsg struct {
	index int
}

// exportDoneMsg reports the outcome of one file write.
type exportDoneMsg struct {
	index int
	err   error
}

// exportStep lists the generated files and writes them out, one at a time or
// as a staggered batch.
type exportStep struct {
	st       *store.Store
	exporter *export.Exporter
	styles   ui.Styles
	keys     ui.KeyMap

	files []export.File
	list  components.List

	confirming bool
	confirm    components.Confirm

	exporting bool
	exportIdx int
	spin      spinner.Model

	previewing bool
	preview    viewport.Model

	buildErr error
}

func newExportStep(st *store.Store, exporter *export.Exporter) *exportStep {
	s := &exportStep{
		st:       st,
		exporter: exporter,
		styles:   ui.DefaultStyles(),
		keys:     ui.DefaultKeyMap(),
	}

	s.spin = spinner.New()
	s.spin.Spinner = spinner.Dot

	s.preview = viewport.New(76, 18)

	files, err := export.Files(st)
	if err != nil {
		s.buildErr = err
		return s
	}
	s.files = files

	items := make([]components.ListItem, 0, len(files))
	for _, f := range files {
		items = append(items, components.ListItem{
			ID:    f.Path,
			Title: f.Name,
			Meta:  f.Path + " · " + f.SizeLabel,
		})
	}
	s.list = components.NewList(items).WithHeight(len(items))

	s.confirm = components.NewConfirm(
		fmt.Sprintf("Export all %d files to %s?", len(files), exporter.OutDir()),
	).WithYesLabel("Export").WithNoLabel("Back")

	return s
}

func (s *exportStep) modalOpen() bool {
	return s.confirming || s.previewing || s.exporting
}

func (s *exportStep) ID() string    { return "export" }
func (s *exportStep) Title() string { return "Export" }
func (s *exportStep) Dirty() bool   { return false }
func (s *exportStep) Apply() error  { return nil }
func (s *exportStep) Init() tea.Cmd { return nil }

func (s *exportStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 8
		if w < 40 {
			w = 40
		}
		s.preview.Width = w
		return nil

	case spinner.TickMsg:
		if !s.exporting {
			return nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return cmd

	case exportStartMsg:
		return s.writeFileCmd(msg.index)

	case exportDoneMsg:
		return s.handleExportDone(msg)

	case components.ListSelectedMsg:
		return s.exportSingle(msg.Index)

	case components.ConfirmResultMsg:
		s.confirming = false
		if msg.Confirmed {
			return s.startBatch()
		}
		return nil

	case tea.KeyMsg:
		return s.handleKeyMsg(msg)
	}
	return nil
}

func (s *exportStep) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if s.exporting {
		return nil
	}

	if s.confirming {
		var cmd tea.Cmd
		s.confirm, cmd = s.confirm.Update(msg)
		return cmd
	}

	if s.previewing {
		if key.Matches(msg, s.keys.Preview) || key.Matches(msg, s.keys.Nav) {
			s.previewing = false
			return nil
		}
		var cmd tea.Cmd
		s.preview, cmd = s.preview.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, s.keys.ExportAll):
		s.confirming = true
		return nil
	case key.Matches(msg, s.keys.Copy):
		return s.copySelected()
	case key.Matches(msg, s.keys.Preview):
		return s.openPreview()
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return cmd
}

func (s *exportStep) startBatch() tea.Cmd {
	if len(s.files) == 0 {
		return nil
	}
	s.exporting = true
	s.exportIdx = 0
	return tea.Batch(
		s.spin.Tick,
		s.writeFileCmd(0),
		ui.Notify(ui.NoticeInfo, "Export started", fmt.Sprintf("writing %d files to %s", len(s.files), s.exporter.OutDir())),
	)
}

func (s *exportStep) writeFileCmd(index int) tea.Cmd {
	f := s.files[index]
	return func() tea.Msg {
		return exportDoneMsg{index: index, err: s.exporter.ExportFile(f)}
	}
}

func (s *exportStep) handleExportDone(msg exportDoneMsg) tea.Cmd {
	if msg.err != nil {
		s.exporting = false
		return tea.Batch(
			ui.Notify(ui.NoticeInfo, "Export stopped", msg.err.Error()),
			ui.ClearNoticeAfter(3*time.Second),
		)
	}

	// Single-file export.
	if !s.exporting {
		return tea.Batch(
			ui.Notify(ui.NoticeSuccess, "Exported", s.files[msg.index].Path),
			ui.ClearNoticeAfter(2*time.Second),
		)
	}

	next := msg.index + 1
	s.exportIdx = next
	if next >= len(s.files) {
		s.exporting = false
		return tea.Batch(
			ui.Notify(ui.NoticeSuccess, "Exported", fmt.Sprintf("%d files written to %s", len(s.files), s.exporter.OutDir())),
			ui.ClearNoticeAfter(2*time.Second),
		)
	}

	// Stagger the next write. Cosmetic only; ordering comes from the chain.
	delay := s.exporter.Delay()
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return exportStartMsg{index: next}
	})
}

func (s *exportStep) exportSingle(index int) tea.Cmd {
	if index < 0 || index >= len(s.files) {
		return nil
	}
	return s.writeFileCmd(index)
}

func (s *exportStep) copySelected() tea.Cmd {
	item := s.list.SelectedItem()
	if item == nil {
		return nil
	}
	f := s.files[s.list.SelectedIndex()]
	if err := clipboard.WriteAll(f.Content); err != nil {
		return tea.Batch(
			ui.Notify(ui.NoticeInfo, "Copy failed", err.Error()),
			ui.ClearNoticeAfter(2*time.Second),
		)
	}
	return tea.Batch(
		ui.Notify(ui.NoticeSuccess, "Copied", f.Path),
		ui.ClearNoticeAfter(2*time.Second),
	)
}

func (s *exportStep) openPreview() tea.Cmd {
	var readme string
	for _, f := range s.files {
		if f.Path == "README.md" {
			readme = f.Content
		}
	}
	rendered, err := glamour.Render(readme, "dark")
	if err != nil {
		rendered = readme
	}
	s.preview.SetContent(rendered)
	s.preview.GotoTop()
	s.previewing = true
	return nil
}

func (s *exportStep) View() string {
	title := s.styles.Title.Render("Export")

	if s.buildErr != nil {
		return title + "\n" + s.styles.Warning.Render("could not assemble files: "+s.buildErr.Error())
	}

	if s.previewing {
		help := s.styles.Help.Render("↑/↓: scroll  p: close preview")
		return title + "\n" + s.preview.View() + "\n" + help
	}

	if s.confirming {
		return title + "\n\n" + s.confirm.View()
	}

	if s.exporting {
		progress := fmt.Sprintf("%s exporting %d/%d ...", s.spin.View(), s.exportIdx+1, len(s.files))
		return title + "\n" + s.list.View() + "\n\n" + s.styles.Info.Render(progress)
	}

	help := s.styles.Help.Render("enter: export file  a: export all  c: copy  p: preview docs")
	return title + "\n" + s.list.View() + "\n\n" + help
}
