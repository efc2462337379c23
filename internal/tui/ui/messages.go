package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// NoticeKind distinguishes informational from success notices. There is no
// error kind; failures surface through the same transient channel.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
)

// NoticeMsg shows a transient title/description pair in the wizard footer.
type NoticeMsg struct {
	Kind        NoticeKind
	Title       string
	Description string
}

// ClearNoticeMsg removes the current notice.
type ClearNoticeMsg struct{}

// Notify creates a command that shows a notice.
func Notify(kind NoticeKind, title, description string) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Kind: kind, Title: title, Description: description}
	}
}

// ClearNoticeAfter schedules the notice to disappear.
func ClearNoticeAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearNoticeMsg{}
	})
}
