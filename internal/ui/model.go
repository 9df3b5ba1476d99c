package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nnl3336/QuickNote/internal/config"
	"github.com/nnl3336/QuickNote/internal/i18n"
	"github.com/nnl3336/QuickNote/internal/linkify"
	"github.com/nnl3336/QuickNote/internal/richtext"
	"github.com/nnl3336/QuickNote/internal/search"
	"github.com/nnl3336/QuickNote/internal/session"
	"github.com/nnl3336/QuickNote/internal/store"
)

type Mode int

const (
	ModeList Mode = iota
	ModeEditing
	ModeSearch
	ModeConfirmDelete
	ModeHelp
)

type Model struct {
	store  *store.Store
	config *config.Config

	notes []store.Note // current listing, narrowed by the search query
	all   []store.Note // unfiltered listing

	cursor     int
	listOffset int

	mode Mode
	sess *session.Session

	textarea    textarea.Model
	searchInput textinput.Model
	searchQuery string

	deleteTarget *store.Note

	width  int
	height int

	keys KeyMap

	status string
	err    error
}

type notesLoadedMsg []store.Note
type sessionClosedMsg struct {
	result session.Result
	err    error
}
type noteDeletedMsg struct{}
type errMsg error

func NewModel(st *store.Store, cfg *config.Config) Model {
	t := i18n.T()

	ta := textarea.New()
	ta.Placeholder = t.NotePlaceholder
	ta.ShowLineNumbers = false

	si := textinput.New()
	si.Placeholder = t.SearchPlaceholder
	si.CharLimit = 256

	return Model{
		store:       st,
		config:      cfg,
		keys:        NewKeyMap(),
		textarea:    ta,
		searchInput: si,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadNotes()
}

func (m Model) loadNotes() tea.Cmd {
	return func() tea.Msg {
		notes, err := m.store.List(context.Background())
		if err != nil {
			return errMsg(err)
		}
		return notesLoadedMsg(notes)
	}
}

// closeSession funnels every editor exit through the session's single Exit
// edge. A storage failure is surfaced in the status bar, but the editor
// closes regardless.
func (m Model) closeSession(cancelled bool) tea.Cmd {
	sess := m.sess
	return func() tea.Msg {
		result, err := sess.Exit(context.Background(), cancelled)
		return sessionClosedMsg{result: result, err: err}
	}
}

func (m Model) deleteNote(target *store.Note) tea.Cmd {
	return func() tea.Msg {
		if err := m.store.Delete(context.Background(), target); err != nil {
			return errMsg(err)
		}
		return noteDeletedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(m.contentWidth() - 4)
		m.textarea.SetHeight(m.contentHeight() - 2)

	case notesLoadedMsg:
		m.all = msg
		m.notes = search.Filter(m.all, m.searchQuery)
		if m.cursor >= len(m.notes) {
			m.cursor = 0
			m.listOffset = 0
		}

	case sessionClosedMsg:
		m.sess = nil
		m.mode = ModeList
		m.textarea.Blur()
		if msg.err != nil {
			m.err = msg.err
		}
		return m, m.loadNotes()

	case noteDeletedMsg:
		return m, m.loadNotes()

	case errMsg:
		m.err = msg

	case tea.KeyMsg:
		m.status = ""
		switch m.mode {
		case ModeEditing:
			return m.handleEditingKeys(msg)
		case ModeSearch:
			return m.handleSearchKeys(msg)
		case ModeConfirmDelete:
			return m.handleConfirmDeleteKeys(msg)
		case ModeHelp:
			if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Help) {
				m.mode = ModeList
			}
			return m, nil
		}
		return m.handleListKeys(msg)
	}

	return m, nil
}

func (m Model) selectedNote() *store.Note {
	if m.cursor >= 0 && m.cursor < len(m.notes) {
		return &m.notes[m.cursor]
	}
	return nil
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.listOffset {
				m.listOffset = m.cursor
			}
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.notes)-1 {
			m.cursor++
			listHeight := m.contentHeight() - 2
			if m.cursor >= m.listOffset+listHeight {
				m.listOffset = m.cursor - listHeight + 1
			}
		}

	case key.Matches(msg, m.keys.Enter):
		if selected := m.selectedNote(); selected != nil {
			note := *selected
			m.sess = session.Open(m.store, &note)
			return m.enterEditor()
		}

	case key.Matches(msg, m.keys.New):
		m.sess = session.Open(m.store, nil)
		return m.enterEditor()

	case key.Matches(msg, m.keys.Delete):
		if selected := m.selectedNote(); selected != nil {
			note := *selected
			m.deleteTarget = &note
			m.mode = ModeConfirmDelete
		}

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		m.searchInput.SetValue(m.searchQuery)
		m.searchInput.Focus()

	case key.Matches(msg, m.keys.Copy):
		if selected := m.selectedNote(); selected != nil {
			if err := clipboard.WriteAll(selected.PlainText); err == nil {
				m.status = i18n.T().Copied
			}
		}
	}

	return m, nil
}

func (m Model) enterEditor() (tea.Model, tea.Cmd) {
	m.mode = ModeEditing
	m.textarea.SetValue(m.sess.Document().PlainText())
	return m, m.textarea.Focus()
}

func (m Model) handleEditingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		return m, m.closeSession(false)

	case key.Matches(msg, m.keys.Discard):
		return m, m.closeSession(true)

	default:
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		// The working copy is replaced wholesale on every change; the
		// session never sees a half-mutated document.
		m.sess.SetDocument(richtext.NewDocument(m.textarea.Value()))
		return m, cmd
	}
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeList
		m.searchInput.Blur()
		m.searchQuery = ""
		m.notes = m.all
		m.cursor = 0
		m.listOffset = 0

	case key.Matches(msg, m.keys.Enter):
		m.mode = ModeList
		m.searchInput.Blur()

	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.searchQuery = m.searchInput.Value()
		m.notes = search.Filter(m.all, m.searchQuery)
		m.cursor = 0
		m.listOffset = 0
		return m, cmd
	}

	return m, nil
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = ModeList
		target := m.deleteTarget
		m.deleteTarget = nil
		if target != nil {
			return m, m.deleteNote(target)
		}
	case "n", "N", "esc":
		m.mode = ModeList
		m.deleteTarget = nil
	}
	return m, nil
}

func (m Model) listWidth() int {
	return m.width / 3
}

func (m Model) contentWidth() int {
	return m.width - m.listWidth()
}

func (m Model) contentHeight() int {
	return m.height - 6
}

func (m Model) View() string {
	t := i18n.T()

	if m.width == 0 {
		return ""
	}

	if m.mode == ModeHelp {
		return m.renderHelp()
	}

	if m.mode == ModeConfirmDelete {
		dialog := m.renderConfirmDialog()
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
	}

	header := m.renderHeader(t)
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(t), m.renderContent(t))
	status := m.renderStatus(t)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (m Model) renderHeader(t i18n.Messages) string {
	title := t.Notes
	switch m.mode {
	case ModeEditing:
		if m.sess != nil && m.sess.IsNew() {
			title = t.NewNote
		} else {
			title = t.EditNote
		}
	case ModeSearch:
		title = t.Search
	}
	return HeaderStyle.Width(m.width - 2).Render(TitleStyle.Render(title))
}

func (m Model) renderList(t i18n.Messages) string {
	style := PanelStyle
	if m.mode == ModeList {
		style = ActivePanelStyle
	}

	var items []string
	if m.mode == ModeSearch {
		items = append(items, m.searchInput.View(), "")
	}

	listHeight := m.contentHeight() - 2
	maxLen := m.listWidth() - 10

	if len(m.notes) == 0 {
		items = append(items, MutedStyle.Render(t.NoNotes))
	}

	for i := m.listOffset; i < len(m.notes) && i < m.listOffset+listHeight; i++ {
		title := truncate(firstLine(m.notes[i].PlainText), maxLen)
		if i == m.cursor {
			line := fmt.Sprintf("  ▶ %-*s  ", maxLen, title)
			items = append(items, lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.Color("#000000")).
				Render(line))
		} else {
			items = append(items, fmt.Sprintf("    %-*s  ", maxLen, title))
		}
	}

	for len(items) < listHeight {
		items = append(items, "")
	}

	content := strings.Join(items, "\n")
	return style.Width(m.listWidth() - 2).Height(m.contentHeight()).Render(content)
}

func (m Model) renderContent(t i18n.Messages) string {
	style := PanelStyle
	if m.mode == ModeEditing {
		style = ActivePanelStyle
	}

	var content string
	if m.mode == ModeEditing {
		content = m.textarea.View()
	} else if selected := m.selectedNote(); selected != nil {
		content = renderLinked(selected.PlainText)
		content += "\n\n" + LabelStyle.Render(t.CreatedAt) + " " +
			MutedStyle.Render(selected.CreatedAt.Format("2006-01-02 15:04"))
	} else {
		content = MutedStyle.Render(t.NoNotes)
	}

	return style.Width(m.contentWidth() - 2).Height(m.contentHeight()).Render(content)
}

func (m Model) renderStatus(t i18n.Messages) string {
	mode := t.ModeList
	switch m.mode {
	case ModeEditing:
		mode = t.ModeEdit
	case ModeSearch:
		mode = t.ModeSearch
	}

	parts := []string{
		LabelStyle.Render(mode),
		MutedStyle.Render(fmt.Sprintf("%s %d", t.NotesCount, len(m.notes))),
	}

	if m.searchQuery != "" {
		parts = append(parts, MutedStyle.Render(t.Search+": "+m.searchQuery))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	if m.err != nil {
		parts = append(parts, ErrorStyle.Render(t.Error+": "+m.err.Error()))
	}

	var hints []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, KeyStyle.Render(h.Key)+" "+KeyHintStyle.Render(h.Desc))
	}
	parts = append(parts, strings.Join(hints, "  "))

	return StatusBarStyle.Width(m.width - 2).Render(strings.Join(parts, "  •  "))
}

func (m Model) renderConfirmDialog() string {
	t := i18n.T()

	title := ""
	if m.deleteTarget != nil {
		title = truncate(firstLine(m.deleteTarget.PlainText), 30)
	}

	body := []string{
		LabelStyle.Render(t.DeleteNote),
		"",
		fmt.Sprintf(t.DeleteConfirm, title),
		"",
		MutedStyle.Render("[y] " + t.KeyDelete + "   [n] " + t.EscCancel),
	}
	return DialogStyle.Render(strings.Join(body, "\n"))
}

func (m Model) renderHelp() string {
	var lines []string
	for _, group := range m.keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("  %s  %s",
				KeyStyle.Render(fmt.Sprintf("%-10s", h.Key)),
				KeyHintStyle.Render(h.Desc)))
		}
		lines = append(lines, "")
	}
	dialog := DialogStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
}

// renderLinked styles every detected URL in text the way the stored document
// will carry it: link color plus underline.
func renderLinked(text string) string {
	matches := linkify.Detect(text)
	if len(matches) == 0 {
		return text
	}

	rs := []rune(text)
	var b strings.Builder
	last := 0
	for _, match := range matches {
		b.WriteString(string(rs[last:match.Start]))
		b.WriteString(LinkStyle.Render(string(rs[match.Start:match.End])))
		last = match.End
	}
	b.WriteString(string(rs[last:]))
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(rs[:maxLen])
	}
	return string(rs[:maxLen-3]) + "..."
}
