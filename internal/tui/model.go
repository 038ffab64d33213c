// Package tui is the interactive front end for the address book.
//
// The screen has a search box, three field inputs, and the contact list.
// Every store operation runs inside Update; the model never touches the
// Book from another goroutine.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jacksmith/ab/internal/book"
	"github.com/jacksmith/ab/internal/model"
)

// Focus identifies the component receiving key input.
type Focus int

const (
	FocusSearch Focus = iota
	FocusName
	FocusEmail
	FocusPhone
	FocusList

	focusCount
)

var focusLabels = [...]string{"Search", "Name", "Email", "Phone"}

// Mode is the screen state.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeConfirmClear
	ModeImportPath
	ModeExportPath
)

// chrome is the number of lines used by everything except the list rows:
// title, four inputs, blank line, list border, status, help.
const chrome = 10

// minListRows is the smallest number of list rows rendered.
const minListRows = 3

// Model is the root Bubble Tea model.
type Model struct {
	book    *book.Book
	inputs  [FocusList]textinput.Model
	path    textinput.Model
	mode    Mode
	focus   Focus
	entries []book.Entry
	cursor  int // position in entries, -1 when nothing is selected
	offset  int // first visible row
	sortIdx int // next field in model.Fields to sort by
	status  string
	failed  bool
	keys    browseKeys
	help    help.Model
	width   int
	height  int
}

// NewModel returns a Model showing every contact in b, with the search box
// focused and nothing selected.
func NewModel(b *book.Book) Model {
	m := Model{
		book:   b,
		path:   textinput.New(),
		cursor: -1,
		keys:   BrowseKeyMap(),
		help:   help.New(),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = strings.ToLower(focusLabels[i])
		m.inputs[i] = ti
	}
	m.path.Prompt = "File: "
	m.inputs[FocusSearch].Focus()
	m.refresh()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		for i := range m.inputs {
			m.inputs[i].Width = max(msg.Width-labelStyle.GetWidth()-1, 1)
		}
		m.scrollToCursor()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeConfirmClear:
			return m.handleConfirmKey(msg)
		case ModeImportPath, ModeExportPath:
			return m.handlePathKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes key messages on the main screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.add()
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		m.edit()
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		m.delete()
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.mode = ModeConfirmClear
		m.setStatus(fmt.Sprintf("Delete all %d contacts? (y/n)", m.book.Len()), false)
		return m, nil
	case key.Matches(msg, m.keys.Sort):
		m.sort()
		return m, nil
	case key.Matches(msg, m.keys.Import):
		return m, m.openPrompt(ModeImportPath)
	case key.Matches(msg, m.keys.Export):
		return m, m.openPrompt(ModeExportPath)
	}

	if m.focus == FocusList {
		return m, nil
	}

	before := m.inputs[FocusSearch].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[FocusSearch].Value() != before {
		m.cursor = -1
		m.refresh()
	}
	return m, cmd
}

// handleConfirmKey answers the clear-all question.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeBrowse
	n := m.book.Len()

	cleared, err := m.book.ClearAll(key.Matches(msg, ConfirmKeyMap().Accept))
	if !cleared {
		m.setStatus("Clear cancelled.", false)
		return m, nil
	}

	m.clearFields()
	m.refresh()
	m.report(err, fmt.Sprintf("Deleted %d contacts.", n))
	return m, nil
}

// handlePathKey drives the import/export file prompt.
func (m Model) handlePathKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := PromptKeyMap()
	switch {
	case key.Matches(msg, keys.Cancel):
		m.closePrompt()
		m.setStatus("", false)
		return m, nil
	case key.Matches(msg, keys.Accept):
		path := strings.TrimSpace(m.path.Value())
		mode := m.mode
		m.closePrompt()
		if path == "" {
			m.setStatus("no file given", true)
			return m, nil
		}
		if mode == ModeImportPath {
			m.importFile(path)
		} else {
			m.exportFile(path)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	return m, cmd
}

func (m *Model) add() {
	name, email, phone := m.fieldValues()
	contacts, err := m.book.Create(name, email, phone)
	if contacts != nil {
		m.clearFields()
		m.refresh()
	}
	m.report(err, "Added "+name+".")
}

func (m *Model) edit() {
	name, email, phone := m.fieldValues()
	err := m.book.Edit(m.selection(), name, email, phone)

	var serr *book.SelectionError
	var verr *book.ValidationError
	if !errors.As(err, &serr) && !errors.As(err, &verr) {
		m.cursor = -1
		m.clearFields()
		m.refresh()
	}
	m.report(err, "Updated "+name+".")
}

func (m *Model) delete() {
	sel := m.selection()
	err := m.book.Delete(sel)

	var serr *book.SelectionError
	if !errors.As(err, &serr) {
		m.cursor = -1
		m.clearFields()
		m.refresh()
	}
	m.report(err, "Deleted "+sel.Contact.Name+".")
}

func (m *Model) sort() {
	field := model.Fields[m.sortIdx]
	m.sortIdx = (m.sortIdx + 1) % len(model.Fields)

	_, err := m.book.SortBy(field)
	m.cursor = -1
	m.refresh()
	m.report(err, "Sorted by "+strings.ToLower(field.Title())+".")
}

func (m *Model) importFile(path string) {
	res, err := m.book.ImportFile(path)
	m.refresh()
	m.report(err, fmt.Sprintf("Imported %d contacts (%d lines skipped).", res.Imported, res.Skipped))
}

func (m *Model) exportFile(path string) {
	n, err := m.book.ExportFile(path)
	m.report(err, fmt.Sprintf("Exported %d contacts to %s.", n, path))
}

// selection returns the highlighted entry, or an index of -1 when nothing
// is selected so the book reports it.
func (m *Model) selection() book.Selection {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return book.Selection{Index: -1}
	}
	return m.entries[m.cursor].Selection()
}

// refresh rebuilds the visible entries from the current search text.
func (m *Model) refresh() {
	m.entries = m.book.View(m.inputs[FocusSearch].Value())
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	m.scrollToCursor()
}

// moveCursor changes the selection and copies the selected contact into
// the field inputs.
func (m *Model) moveCursor(delta int) {
	if len(m.entries) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.entries)-1)
	m.scrollToCursor()

	c := m.entries[m.cursor].Contact
	m.inputs[FocusName].SetValue(c.Name)
	m.inputs[FocusEmail].SetValue(c.Email)
	m.inputs[FocusPhone].SetValue(c.Phone)
}

func (m *Model) scrollToCursor() {
	rows := m.listRows()
	if m.cursor < m.offset {
		m.offset = max(m.cursor, 0)
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset > max(len(m.entries)-rows, 0) {
		m.offset = max(len(m.entries)-rows, 0)
	}
}

// listRows returns how many list rows fit on screen.
func (m Model) listRows() int {
	if m.height == 0 {
		return max(len(m.entries), minListRows)
	}
	return max(m.height-chrome, minListRows)
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if Focus(i) == f {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) openPrompt(mode Mode) tea.Cmd {
	m.mode = mode
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.path.SetValue("")
	if mode == ModeImportPath {
		m.setStatus("Import contacts from:", false)
	} else {
		m.setStatus("Export contacts to:", false)
	}
	return m.path.Focus()
}

func (m *Model) closePrompt() {
	m.mode = ModeBrowse
	m.path.Blur()
	m.setFocus(m.focus)
}

func (m *Model) fieldValues() (name, email, phone string) {
	return m.inputs[FocusName].Value(), m.inputs[FocusEmail].Value(), m.inputs[FocusPhone].Value()
}

func (m *Model) clearFields() {
	m.inputs[FocusName].Reset()
	m.inputs[FocusEmail].Reset()
	m.inputs[FocusPhone].Reset()
}

func (m *Model) setStatus(s string, failed bool) {
	m.status = s
	m.failed = failed
}

// report shows err in the status line, or ok when err is nil.
func (m *Model) report(err error, ok string) {
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(ok, false)
}

// View renders the inputs, contact list, status line, and help bar.
func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Address Book (%d contacts)", m.book.Len())
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	for i := range m.inputs {
		label := labelStyle
		if Focus(i) == m.focus && m.mode == ModeBrowse {
			label = focusedLabel
		}
		b.WriteString(label.Render(focusLabels[i]+":") + " " + m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	list := UnfocusedBorder()
	if m.focus == FocusList {
		list = FocusedBorder()
	}
	if m.width > 2 {
		list = list.Width(m.width - 2)
	}
	b.WriteString(list.Render(m.viewList()))
	b.WriteString("\n")

	b.WriteString(m.viewStatus())
	b.WriteString("\n")

	var helpView string
	switch m.mode {
	case ModeConfirmClear:
		helpView = m.help.View(ConfirmKeyMap())
	case ModeImportPath, ModeExportPath:
		helpView = m.help.View(PromptKeyMap())
	default:
		helpView = m.help.View(m.keys)
	}
	b.WriteString(helpView)

	return b.String()
}

func (m Model) viewList() string {
	if len(m.entries) == 0 {
		if m.inputs[FocusSearch].Value() != "" {
			return dimStyle.Render("No matching contacts")
		}
		return dimStyle.Render("No contacts")
	}

	end := min(m.offset+m.listRows(), len(m.entries))
	width := len(fmt.Sprint(len(m.entries)))
	rows := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		line := fmt.Sprintf("%*d  %s", width, i+1, m.entries[i].Contact)
		if i == m.cursor {
			rows = append(rows, cursorStyle.Render("> "+line))
		} else {
			rows = append(rows, rowStyle.Render("  "+line))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewStatus() string {
	switch {
	case m.mode == ModeImportPath || m.mode == ModeExportPath:
		return m.status + " " + m.path.View()
	case m.failed:
		return errorStyle.Render(m.status)
	default:
		return okStyle.Render(m.status)
	}
}
