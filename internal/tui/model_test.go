package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/jacksmith/ab/internal/book"
	"github.com/jacksmith/ab/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memBackend keeps the saved snapshot in memory.
type memBackend struct {
	saved   []model.Contact
	saveErr error
}

func (b *memBackend) Load() ([]model.Contact, error) {
	return b.saved, nil
}

func (b *memBackend) Save(contacts []model.Contact) error {
	if b.saveErr != nil {
		return b.saveErr
	}
	b.saved = contacts
	return nil
}

var (
	ann = model.NewContact("Ann", "ann@x", "1")
	bob = model.NewContact("Bob", "bob@y", "2")
	cid = model.NewContact("Cid", "cid@y", "3")
)

// newTestModel returns a sized Model over a book holding contacts.
func newTestModel(t *testing.T, contacts ...model.Contact) (Model, *book.Book, *memBackend) {
	t.Helper()
	backend := &memBackend{saved: contacts}
	b := book.New(backend)
	_, err := b.Restore()
	require.NoError(t, err)

	m := NewModel(b)
	m = update(m, tea.WindowSizeMsg{Width: 80, Height: 30})
	return m, b, backend
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func press(m Model, k tea.KeyType) Model {
	return update(m, tea.KeyMsg{Type: k})
}

func typeText(m Model, s string) Model {
	return update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// fillFields tabs from the search box through the three field inputs.
func fillFields(m Model, name, email, phone string) Model {
	m = press(m, tea.KeyTab)
	m = typeText(m, name)
	m = press(m, tea.KeyTab)
	m = typeText(m, email)
	m = press(m, tea.KeyTab)
	return typeText(m, phone)
}

func TestNewModel(t *testing.T) {
	m, _, _ := newTestModel(t, ann, bob)

	assert.Equal(t, FocusSearch, m.focus)
	assert.Equal(t, ModeBrowse, m.mode)
	assert.Equal(t, -1, m.cursor)
	assert.Len(t, m.entries, 2)
}

func TestFocusCycles(t *testing.T) {
	m, _, _ := newTestModel(t)

	for _, want := range []Focus{FocusName, FocusEmail, FocusPhone, FocusList, FocusSearch} {
		m = press(m, tea.KeyTab)
		assert.Equal(t, want, m.focus)
	}

	m = press(m, tea.KeyShiftTab)
	assert.Equal(t, FocusList, m.focus)
}

func TestQuit(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m, _, _ := newTestModel(t)
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestAdd(t *testing.T) {
	m, b, backend := newTestModel(t)

	m = fillFields(m, "Ann", "ann@x", "1")
	m = press(m, tea.KeyCtrlA)

	assert.Equal(t, []model.Contact{ann}, b.Contacts())
	assert.Equal(t, []model.Contact{ann}, backend.saved)
	assert.Len(t, m.entries, 1)
	assert.Empty(t, m.inputs[FocusName].Value())
	assert.False(t, m.failed)
	assert.Contains(t, m.status, "Added Ann")
}

func TestAddMissingField(t *testing.T) {
	m, b, _ := newTestModel(t)

	m = fillFields(m, "Ann", "", "1")
	m = press(m, tea.KeyCtrlA)

	assert.Equal(t, 0, b.Len())
	assert.True(t, m.failed)
	assert.Contains(t, m.status, "please fill in all fields")
	// Inputs are kept so the user can fix them.
	assert.Equal(t, "Ann", m.inputs[FocusName].Value())
}

func TestAddSaveFailure(t *testing.T) {
	m, b, backend := newTestModel(t)
	backend.saveErr = errors.New("disk full")

	m = fillFields(m, "Ann", "ann@x", "1")
	m = press(m, tea.KeyCtrlA)

	assert.Equal(t, 1, b.Len())
	assert.Len(t, m.entries, 1)
	assert.True(t, m.failed)
	assert.Contains(t, m.status, "error saving contacts")
}

func TestSearchFilters(t *testing.T) {
	m, _, _ := newTestModel(t, ann, bob, cid)

	m = typeText(m, "BO")
	require.Len(t, m.entries, 1)
	assert.Equal(t, bob, m.entries[0].Contact)

	m = press(m, tea.KeyBackspace)
	m = press(m, tea.KeyBackspace)
	assert.Len(t, m.entries, 3)
}

func TestMoveCursorCopiesFields(t *testing.T) {
	m, _, _ := newTestModel(t, ann, bob)

	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyDown)
	assert.Equal(t, 1, m.cursor)
	assert.Equal(t, "Bob", m.inputs[FocusName].Value())
	assert.Equal(t, "bob@y", m.inputs[FocusEmail].Value())
	assert.Equal(t, "2", m.inputs[FocusPhone].Value())

	// Stops at the last row.
	m = press(m, tea.KeyDown)
	assert.Equal(t, 1, m.cursor)

	m = press(m, tea.KeyUp)
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, "Ann", m.inputs[FocusName].Value())
}

func TestDeleteSelected(t *testing.T) {
	m, b, _ := newTestModel(t, ann, bob)

	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyCtrlD)

	assert.Equal(t, []model.Contact{bob}, b.Contacts())
	assert.Equal(t, -1, m.cursor)
	assert.Contains(t, m.status, "Deleted Ann")
}

func TestDeleteWithoutSelection(t *testing.T) {
	m, b, _ := newTestModel(t, ann)

	m = press(m, tea.KeyCtrlD)

	assert.Equal(t, 1, b.Len())
	assert.True(t, m.failed)
	assert.Contains(t, m.status, "please select a contact")
}

func TestDeleteInFilteredView(t *testing.T) {
	m, b, _ := newTestModel(t, ann, bob, cid)

	m = typeText(m, "@y")
	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyCtrlD)

	assert.Equal(t, []model.Contact{ann, bob}, b.Contacts())
	// Search stays applied.
	require.Len(t, m.entries, 1)
	assert.Equal(t, bob, m.entries[0].Contact)
}

func TestEditSelected(t *testing.T) {
	m, b, _ := newTestModel(t, ann, bob)

	m = press(m, tea.KeyDown)
	m.inputs[FocusName].SetValue("Anne")
	m = press(m, tea.KeyCtrlE)

	assert.Equal(t, []model.Contact{model.NewContact("Anne", "ann@x", "1"), bob}, b.Contacts())
	assert.False(t, m.failed)
	assert.Contains(t, m.status, "Updated Anne")
}

func TestEditEmptyField(t *testing.T) {
	m, b, _ := newTestModel(t, ann)

	m = press(m, tea.KeyDown)
	m.inputs[FocusPhone].SetValue("")
	m = press(m, tea.KeyCtrlE)

	assert.Equal(t, []model.Contact{ann}, b.Contacts())
	assert.True(t, m.failed)
	assert.Contains(t, m.status, "phone")
	// Selection survives a rejected edit.
	assert.Equal(t, 0, m.cursor)
}

func TestClearConfirm(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		m, b, _ := newTestModel(t, ann, bob)

		m = press(m, tea.KeyCtrlX)
		assert.Equal(t, ModeConfirmClear, m.mode)
		assert.Contains(t, m.status, "Delete all 2 contacts?")

		m = typeText(m, "n")
		assert.Equal(t, ModeBrowse, m.mode)
		assert.Equal(t, 2, b.Len())
		assert.Contains(t, m.status, "cancelled")
	})

	t.Run("accepted", func(t *testing.T) {
		m, b, backend := newTestModel(t, ann, bob)

		m = press(m, tea.KeyCtrlX)
		m = typeText(m, "y")

		assert.Equal(t, ModeBrowse, m.mode)
		assert.Equal(t, 0, b.Len())
		assert.Empty(t, backend.saved)
		assert.Empty(t, m.entries)
		assert.Contains(t, m.status, "Deleted 2 contacts")
	})
}

func TestSortCycles(t *testing.T) {
	zed := model.NewContact("Zed", "a@z", "0")
	m, b, _ := newTestModel(t, bob, zed, ann)

	m = press(m, tea.KeyCtrlS)
	assert.Equal(t, []model.Contact{ann, bob, zed}, b.Contacts())
	assert.Contains(t, m.status, "Sorted by name")

	m = press(m, tea.KeyCtrlS)
	assert.Equal(t, []model.Contact{zed, ann, bob}, b.Contacts())
	assert.Contains(t, m.status, "Sorted by email")

	m = press(m, tea.KeyCtrlS)
	assert.Equal(t, []model.Contact{zed, ann, bob}, b.Contacts())
	assert.Contains(t, m.status, "Sorted by phone")
}

func TestExportThenImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	m, b, _ := newTestModel(t, ann, bob)

	m = press(m, tea.KeyCtrlW)
	assert.Equal(t, ModeExportPath, m.mode)
	m = typeText(m, path)
	m = press(m, tea.KeyEnter)

	assert.Equal(t, ModeBrowse, m.mode)
	assert.Contains(t, m.status, "Exported 2 contacts")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Ann,ann@x,1\nBob,bob@y,2\n", string(data))

	m = press(m, tea.KeyCtrlO)
	assert.Equal(t, ModeImportPath, m.mode)
	m = typeText(m, path)
	m = press(m, tea.KeyEnter)

	assert.Equal(t, 4, b.Len())
	assert.Len(t, m.entries, 4)
	assert.Contains(t, m.status, "Imported 2 contacts (0 lines skipped)")
}

func TestImportMissingFile(t *testing.T) {
	m, b, _ := newTestModel(t, ann)

	m = press(m, tea.KeyCtrlO)
	m = typeText(m, filepath.Join(t.TempDir(), "missing.txt"))
	m = press(m, tea.KeyEnter)

	assert.Equal(t, 1, b.Len())
	assert.True(t, m.failed)
	assert.Contains(t, m.status, "error reading from file")
}

func TestPromptCancel(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(m, tea.KeyCtrlO)
	m = typeText(m, "x.txt")
	m = press(m, tea.KeyEsc)

	assert.Equal(t, ModeBrowse, m.mode)
	assert.Empty(t, m.status)
	// Esc closed the prompt without quitting; typing reaches the search box.
	m = typeText(m, "q")
	assert.Equal(t, "q", m.inputs[FocusSearch].Value())
}

func TestView(t *testing.T) {
	m, _, _ := newTestModel(t, ann, bob)

	view := m.View()
	assert.Contains(t, view, "Address Book (2 contacts)")
	assert.Contains(t, view, "Ann | ann@x | 1")
	assert.Contains(t, view, "Bob | bob@y | 2")
	assert.Contains(t, view, "ctrl+a")

	m = typeText(m, "zzz")
	assert.Contains(t, m.View(), "No matching contacts")
}

func TestViewScrollsToCursor(t *testing.T) {
	var contacts []model.Contact
	for i := range 20 {
		contacts = append(contacts, model.NewContact("Name"+strings.Repeat("x", i), "e", "p"))
	}
	m, _, _ := newTestModel(t, contacts...)
	m = update(m, tea.WindowSizeMsg{Width: 80, Height: chrome + minListRows})

	for range 10 {
		m = press(m, tea.KeyDown)
	}
	assert.Equal(t, 9, m.cursor)
	assert.Equal(t, 7, m.offset)

	view := m.View()
	assert.Contains(t, view, "> 10  ")
	assert.NotContains(t, view, " 1  Name |")
}

func TestKeyMapsSatisfyHelp(t *testing.T) {
	var _ help.KeyMap = BrowseKeyMap()
	var _ help.KeyMap = PromptKeyMap()
	assert.NotEmpty(t, BrowseKeyMap().FullHelp())
}

func TestProgramAddFlow(t *testing.T) {
	b := book.New(&memBackend{})
	tm := teatest.NewTestModel(t, NewModel(b), teatest.WithInitialTermSize(80, 24))

	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("Ann")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("ann@x")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("1")
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlA})
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final := tm.FinalModel(t).(Model)
	assert.Equal(t, []model.Contact{ann}, b.Contacts())
	assert.Contains(t, final.status, "Added Ann")
	assert.Len(t, final.entries, 1)
}
