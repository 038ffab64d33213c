package book

import (
	"iter"
	"strings"

	"github.com/jacksmith/ab/internal/model"
)

// Entry is one row of a view: a contact and its storage index at the time
// the view was taken.
type Entry struct {
	Index   int
	Contact model.Contact
}

// Selection identifies the contact a user picked from a view.
// It records both the position and the value seen, so a selection made
// against a filtered or outdated view can never hit a different contact.
type Selection struct {
	Index   int
	Contact model.Contact
}

// Selection returns a Selection for this entry.
func (e Entry) Selection() Selection {
	return Selection{Index: e.Index, Contact: e.Contact}
}

// Search yields, in stored order, every contact whose name, email, or phone
// contains query case-insensitively. An empty query matches everything.
// The sequence reads the current contacts each time it is ranged over.
func (b *Book) Search(query string) iter.Seq[model.Contact] {
	return func(yield func(model.Contact) bool) {
		for _, e := range b.matches(query) {
			if !yield(e.Contact) {
				return
			}
		}
	}
}

// View returns the entries matching query, in stored order.
func (b *Book) View(query string) []Entry {
	var entries []Entry
	for _, e := range b.matches(query) {
		entries = append(entries, e)
	}
	return entries
}

// Select resolves a 0-based position in the view for query.
func (b *Book) Select(query string, position int) (Selection, error) {
	entries := b.View(query)
	if position < 0 || position >= len(entries) {
		return Selection{}, &SelectionError{Index: -1, Reason: "no contact at that position"}
	}
	return entries[position].Selection(), nil
}

// matches iterates (index, entry) pairs for contacts matching query.
func (b *Book) matches(query string) iter.Seq2[int, Entry] {
	q := strings.ToLower(query)
	return func(yield func(int, Entry) bool) {
		n := 0
		for i := 0; i < len(b.contacts); i++ {
			c := b.contacts[i]
			if !Matches(c, q) {
				continue
			}
			if !yield(n, Entry{Index: i, Contact: c}) {
				return
			}
			n++
		}
	}
}

// Matches reports whether c contains the lower-cased query in any field.
func Matches(c model.Contact, lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(c.Email), lowerQuery) ||
		strings.Contains(strings.ToLower(c.Phone), lowerQuery)
}

// checkSelection verifies sel still refers to the contact it was taken from.
func (b *Book) checkSelection(sel Selection) error {
	if err := b.checkIndex(sel.Index); err != nil {
		return err
	}
	if b.contacts[sel.Index] != sel.Contact {
		return &SelectionError{Index: sel.Index, Reason: "the selected contact has changed"}
	}
	return nil
}
