// Package book implements the contact store: an ordered, in-memory list of
// contacts kept in sync with a persisted snapshot.
//
// Every successful mutation is followed by a full overwrite of the snapshot.
// A failed save is reported as a *StorageError but the mutation is kept in
// memory; the next successful save brings the snapshot back in line.
//
// A Book is not safe for concurrent use.
package book

import (
	"errors"
	"io/fs"
	"sort"

	"github.com/jacksmith/ab/internal/model"
	"go.uber.org/zap"
)

// Backend persists whole snapshots of the contact list.
// The concrete implementation is storage.Storage, but this interface allows
// in-memory or failing backends in tests.
type Backend interface {
	Load() ([]model.Contact, error)
	Save(contacts []model.Contact) error
}

// Book is the contact store.
type Book struct {
	backend  Backend
	log      *zap.Logger
	contacts []model.Contact
}

// Option configures a Book.
type Option func(*Book)

// WithLogger sets the logger used for mutation and persistence events.
func WithLogger(l *zap.Logger) Option {
	return func(b *Book) {
		if l != nil {
			b.log = l
		}
	}
}

// New returns an empty Book backed by backend.
// Call Restore to load the persisted snapshot.
func New(backend Backend, opts ...Option) *Book {
	b := &Book{
		backend: backend,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Len returns the number of contacts.
func (b *Book) Len() int {
	return len(b.contacts)
}

// Contacts returns a copy of the contacts in stored order.
func (b *Book) Contacts() []model.Contact {
	out := make([]model.Contact, len(b.contacts))
	copy(out, b.contacts)
	return out
}

// Create appends a new contact and persists.
// Returns the updated list for display.
func (b *Book) Create(name, email, phone string) ([]model.Contact, error) {
	c, err := newContact(name, email, phone)
	if err != nil {
		return nil, err
	}

	b.contacts = append(b.contacts, c)
	b.log.Debug("contact added", zap.Int("index", len(b.contacts)-1))
	return b.Contacts(), b.Persist()
}

// Delete removes the selected contact and persists.
func (b *Book) Delete(sel Selection) error {
	if err := b.checkSelection(sel); err != nil {
		return err
	}
	return b.DeleteAt(sel.Index)
}

// DeleteAt removes the contact at storage index i and persists.
// Prefer Delete when the index came from a filtered view.
func (b *Book) DeleteAt(i int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}

	b.contacts = append(b.contacts[:i], b.contacts[i+1:]...)
	b.log.Debug("contact deleted", zap.Int("index", i))
	return b.Persist()
}

// Edit replaces the selected contact with a new one and persists.
func (b *Book) Edit(sel Selection, name, email, phone string) error {
	if err := b.checkSelection(sel); err != nil {
		return err
	}
	return b.EditAt(sel.Index, name, email, phone)
}

// EditAt replaces the contact at storage index i and persists.
// The selection is checked before the fields.
func (b *Book) EditAt(i int, name, email, phone string) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	c, err := newContact(name, email, phone)
	if err != nil {
		return err
	}

	b.contacts[i] = c
	b.log.Debug("contact edited", zap.Int("index", i))
	return b.Persist()
}

// ClearAll removes every contact and persists.
// It does nothing unless confirmed is true; obtaining confirmation is the
// caller's job. Returns whether the store was cleared.
func (b *Book) ClearAll(confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}

	n := len(b.contacts)
	b.contacts = nil
	b.log.Debug("contacts cleared", zap.Int("removed", n))
	return true, b.Persist()
}

// SortBy stably sorts the stored contacts by field using byte-wise string
// comparison, then persists. The new order is permanent.
func (b *Book) SortBy(field model.Field) ([]model.Contact, error) {
	f, err := model.ParseField(string(field))
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	sort.SliceStable(b.contacts, func(i, j int) bool {
		return b.contacts[i].Value(f) < b.contacts[j].Value(f)
	})
	b.log.Debug("contacts sorted", zap.String("field", string(f)))
	return b.Contacts(), b.Persist()
}

// Persist overwrites the snapshot with the current contacts.
func (b *Book) Persist() error {
	if err := b.backend.Save(b.Contacts()); err != nil {
		b.log.Warn("failed to save contacts", zap.Error(err))
		return &StorageError{Op: "save", Err: err}
	}
	b.log.Debug("contacts saved", zap.Int("count", len(b.contacts)))
	return nil
}

// Restore replaces the in-memory contacts with the persisted snapshot.
// On failure the store is left empty and usable; errors.Is(err,
// fs.ErrNotExist) identifies a first run with no snapshot yet.
func (b *Book) Restore() ([]model.Contact, error) {
	contacts, err := b.backend.Load()
	if err != nil {
		b.contacts = nil
		if errors.Is(err, fs.ErrNotExist) {
			b.log.Info("no saved contacts", zap.Error(err))
		} else {
			b.log.Warn("failed to load contacts", zap.Error(err))
		}
		return nil, &StorageError{Op: "load", Err: err}
	}

	b.contacts = append([]model.Contact(nil), contacts...)
	b.log.Debug("contacts loaded", zap.Int("count", len(b.contacts)))
	return b.Contacts(), nil
}

func (b *Book) checkIndex(i int) error {
	if i < 0 {
		return &SelectionError{Index: i, Reason: "no contact selected"}
	}
	if i >= len(b.contacts) {
		return &SelectionError{Index: i, Reason: "selection out of range"}
	}
	return nil
}

// newContact builds a contact, failing if any field is empty or not
// valid UTF-8.
func newContact(name, email, phone string) (model.Contact, error) {
	c := model.NewContact(name, email, phone)
	if missing := c.MissingFields(); len(missing) > 0 {
		return model.Contact{}, &ValidationError{Fields: missing}
	}
	if invalid := c.InvalidFields(); len(invalid) > 0 {
		return model.Contact{}, &ValidationError{Invalid: invalid}
	}
	return c, nil
}
