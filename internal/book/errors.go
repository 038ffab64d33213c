package book

import (
	"fmt"
	"strings"
)

// ValidationError indicates required contact fields were empty or held
// invalid text, or an argument such as a sort field was not recognized.
type ValidationError struct {
	Fields  []string // the required fields that were empty
	Invalid []string // the fields that were not valid UTF-8
	Message string   // what went wrong
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("please fill in all fields (missing %s)", strings.Join(e.Fields, ", "))
	}
	if len(e.Invalid) > 0 {
		return fmt.Sprintf("invalid text in %s (must be UTF-8)", strings.Join(e.Invalid, ", "))
	}
	return e.Message
}

// SelectionError indicates a delete or edit without a valid selection.
type SelectionError struct {
	Index  int    // the storage index that was addressed, -1 for none
	Reason string // why the selection is invalid
}

func (e *SelectionError) Error() string {
	if e.Reason != "" {
		return "please select a contact: " + e.Reason
	}
	return "please select a contact"
}

// StorageError indicates an I/O failure while persisting, restoring,
// importing, or exporting contacts.
type StorageError struct {
	Op  string // "save", "load", "import", or "export"
	Err error
}

func (e *StorageError) Error() string {
	switch e.Op {
	case "save":
		return fmt.Sprintf("error saving contacts: %v", e.Err)
	case "load":
		return fmt.Sprintf("error loading contacts: %v", e.Err)
	case "import":
		return fmt.Sprintf("error reading from file: %v", e.Err)
	case "export":
		return fmt.Sprintf("error writing to file: %v", e.Err)
	}
	return fmt.Sprintf("storage error: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
