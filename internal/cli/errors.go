package cli

import (
	"errors"
	"fmt"

	"github.com/jacksmith/ab/internal/book"
)

// NotFoundError indicates a list position that does not exist in the
// current view.
type NotFoundError struct {
	Position int    // 1-based position as shown by `ab list`
	Query    string // search filter the position refers to
}

func (e *NotFoundError) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("no contact #%d in list matching %q", e.Position, e.Query)
	}
	return fmt.Sprintf("no contact #%d in list", e.Position)
}

// PositionError indicates a position argument that is not a number.
type PositionError struct {
	Arg string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("invalid position %q: expected the # shown by `ab list`", e.Arg)
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output, and adds
// a hint for errors the user can correct.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	msg := "error: " + err.Error()

	var verr *book.ValidationError
	var serr *book.SelectionError
	switch {
	case errors.As(err, &verr) && len(verr.Fields) > 0:
		msg += "\nname, email, and phone are all required"
	case errors.As(err, &serr):
		msg += "\nrun `ab list` to see current positions"
	}
	return msg
}
