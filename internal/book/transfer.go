package book

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacksmith/ab/internal/model"
	"go.uber.org/zap"
)

// ImportResult reports the outcome of an import.
type ImportResult struct {
	Imported int
	Skipped  int
}

// Import appends a contact for every well-formed "name,email,phone" line,
// in input order. Malformed lines are counted and skipped; they never abort
// the import. The store is persisted once, after all lines.
func (b *Book) Import(lines []string) (ImportResult, error) {
	var res ImportResult
	for _, line := range lines {
		c, ok := model.ParseLine(line)
		if !ok {
			res.Skipped++
			continue
		}
		b.contacts = append(b.contacts, c)
		res.Imported++
	}

	b.log.Debug("contacts imported",
		zap.Int("imported", res.Imported),
		zap.Int("skipped", res.Skipped),
	)
	return res, b.Persist()
}

// ImportReader reads lines from r and imports them.
// Lines may be of any length. A read error aborts before any contact is added.
func (b *Book) ImportReader(r io.Reader) (ImportResult, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return ImportResult{}, &StorageError{Op: "import", Err: err}
		}
	}
	return b.Import(lines)
}

// ImportFile imports contacts from the file at path.
func (b *Book) ImportFile(path string) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, &StorageError{Op: "import", Err: err}
	}
	defer f.Close()
	return b.ImportReader(f)
}

// Export returns one "name,email,phone" line per contact in stored order.
// Fields are not escaped.
func (b *Book) Export() []string {
	lines := make([]string, 0, len(b.contacts))
	for _, c := range b.contacts {
		lines = append(lines, model.FormatLine(c))
	}
	return lines
}

// ExportWriter writes the exported lines to w, each followed by a newline.
// Returns the number of contacts written.
func (b *Book) ExportWriter(w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)
	lines := b.Export()
	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return 0, &StorageError{Op: "export", Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, &StorageError{Op: "export", Err: err}
	}
	return len(lines), nil
}

// ExportFile writes the exported lines to the file at path, replacing it.
func (b *Book) ExportFile(path string) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, &StorageError{Op: "export", Err: err}
	}
	n, err := b.ExportWriter(f)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		return 0, &StorageError{Op: "export", Err: closeErr}
	}
	return n, err
}
