package cli

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/jacksmith/ab/internal/model"
	"gopkg.in/yaml.v3"
)

// editorHeader is prepended to the document opened by EditContact.
const editorHeader = `# Edit the contact below. All three fields are required.
# Lines starting with '#' are ignored. Save and quit to apply.
`

// EditContact opens c as YAML in $EDITOR and returns the edited contact.
// Field values are not validated here.
func EditContact(c model.Contact) (model.Contact, error) {
	body, err := model.MarshalContact(c)
	if err != nil {
		return model.Contact{}, err
	}

	edited, err := EditInEditor(append([]byte(editorHeader), body...), ".yaml")
	if err != nil {
		return model.Contact{}, err
	}
	return parseEditedContact(edited)
}

// parseEditedContact decodes the editor buffer, rejecting unknown keys.
func parseEditedContact(data []byte) (model.Contact, error) {
	var c model.Contact
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return model.Contact{}, fmt.Errorf("failed to parse edited contact: %w", err)
	}
	return c, nil
}

// EditInEditor opens content in $EDITOR and returns modified content.
// The suffix is used for the temporary file (e.g., ".yaml" for syntax highlighting).
// Returns error if EDITOR/VISUAL not set or editor exits non-zero.
func EditInEditor(content []byte, suffix string) ([]byte, error) {
	editor := getEditor()
	if editor == "" {
		return nil, fmt.Errorf("EDITOR not set. Set it or use --name/--email/--phone instead of -i")
	}

	tmpFile, err := os.CreateTemp("", "ab-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := runEditor(editor, tmpPath); err != nil {
		return nil, err
	}

	result, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}

	return result, nil
}

// getEditor returns the editor command from environment.
// Checks VISUAL first, then EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// runEditor executes the editor with the given file path.
// The editor command may carry arguments (e.g. "code --wait").
func runEditor(editor, path string) error {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	args := append(parts[1:], path)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}

	return nil
}
