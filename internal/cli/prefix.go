// Package cli provides CLI infrastructure for ab.
package cli

import (
	"fmt"
	"strings"

	"github.com/jacksmith/ab/internal/model"
)

// MatchPrefix finds a unique option from a prefix, case-insensitively.
// Returns the matched option or an error if ambiguous or no match.
// kind names the option type in error messages (e.g. "field").
func MatchPrefix(kind, prefix string, options []string) (string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return "", fmt.Errorf("empty %s (expected one of: %s)", kind, strings.Join(options, ", "))
	}

	// First check for exact match
	for _, opt := range options {
		if strings.ToLower(opt) == prefix {
			return opt, nil
		}
	}

	// Check for prefix match
	var matches []string
	for _, opt := range options {
		if strings.HasPrefix(strings.ToLower(opt), prefix) {
			matches = append(matches, opt)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown %s %q (expected one of: %s)", kind, prefix, strings.Join(options, ", "))
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous %s %q matches: %s", kind, prefix, strings.Join(matches, ", "))
	}
}

// MatchField resolves a field name or unique prefix ("n", "em", "Phone").
func MatchField(prefix string) (model.Field, error) {
	names := make([]string, len(model.Fields))
	for i, f := range model.Fields {
		names[i] = string(f)
	}
	name, err := MatchPrefix("field", prefix, names)
	if err != nil {
		return "", err
	}
	return model.Field(name), nil
}
