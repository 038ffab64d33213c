package model

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// contactsFile is the on-disk shape of the contacts file.
type contactsFile struct {
	Contacts []Contact `yaml:"contacts"`
}

// LoadContacts loads a contacts file from the given path.
func LoadContacts(path string) ([]Contact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contacts file %s: %w", path, err)
	}

	contacts, err := UnmarshalContacts(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse contacts file %s: %w", path, err)
	}
	return contacts, nil
}

// UnmarshalContacts decodes a contacts document.
// An empty document decodes to an empty list.
// Every contact must have all fields set.
func UnmarshalContacts(data []byte) ([]Contact, error) {
	var f contactsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	for i, c := range f.Contacts {
		if missing := c.MissingFields(); len(missing) > 0 {
			return nil, fmt.Errorf("contact %d: missing %s", i+1, strings.Join(missing, ", "))
		}
	}

	if f.Contacts == nil {
		return []Contact{}, nil
	}
	return f.Contacts, nil
}

// MarshalContacts encodes contacts as a YAML document, preserving order.
// All values are double-quoted strings so phone numbers, words like "null"
// or "yes", and values that are only whitespace come back unchanged.
func MarshalContacts(contacts []Contact) ([]byte, error) {
	data, err := yaml.Marshal(buildContactsNode(contacts))
	if err != nil {
		return nil, fmt.Errorf("failed to encode contacts: %w", err)
	}
	return data, nil
}

// MarshalContact encodes a single contact as a YAML mapping, quoted the
// same way as MarshalContacts.
func MarshalContact(c Contact) ([]byte, error) {
	data, err := yaml.Marshal(buildContactNode(c))
	if err != nil {
		return nil, fmt.Errorf("failed to encode contact: %w", err)
	}
	return data, nil
}

// buildContactsNode creates a yaml.Node tree for a contacts document.
func buildContactsNode(contacts []Contact) *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, c := range contacts {
		seq.Content = append(seq.Content, buildContactNode(c))
	}
	doc.Content = append(doc.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "contacts"},
		seq,
	)

	return doc
}

// buildContactNode creates a yaml.Node for a Contact.
func buildContactNode(c Contact) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	addStringField(node, "name", c.Name)
	addStringField(node, "email", c.Email)
	addStringField(node, "phone", c.Phone)
	return node
}

func addStringField(node *yaml.Node, key, value string) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str", Style: yaml.DoubleQuotedStyle},
	)
}
