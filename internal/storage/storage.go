// Package storage provides file system operations for .ab/ directories.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacksmith/ab/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	// abDir is the name of the ab directory.
	abDir = ".ab"
	// contactsFile is the persisted contacts snapshot within .ab/.
	contactsFile = "contacts.yaml"
	// configFile is the name of the config file within .ab/.
	configFile = "config.yaml"
)

// StorageConfig contains settings stored in .ab/config.yaml.
type StorageConfig struct {
	Version int `yaml:"version"`
}

// Storage provides access to a .ab/ directory.
// It is the file backend of the contact store: every Save overwrites the
// whole snapshot.
type Storage struct {
	root string // path to directory containing .ab/
}

// Open returns a Storage for the given directory.
// Returns error if .ab/ does not exist.
func Open(dir string) (*Storage, error) {
	abPath := filepath.Join(dir, abDir)
	info, err := os.Stat(abPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(".ab/ directory not found in %s (run `ab init`)", dir)
		}
		return nil, fmt.Errorf("failed to access .ab/: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(".ab is not a directory")
	}

	return &Storage{root: dir}, nil
}

// Init creates .ab/ directory with an empty contacts file.
// Returns error if .ab/ already exists.
func Init(dir string) (*Storage, error) {
	abPath := filepath.Join(dir, abDir)

	// Check if .ab/ already exists
	if _, err := os.Stat(abPath); err == nil {
		return nil, fmt.Errorf(".ab/ directory already exists in %s", dir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check for .ab/: %w", err)
	}

	if err := os.MkdirAll(abPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .ab/: %w", err)
	}

	// Create config.yaml
	cfg := StorageConfig{Version: 1}
	cfgData, err := yaml.Marshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	cfgPath := filepath.Join(abPath, configFile)
	if err := os.WriteFile(cfgPath, cfgData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write config.yaml: %w", err)
	}

	s := &Storage{root: dir}
	if err := s.Save(nil); err != nil {
		// Clean up on failure
		os.RemoveAll(abPath)
		return nil, fmt.Errorf("failed to create contacts file: %w", err)
	}

	return s, nil
}

// OpenOrInit opens .ab/ in dir, creating it on first use.
func OpenOrInit(dir string) (*Storage, error) {
	s, err := Open(dir)
	if err == nil {
		return s, nil
	}
	if _, statErr := os.Stat(filepath.Join(dir, abDir)); !os.IsNotExist(statErr) {
		return nil, err
	}
	return Init(dir)
}

// Root returns the root directory containing .ab/.
func (s *Storage) Root() string {
	return s.root
}

// AbPath returns the path to the .ab/ directory.
func (s *Storage) AbPath() string {
	return filepath.Join(s.root, abDir)
}

// ContactsPath returns the path to the persisted contacts file.
func (s *Storage) ContactsPath() string {
	return filepath.Join(s.root, abDir, contactsFile)
}

// Load reads the persisted contacts snapshot.
// A missing file is reported with an error wrapping os.ErrNotExist.
func (s *Storage) Load() ([]model.Contact, error) {
	return model.LoadContacts(s.ContactsPath())
}

// Save overwrites the persisted contacts snapshot.
// The snapshot is written to a temporary file and renamed into place, so a
// failed write leaves the previous snapshot intact.
func (s *Storage) Save(contacts []model.Contact) error {
	data, err := model.MarshalContacts(contacts)
	if err != nil {
		return err
	}

	path := s.ContactsPath()
	tmp, err := os.CreateTemp(filepath.Dir(path), contactsFile+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write contacts file %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace contacts file %s: %w", path, err)
	}
	return nil
}
