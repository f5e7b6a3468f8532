package definition

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-form/pkg/form"
	"github.com/goliatone/go-form/pkg/session"
)

// Entry is a loaded form: its definition, construction options and the file
// it came from.
type Entry struct {
	ID         string
	Source     string
	Definition *form.Definition
	Options    []form.Option
	Protected  bool
}

// New instantiates the form. Protected entries require a session store.
func (e Entry) New(store session.Store, extra ...form.Option) (*form.Form, error) {
	opts := append(append([]form.Option(nil), e.Options...), extra...)
	if e.Protected {
		if store == nil {
			return nil, fmt.Errorf("definition: form %q is protected and needs a session store", e.ID)
		}
		opts = append(opts, form.WithSession(store))
	}
	return e.Definition.New(opts...), nil
}

// Store indexes loaded forms by id.
type Store struct {
	entries map[string]Entry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]Entry)}
}

// LoadFS walks fsys and parses every JSON/YAML definition file. When fsys is
// nil or no definition files are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := NewStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("definition: read %s: %w", path, err)
		}
		doc, err := Parse(data, path)
		if err != nil {
			return err
		}
		return store.Add(doc, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFile parses a single definition file from disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("definition: read %s: %w", path, err)
	}
	doc, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	store := NewStore()
	if err := store.Add(doc, path); err != nil {
		return nil, err
	}
	return store, nil
}

// Parse decodes a JSON or YAML document.
func Parse(data []byte, source string) (Document, error) {
	var doc Document
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("definition: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("definition: parse %s: %w", source, err)
	}
	return doc, nil
}

// Add builds every form in doc and registers it. source names the origin of
// the document in error messages.
func (s *Store) Add(doc Document, source string) error {
	if s.entries == nil {
		s.entries = make(map[string]Entry)
	}
	for rawID, spec := range doc.Forms {
		id := strings.TrimSpace(rawID)
		if id == "" {
			return fmt.Errorf("definition: file %s defines an empty form id", source)
		}
		if existing, exists := s.entries[id]; exists {
			return fmt.Errorf("definition: duplicate form %q (files %s and %s)", id, existing.Source, source)
		}
		def, opts, err := Build(id, spec)
		if err != nil {
			return fmt.Errorf("%w (file %s)", err, source)
		}
		s.entries[id] = Entry{
			ID:         id,
			Source:     source,
			Definition: def,
			Options:    opts,
			Protected:  spec.Protected,
		}
	}
	return nil
}

// Entry returns the form registered under id.
func (s *Store) Entry(id string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	entry, ok := s.entries[id]
	return entry, ok
}

// IDs returns the sorted form ids.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.entries))
	for id := range s.entries {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.entries) == 0
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
