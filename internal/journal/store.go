package journal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gorewood/hulo/internal/output"
)

// Collection names in the data file. track and count are reserved for the
// tally commands and are only created and sized, never written to.
const (
	collectionLog   = "log"
	collectionTrack = "track"
	collectionCount = "count"
)

var defaultCollections = []string{collectionLog, collectionTrack, collectionCount}

// document is the data file: a JSON object of named collections.
// Collections other than log are carried through untouched.
type document map[string]json.RawMessage

// FileStore is the append-only journal backed by a single JSON file.
type FileStore struct {
	path string
}

// Open returns a store for the data file at path, creating the file with
// empty collections if it does not exist yet.
func Open(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	doc, exists, err := s.load()
	if err != nil {
		return nil, err
	}
	if changed := doc.fillDefaults(); changed || !exists {
		if err := s.save(doc); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Path returns the data file path.
func (s *FileStore) Path() string {
	return s.path
}

// Log builds an entry for message from c and appends it.
// The entry is returned only after it has been written.
func (s *FileStore) Log(c Context, message string, now time.Time) (*Entry, error) {
	entry := NewEntry(message, c, now)
	if err := s.Append(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Append validates entry and writes it to the end of the log.
func (s *FileStore) Append(entry *Entry) error {
	if entry == nil {
		return output.NewUserError("cannot append an empty entry")
	}
	if err := entry.Validate(); err != nil {
		return output.NewUserError(err.Error())
	}

	doc, _, err := s.load()
	if err != nil {
		return err
	}
	doc.fillDefaults()

	entries, err := doc.entries()
	if err != nil {
		return s.parseError(err)
	}
	entries = append(entries, entry)

	raw, err := json.Marshal(entries)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to serialize log", err)
	}
	doc[collectionLog] = raw

	return s.save(doc)
}

// All returns every entry in insertion order.
func (s *FileStore) All() ([]*Entry, error) {
	doc, _, err := s.load()
	if err != nil {
		return nil, err
	}
	doc.fillDefaults()

	entries, err := doc.entries()
	if err != nil {
		return nil, s.parseError(err)
	}
	return entries, nil
}

// Last returns up to the last n entries in insertion order.
// A non-positive n is treated as DefaultCount.
func (s *FileStore) Last(n int) ([]*Entry, error) {
	entries, err := s.All()
	if err != nil {
		return nil, err
	}

	n = NormalizeCount(n)
	if n >= len(entries) {
		return entries, nil
	}
	return entries[len(entries)-n:], nil
}

// Len returns the number of entries in the log.
func (s *FileStore) Len() (int, error) {
	return s.collectionSize(collectionLog)
}

// Tracked returns the number of records in the reserved track collection.
func (s *FileStore) Tracked() (int, error) {
	return s.collectionSize(collectionTrack)
}

func (s *FileStore) collectionSize(name string) (int, error) {
	doc, _, err := s.load()
	if err != nil {
		return 0, err
	}
	doc.fillDefaults()

	var items []json.RawMessage
	if err := json.Unmarshal(doc[name], &items); err != nil {
		return 0, s.parseError(fmt.Errorf("collection %q: %w", name, err))
	}
	return len(items), nil
}

// load reads the data file. A missing file yields an empty document and
// exists=false; an empty file is treated the same as "{}".
func (s *FileStore) load() (document, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return document{}, false, nil
		}
		return nil, false, output.NewSystemErrorWithCause("failed to read data file: "+s.path, err)
	}

	doc := document{}
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, true, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, true, s.parseError(err)
	}
	if doc == nil {
		doc = document{}
	}
	return doc, true, nil
}

// save writes the document back using write-to-temp-then-rename.
func (s *FileStore) save(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return output.NewSystemErrorWithCause("failed to serialize data file", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create data directory", err)
	}
	if err := atomicWrite(s.path, data); err != nil {
		return output.NewSystemErrorWithCause("failed to write data file: "+s.path, err)
	}
	return nil
}

func (s *FileStore) parseError(err error) error {
	return output.NewSystemErrorWithCause("failed to parse data file: "+s.path, err)
}

// fillDefaults adds any missing collection as an empty array.
// Reports whether the document changed.
func (d document) fillDefaults() bool {
	changed := false
	for _, name := range defaultCollections {
		raw, ok := d[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			d[name] = json.RawMessage("[]")
			changed = true
		}
	}
	return changed
}

// entries decodes the log collection.
func (d document) entries() ([]*Entry, error) {
	entries := []*Entry{}
	if err := json.Unmarshal(d[collectionLog], &entries); err != nil {
		return nil, fmt.Errorf("collection %q: %w", collectionLog, err)
	}
	return entries, nil
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file is created in the same directory as path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.db")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
