// Package journal provides the entry model and the append-only file store
// behind the hulo log.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is a single log record. Entries are never modified once appended.
type Entry struct {
	ID        string     `json:"id,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
	Message   string     `json:"message"`
	Username  string     `json:"username,omitempty"`
	Git       *GitInfo   `json:"git,omitempty"`
	System    SystemInfo `json:"system"`
}

// GitInfo is the git context captured when the entry was written.
type GitInfo struct {
	User   string `json:"user"`
	Branch string `json:"branch"`
	Repo   string `json:"repo"`
}

// SystemInfo is the host context captured when the entry was written.
type SystemInfo struct {
	Path string `json:"path"`
}

// Context is the ambient information attached to new entries.
// It is built once per invocation and passed by value.
type Context struct {
	Username string
	Git      *GitInfo
	System   SystemInfo
}

// ValidationError is returned when entry validation fails.
type ValidationError struct {
	Fields  []string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// NewEntry builds an entry for message from the given context.
// The timestamp is truncated to whole seconds so the stored form
// reads back identically.
func NewEntry(message string, c Context, now time.Time) *Entry {
	var git *GitInfo
	if c.Git != nil {
		copied := *c.Git
		git = &copied
	}

	return &Entry{
		ID:        uuid.NewString(),
		Timestamp: now.Truncate(time.Second),
		Message:   message,
		Username:  c.Username,
		Git:       git,
		System:    c.System,
	}
}

// Validate checks that the fields every entry needs are present.
// The message may be empty.
func (e *Entry) Validate() error {
	var missing []string
	if e.Timestamp.IsZero() {
		missing = append(missing, "timestamp")
	}

	if len(missing) > 0 {
		return &ValidationError{
			Fields:  missing,
			Message: "missing required fields",
		}
	}
	return nil
}

// ToJSON serializes the entry to JSON.
func (e *Entry) ToJSON() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("serializing entry to JSON: %w", err)
	}
	return data, nil
}

// FromJSON deserializes an entry from JSON.
func FromJSON(data []byte) (*Entry, error) {
	if len(data) == 0 {
		return nil, errors.New("empty JSON data")
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("parsing entry JSON: %w", err)
	}
	return &entry, nil
}
