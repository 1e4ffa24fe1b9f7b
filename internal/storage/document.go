package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"todo/internal/task"
)

// SchemaVersion is the storage document schema version.
const SchemaVersion = "1.0"

// Metadata is the file-level envelope metadata. TaskCount is a redundant
// hint, not a source of truth: a mismatch with len(tasks) is tolerated.
type Metadata struct {
	Version      string    `json:"version"`
	LastID       int       `json:"last_id"`
	TaskCount    int       `json:"task_count"`
	LastModified time.Time `json:"last_modified"`
}

// Document is the full serialized state written to the primary file. It is
// the unit of atomic persistence; tasks are kept in insertion order.
type Document struct {
	Metadata Metadata     `json:"metadata"`
	Tasks    []*task.Task `json:"tasks"`
}

// NewDocument returns a fresh empty document with last_id zero.
func NewDocument() *Document {
	return &Document{
		Metadata: Metadata{
			Version:      SchemaVersion,
			LastModified: time.Now().UTC(),
		},
		Tasks: []*task.Task{},
	}
}

// Serialize converts a document to indented JSON with a trailing newline.
func Serialize(doc *Document) ([]byte, error) {
	if doc.Tasks == nil {
		doc.Tasks = []*task.Task{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ParseDocument strictly decodes and validates a serialized document.
// Whole-document atomicity: any single invalid task entry fails the parse
// rather than being partially accepted.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid JSON: trailing content")
	}

	if doc.Metadata.Version != SchemaVersion {
		return nil, fmt.Errorf("incompatible schema version: %q", doc.Metadata.Version)
	}
	if doc.Tasks == nil {
		return nil, errors.New("missing tasks array")
	}

	seen := make(map[int]bool, len(doc.Tasks))
	for i, t := range doc.Tasks {
		if t == nil {
			return nil, fmt.Errorf("task entry %d is null", i)
		}
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("invalid task entry %d: %w", i, err)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("duplicate task id %d", t.ID)
		}
		seen[t.ID] = true
		if t.ID > doc.Metadata.LastID {
			return nil, fmt.Errorf("task id %d exceeds last_id %d", t.ID, doc.Metadata.LastID)
		}
	}

	return &doc, nil
}
