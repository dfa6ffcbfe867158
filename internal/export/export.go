// Package export persists comparison tables to a JSON history file.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/csheth/algoscout/internal/compare"
)

const entryTypeComparison = "comparison"

// Snapshot is one exported comparison.
type Snapshot struct {
	EntryType  string        `json:"entryType"`
	IDs        []string      `json:"ids"`
	Table      compare.Table `json:"table"`
	ExportedAt time.Time     `json:"exportedAt"`
}

type entryHeader struct {
	EntryType string `json:"entryType"`
}

// NewSnapshot captures table as of now.
func NewSnapshot(table compare.Table) Snapshot {
	ids := make([]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		ids = append(ids, col.ID)
	}
	return Snapshot{
		EntryType:  entryTypeComparison,
		IDs:        ids,
		Table:      table,
		ExportedAt: time.Now(),
	}
}

// Save appends snapshots to the history file, creating it if necessary.
// Entries already in the file are kept verbatim, including ones of other types.
func Save(path string, snapshots ...Snapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	entries := make([]json.RawMessage, 0, len(snapshots))
	for _, snapshot := range snapshots {
		snapshot.EntryType = entryTypeComparison
		raw, err := json.Marshal(snapshot)
		if err != nil {
			return err
		}
		entries = append(entries, raw)
	}
	return appendEntries(path, entries)
}

// Load returns every comparison stored at path in file order.
func Load(path string) ([]Snapshot, error) {
	entries, err := loadEntries(path)
	if err != nil {
		return nil, err
	}
	snapshots := make([]Snapshot, 0, len(entries))
	for _, raw := range entries {
		var header entryHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			return nil, err
		}
		if header.EntryType != entryTypeComparison {
			continue
		}
		var snapshot Snapshot
		if err := json.Unmarshal(raw, &snapshot); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}

func appendEntries(path string, newEntries []json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	entries, err := loadEntries(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		entries = nil
	}
	entries = append(entries, newEntries...)
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func loadEntries(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
