package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/elenalowe/tasktide/internal/domain"
)

// StateKey is the KV key holding the full application state
const StateKey = "state"

// Snapshot is the serialized form of the full application state.
// Timestamps ride along as RFC 3339 strings via encoding/json.
type Snapshot struct {
	Tasks       []domain.Task          `json:"tasks"`
	Categories  []string               `json:"categories"`
	Sessions    []domain.SessionRecord `json:"sessions"`
	CompactView bool                   `json:"compact_view"`
}

// Persister saves and restores snapshots through the KV port. Failures
// degrade rather than propagate: a broken or missing document loads as
// defaults, and write errors are logged but never returned to the
// mutation that triggered the save.
type Persister struct {
	kv     KV
	logger *slog.Logger
}

// NewPersister creates a persister over the given port
func NewPersister(kv KV, logger *slog.Logger) *Persister {
	if logger == nil {
		logger = slog.Default()
	}
	return &Persister{kv: kv, logger: logger}
}

// Save writes the snapshot, swallowing failures after logging them
func (p *Persister) Save(snap Snapshot) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		p.logger.Warn("failed to encode state", "error", err)
		return
	}
	if err := p.kv.Set(StateKey, data); err != nil {
		p.logger.Warn("failed to persist state", "error", err)
	}
}

// Load restores the last snapshot. An absent or malformed document
// yields zero-value defaults.
func (p *Persister) Load() Snapshot {
	data, ok, err := p.kv.Get(StateKey)
	if err != nil {
		p.logger.Warn("failed to read persisted state", "error", err)
		return Snapshot{}
	}
	if !ok {
		return Snapshot{}
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		p.logger.Warn("discarding malformed persisted state", "error", err)
		return Snapshot{}
	}
	return snap
}

// Clear removes the persisted document
func (p *Persister) Clear() {
	if err := p.kv.Delete(StateKey); err != nil {
		p.logger.Warn("failed to clear persisted state", "error", err)
	}
}

// Backup is the manual export document: tasks, categories, and the
// session log, without display preferences
type Backup struct {
	Tasks      []domain.Task          `json:"tasks"`
	Categories []string               `json:"categories"`
	Sessions   []domain.SessionRecord `json:"sessions"`
}

// ExportBackup writes a backup document to path
func ExportBackup(path string, b Backup) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// ImportBackup reads and validates a backup document. A document that
// does not parse, or that is missing the tasks or categories fields,
// is rejected with ErrMalformedBackup rather than half-restored.
func ImportBackup(path string) (Backup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Backup{}, fmt.Errorf("failed to read backup: %w", err)
	}

	var probe struct {
		Tasks      *[]domain.Task         `json:"tasks"`
		Categories *[]string              `json:"categories"`
		Sessions   []domain.SessionRecord `json:"sessions"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Backup{}, fmt.Errorf("%w: %v", domain.ErrMalformedBackup, err)
	}
	if probe.Tasks == nil || probe.Categories == nil {
		return Backup{}, fmt.Errorf("%w: missing tasks or categories", domain.ErrMalformedBackup)
	}
	for _, t := range *probe.Tasks {
		if t.Title == "" {
			return Backup{}, fmt.Errorf("%w: task %d has no title", domain.ErrMalformedBackup, t.ID)
		}
	}

	return Backup{
		Tasks:      *probe.Tasks,
		Categories: *probe.Categories,
		Sessions:   probe.Sessions,
	}, nil
}
