package checkpoint

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"spy-data/internal/model"
)

// State is the persisted checkpoint document. A single mutable slot:
// Save overwrites, never appends.
type State struct {
	LastProcessedTimestamp int64  `json:"last_processed_timestamp"` // Unix milliseconds
	LastProcessedISO       string `json:"last_processed_iso"`
	UpdatedAt              string `json:"updated_at"`
}

// Store persists the last-processed timestamp across restarts.
// One writer, one reader, never concurrent; a second process pointed at the
// same path would race, so deployments run a single instance per path.
type Store struct {
	path string
	log  *slog.Logger
	last int64 // highest timestamp saved by this process
}

func NewStore(path string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{path: path, log: log}
}

// Path returns the checkpoint file location.
func (s *Store) Path() string { return s.path }

// Load reads the persisted checkpoint. A missing file means a fresh start;
// unparseable content is logged and treated the same way, never as fatal.
func (s *Store) Load() (int64, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info("no checkpoint file found, starting fresh", "path", s.path)
		} else {
			s.log.Error("cannot read checkpoint file, starting fresh", "path", s.path, "error", err)
		}
		return 0, false
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		s.log.Error("checkpoint file unparseable, starting fresh", "path", s.path, "error", err)
		return 0, false
	}
	if st.LastProcessedTimestamp <= 0 {
		s.log.Warn("checkpoint file has no timestamp, starting fresh", "path", s.path)
		return 0, false
	}
	s.log.Info("loaded checkpoint",
		"timestamp", st.LastProcessedTimestamp,
		"iso", model.EpochMSToISO(st.LastProcessedTimestamp))
	return st.LastProcessedTimestamp, true
}

// Save durably persists ts, creating parent directories as needed.
// The write goes through a temp file and rename so a crash mid-write
// cannot leave a truncated document. Saves never move the checkpoint
// backwards within one process lifetime.
func (s *Store) Save(ts int64) error {
	if ts < s.last {
		return fmt.Errorf("checkpoint would move backwards: %d < %d", ts, s.last)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create checkpoint dir: %w", err)
	}
	st := State{
		LastProcessedTimestamp: ts,
		LastProcessedISO:       model.EpochMSToISO(ts),
		UpdatedAt:              time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal checkpoint: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write checkpoint: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace checkpoint: %w", err)
	}
	s.last = ts
	s.log.Debug("updated checkpoint", "timestamp", ts, "iso", st.LastProcessedISO)
	return nil
}
