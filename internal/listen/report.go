package listen

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"spy-data/internal/model"
)

const (
	outcomeGraceful = "graceful"
	outcomeAutoStop = "auto-stop"
	outcomeFailed   = "failed"
)

// Stats accumulates per-session counters for the run report.
type Stats struct {
	SessionID         string `json:"session_id"`
	Ticker            string `json:"ticker"`
	StartedAt         string `json:"started_at"`
	FinishedAt        string `json:"finished_at"`
	Outcome           string `json:"outcome"`
	Cycles            int    `json:"cycles"`
	EmptyCycles       int    `json:"empty_cycles"`
	Records           int    `json:"records"`
	LastCheckpoint    int64  `json:"last_checkpoint,omitempty"`
	LastCheckpointISO string `json:"last_checkpoint_iso,omitempty"`
}

func (s *Stats) start(ticker string) {
	s.SessionID = uuid.NewString()
	s.Ticker = ticker
	s.StartedAt = time.Now().UTC().Format(time.RFC3339)
}

func (s *Stats) cycle()      { s.Cycles++ }
func (s *Stats) emptyCycle() { s.EmptyCycles++ }

func (s *Stats) records(n int, latest int64) {
	s.Records += n
	s.LastCheckpoint = latest
	s.LastCheckpointISO = model.EpochMSToISO(latest)
}

func (s *Stats) finish(outcome string) {
	s.Outcome = outcome
	s.FinishedAt = time.Now().UTC().Format(time.RFC3339)
}

// writeReport persists the session summary as .lastrun.json in ReportDir.
// Best effort: a report failure never changes the exit path.
func (l *Listener) writeReport() {
	if l.cfg.ReportDir == "" {
		return
	}
	if err := os.MkdirAll(l.cfg.ReportDir, 0o755); err != nil {
		l.log.Warn("could not create report dir", "error", err)
		return
	}
	p := filepath.Join(l.cfg.ReportDir, ".lastrun.json")
	data, err := json.MarshalIndent(l.stats, "", "  ")
	if err != nil {
		l.log.Warn("could not marshal run report", "error", err)
		return
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		l.log.Warn("could not write run report", "error", err)
		return
	}
	l.log.Info("run report saved", "path", p, "session", l.stats.SessionID, "outcome", l.stats.Outcome)
}
