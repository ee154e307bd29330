// Package history keeps a capped, newest-first log of finished runs in a
// JSON file.
package history

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/duke-git/lancet/v2/fileutil"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lth/hashcrack/internal/shared"
)

const (
	// DefaultMax is the number of records kept when NewStore gets a limit <= 0.
	DefaultMax = 100

	filePermissions = 0o600
	dirPermissions  = 0o750
)

// ErrCorrupt is returned when the history file cannot be decoded.
var ErrCorrupt = errors.New("history file is corrupt")

// hostname is swapped in tests.
var hostname = os.Hostname

// Record describes one finished run.
type Record struct {
	ID         uuid.UUID `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Host       string    `json:"host"`
	Target     string    `json:"target"`
	Family     string    `json:"family"`
	Mode       string    `json:"mode"`
	Method     string    `json:"method,omitempty"`
	CostFactor int       `json:"cost_factor,omitempty"`
	Success    bool      `json:"success"`
	Password   string    `json:"password,omitempty"`
	Attempts   uint64    `json:"attempts"`
	TimeTaken  Duration  `json:"time_taken"`
	// PasswordsScanned is the wordlist size for wordlist runs.
	PasswordsScanned int    `json:"passwords_scanned,omitempty"`
	Scale            string `json:"scale,omitempty"`
}

// Duration marshals as a Go duration string.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Stats summarizes the stored records.
type Stats struct {
	TotalRuns      int
	Successes      int
	TotalAttempts  uint64
	MostUsedMethod string
	AverageTime    time.Duration
}

// SuccessRate is Successes/TotalRuns in percent.
func (s Stats) SuccessRate() float64 {
	if s.TotalRuns == 0 {
		return 0
	}
	return float64(s.Successes) / float64(s.TotalRuns) * 100
}

// Store reads and writes the history file. It is safe for concurrent use
// within one process.
type Store struct {
	path   string
	max    int
	logger *log.Logger

	mu sync.Mutex
}

func NewStore(path string, limit int) *Store {
	if limit <= 0 {
		limit = DefaultMax
	}
	return &Store{path: path, max: limit, logger: shared.Logger}
}

// WithLogger replaces the store logger.
func (s *Store) WithLogger(l *log.Logger) *Store {
	s.logger = l
	return s
}

func (s *Store) Path() string { return s.path }

// Append stores r as the newest record, filling ID, Timestamp and Host when
// unset, and drops the oldest records beyond the cap. A corrupt file is moved
// aside and a new one started.
func (s *Store) Append(r Record) (Record, error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now().UTC()
	}
	if r.Host == "" {
		r.Host = hostLabel()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if errors.Is(err, ErrCorrupt) {
		s.logger.Warn("History file is corrupt, starting a new one", "path", s.path, "error", err)
		if renameErr := os.Rename(s.path, s.path+".corrupt"); renameErr != nil {
			s.logger.Warn("Failed to move corrupt history file aside", "error", renameErr)
		}
		records, err = nil, nil
	}
	if err != nil {
		return Record{}, err
	}

	records = append([]Record{r}, records...)
	if len(records) > s.max {
		records = records[:s.max]
	}
	if err := s.save(records); err != nil {
		return Record{}, err
	}

	s.logger.Debug("History record saved", "id", r.ID, "success", r.Success, "records", len(records))
	return r, nil
}

// All returns the records, newest first.
func (s *Store) All() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) Stats() (Stats, error) {
	records, err := s.All()
	if err != nil {
		return Stats{}, err
	}
	return Summarize(records), nil
}

// Summarize computes Stats over records. Ties for the most used method go to
// the method seen first.
func Summarize(records []Record) Stats {
	var (
		st     Stats
		total  time.Duration
		counts = make(map[string]int)
		best   int
	)
	for _, r := range records {
		st.TotalRuns++
		if r.Success {
			st.Successes++
		}
		st.TotalAttempts += r.Attempts
		total += time.Duration(r.TimeTaken)

		method := r.Method
		if method == "" {
			method = r.Mode
		}
		counts[method]++
		if counts[method] > best {
			best = counts[method]
			st.MostUsedMethod = method
		}
	}
	if st.TotalRuns > 0 {
		st.AverageTime = total / time.Duration(st.TotalRuns)
	}
	return st
}

// RecentSuccesses returns up to n distinct recovered passwords, newest first.
func (s *Store) RecentSuccesses(n int) ([]string, error) {
	records, err := s.All()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		if len(out) >= n {
			break
		}
		if !r.Success || r.Password == "" {
			continue
		}
		if _, dup := seen[r.Password]; dup {
			continue
		}
		seen[r.Password] = struct{}{}
		out = append(out, r.Password)
	}
	return out, nil
}

// Clear removes the history file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to clear history")
	}
	s.logger.Info("History cleared", "path", s.path)
	return nil
}

// Export writes the records to w as indented JSON.
func (s *Store) Export(w io.Writer) error {
	records, err := s.All()
	if err != nil {
		return err
	}
	if records == nil {
		records = []Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(records), "failed to export history")
}

func (s *Store) load() ([]Record, error) {
	if !fileutil.IsExist(s.path) {
		return nil, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read history %s", s.path)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(ErrCorrupt, "%s: %v", s.path, err)
	}
	return records, nil
}

// save writes via a temporary file and rename so readers never see a
// partial file.
func (s *Store) save(records []Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPermissions); err != nil {
		return errors.Wrap(err, "failed to create history directory")
	}

	data, err := json.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "failed to marshal history")
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, filePermissions); err != nil {
		return errors.Wrap(err, "failed to write history")
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		if removeErr := os.Remove(tmpPath); removeErr != nil && !os.IsNotExist(removeErr) {
			s.logger.Warn("Failed to clean up temp history file", "error", removeErr, "path", tmpPath)
		}
		return errors.Wrap(err, "failed to rename history")
	}
	return nil
}

func hostLabel() string {
	name, err := hostname()
	if err != nil || name == "" {
		return "unknown"
	}
	return name
}
