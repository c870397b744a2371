package harness

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// StateStore persists run outcomes under a base directory (e.g.
// .buildtest) so a later "report" invocation can show the last result.
type StateStore struct {
	baseDir string
}

// NewStateStore creates a store at the given base directory.
func NewStateStore(baseDir string) *StateStore {
	return &StateStore{baseDir: baseDir}
}

func (s *StateStore) lastRunPath() string {
	return filepath.Join(s.baseDir, "last-run.json")
}

// ReadLastRun loads the last run summary. A missing file is clean state
// and returns nil, nil.
func (s *StateStore) ReadLastRun() (*LastRun, error) {
	f, err := os.Open(s.lastRunPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening last run file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var last LastRun
	if err := json.NewDecoder(f).Decode(&last); err != nil {
		return nil, fmt.Errorf("decoding last run: %w", err)
	}
	return &last, nil
}

// WriteLastRun saves the run summary.
func (s *StateStore) WriteLastRun(last LastRun) error {
	return s.writeJSON(s.lastRunPath(), last)
}

// WriteOutcome saves a single check outcome as checks/<name>.json. The
// check name is slug-ified so a display name like "CMake Configuration"
// maps to a stable filename.
func (s *StateStore) WriteOutcome(o Outcome) error {
	path := filepath.Join(s.baseDir, "checks", slug(o.Check)+".json")
	return s.writeJSON(path, o)
}

// ReadOutcome loads a single check outcome by display name. A missing
// file returns nil, nil.
func (s *StateStore) ReadOutcome(name string) (*Outcome, error) {
	path := filepath.Join(s.baseDir, "checks", slug(name)+".json")
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var o Outcome
	if err := json.NewDecoder(f).Decode(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Reset clears the state directory.
func (s *StateStore) Reset() error {
	return os.RemoveAll(s.baseDir)
}

func (s *StateStore) writeJSON(path string, v any) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func slug(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		default:
			out = append(out, '-')
		}
	}
	return string(out)
}
