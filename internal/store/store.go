package store

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/teraspora/multiple-canvases/internal/scene"
)

const (
	manifestFile = "manifest.json"
	framesFile   = "frames.csv"
)

var ErrNotFound = errors.New("store: run not found")

// Store keeps one directory per render run under baseDir.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Manifest struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Digit     int                `json:"digit"`
	Frames    int                `json:"frames"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Files     []string           `json:"files,omitempty"`
	Scenes    []scene.Descriptor `json:"scenes"`
}

// FrameStat is one row of a run's per-frame statistics.
type FrameStat struct {
	Frame   int
	Updated int
	Links   int
}

// Create makes an empty run directory and returns its id and path. Files
// produced by the run are written there before Save.
func (s *Store) Create(digit int) (string, string, error) {
	runID := fmt.Sprintf("grid%d_%d", digit, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", "", err
	}
	return runID, runDir, nil
}

// Save writes the manifest and frame statistics of run m.ID.
func (s *Store) Save(m *Manifest, stats []FrameStat) error {
	if m.ID == "" {
		return errors.New("store: manifest without id")
	}
	runDir := filepath.Join(s.baseDir, m.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return err
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}

	metaFile, err := os.Create(filepath.Join(runDir, manifestFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return err
	}

	if len(stats) == 0 {
		return nil
	}

	csvFile, err := os.Create(filepath.Join(runDir, framesFile))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"frame", "updated", "links"}); err != nil {
		return err
	}
	for _, st := range stats {
		row := []string{strconv.Itoa(st.Frame), strconv.Itoa(st.Updated), strconv.Itoa(st.Links)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, newest first.
func (s *Store) List() ([]Manifest, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Manifest{}, nil
		}
		return nil, err
	}

	runs := make([]Manifest, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *m)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, manifestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", runID, err)
	}
	return &m, nil
}

func (s *Store) LoadStats(runID string) ([]FrameStat, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return []FrameStat{}, nil
		}
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []FrameStat{}, nil
	}

	stats := make([]FrameStat, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != 3 {
			continue
		}
		var st FrameStat
		var errs [3]error
		st.Frame, errs[0] = strconv.Atoi(record[0])
		st.Updated, errs[1] = strconv.Atoi(record[1])
		st.Links, errs[2] = strconv.Atoi(record[2])
		if err := errors.Join(errs[:]...); err != nil {
			return nil, fmt.Errorf("%s: %w", framesFile, err)
		}
		stats = append(stats, st)
	}
	return stats, nil
}

// Path joins name onto the directory of a run.
func (s *Store) Path(runID, name string) string {
	return filepath.Join(s.baseDir, runID, name)
}
